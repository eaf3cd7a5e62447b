// Package transport is the shared JSON-over-HTTP plumbing for the REST
// adapters. Adapters stay thin: they build paths and payloads here and map
// status codes to their port's sentinel errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the API at baseURL (no trailing slash needed).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// DoJSON performs one request and returns the response status and raw body.
// A non-nil error means the exchange itself failed (connection, encoding);
// HTTP-level failures are reported through the status code so each adapter
// can apply its own mapping. A bearer token is attached when non-empty.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, bearer string, body any) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, out, nil
}

// QueryParam styles a single query parameter the way generated OpenAPI
// clients do and merges it into dst.
func QueryParam(dst url.Values, name string, value any) error {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("style query param %s: %w", name, err)
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return fmt.Errorf("parse query param %s: %w", name, err)
	}
	for k, vs := range parsed {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	return nil
}

// ServerMessage extracts the server's `{"message": ...}` error payload, if
// any. Used where the client keys behavior off specific backend messages.
func ServerMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
