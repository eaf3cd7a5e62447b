// Package authgw is the HTTP adapter for the authentication endpoints.
package authgw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/destination-europe/explorer-client/internal/adapters/rest/transport"
	"github.com/destination-europe/explorer-client/internal/ports/out/authgw"
)

// Backend messages the client keys behavior off. These mirror the API's
// literal responses; changing them server-side is a breaking change.
const (
	msgNotVerified       = "Account not verified. Please check your email for the verification link."
	msgUserExists        = "User already exists"
	msgExistsNotVerified = "User exists but is not verified. Please check your email for verification."
)

type Client struct {
	t *transport.Client
}

var _ authgw.Client = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{t: transport.New(baseURL, timeout)}
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	status, body, err := c.t.DoJSON(ctx, http.MethodPost, "/auth/login", nil, "", payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", authgw.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		if strings.EqualFold(transport.ServerMessage(body), msgNotVerified) {
			return "", authgw.ErrNotVerified
		}
		if status == http.StatusUnauthorized || status == http.StatusBadRequest {
			return "", authgw.ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: status %d", authgw.ErrUnavailable, status)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", authgw.ErrUnavailable, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token", authgw.ErrUnavailable)
	}
	return out.Token, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}
	status, body, err := c.t.DoJSON(ctx, http.MethodPost, "/auth/signup", nil, "", payload)
	if err != nil {
		return fmt.Errorf("%w: %v", authgw.ErrUnavailable, err)
	}
	if status == http.StatusOK {
		return nil
	}
	switch transport.ServerMessage(body) {
	case msgUserExists:
		return authgw.ErrAlreadyExists
	case msgExistsNotVerified:
		return authgw.ErrNotVerified
	}
	return fmt.Errorf("%w: status %d", authgw.ErrUnavailable, status)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	status, _, err := c.t.DoJSON(ctx, http.MethodPost, "/auth/resend-verification", nil, "", payload)
	if err != nil {
		return fmt.Errorf("%w: %v", authgw.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d", authgw.ErrUnavailable, status)
	}
	return nil
}
