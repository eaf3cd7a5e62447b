// Package directory is the HTTP adapter for the destination dataset API.
// Dataset record keys are normalized here, at the ingestion boundary; nothing
// past this package ever sees a BOM-prefixed or padded field name.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/destination-europe/explorer-client/internal/adapters/rest/transport"
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/directory"
)

type Client struct {
	t *transport.Client
}

var _ directory.Client = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{t: transport.New(baseURL, timeout)}
}

func (c *Client) SearchByFields(ctx context.Context, fields []directory.SearchField, term string) ([]domain.Destination, error) {
	q := url.Values{}
	for _, f := range fields {
		q.Set(string(f), term)
	}
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/search", q, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrUnavailable, err)
	}
	switch status {
	case http.StatusOK:
		return decodeRecords(body)
	case http.StatusNotFound:
		// "No matches" is an empty result, not a failure.
		return []domain.Destination{}, nil
	default:
		return nil, fmt.Errorf("%w: status %d", directory.ErrUnavailable, status)
	}
}

func (c *Client) GetByID(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/destinations/"+url.PathEscape(string(id)), nil, "", nil)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("%w: %v", directory.ErrUnavailable, err)
	}
	switch status {
	case http.StatusOK:
		var rec map[string]any
		if err := json.Unmarshal(body, &rec); err != nil {
			return domain.Destination{}, fmt.Errorf("%w: decode: %v", directory.ErrUnavailable, err)
		}
		return recordToDestination(rec), nil
	case http.StatusNotFound:
		return domain.Destination{}, directory.ErrNotFound
	default:
		return domain.Destination{}, fmt.Errorf("%w: status %d", directory.ErrUnavailable, status)
	}
}

func (c *Client) GetCoordinates(ctx context.Context, id domain.DestinationID) (domain.Coordinates, error) {
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/destinations/"+url.PathEscape(string(id))+"/coordinates", nil, "", nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", directory.ErrUnavailable, err)
	}
	switch status {
	case http.StatusOK:
		var payload struct {
			Latitude  any `json:"latitude"`
			Longitude any `json:"longitude"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: decode: %v", directory.ErrUnavailable, err)
		}
		coords, ok := domain.ParseCoordinates(fieldString(payload.Latitude), fieldString(payload.Longitude))
		if !ok {
			return domain.Coordinates{}, fmt.Errorf("%w: malformed coordinates", directory.ErrUnavailable)
		}
		return coords, nil
	case http.StatusNotFound:
		return domain.Coordinates{}, directory.ErrNotFound
	default:
		return domain.Coordinates{}, fmt.Errorf("%w: status %d", directory.ErrUnavailable, status)
	}
}

func (c *Client) SuggestByNamePrefix(ctx context.Context, prefix string) ([]domain.Destination, error) {
	q := url.Values{}
	if err := transport.QueryParam(q, "name", prefix); err != nil {
		return nil, err
	}
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/destinations", q, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", directory.ErrUnavailable, status)
	}
	ds, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}
	// Malformed dataset rows are dropped, never shown as suggestions.
	out := make([]domain.Destination, 0, len(ds))
	for _, d := range ds {
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (c *Client) Countries(ctx context.Context) ([]string, error) {
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/countries", nil, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", directory.ErrUnavailable, status)
	}
	var countries []string
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", directory.ErrUnavailable, err)
	}
	return countries, nil
}

func decodeRecords(body []byte) ([]domain.Destination, error) {
	var recs []map[string]any
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", directory.ErrUnavailable, err)
	}
	out := make([]domain.Destination, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordToDestination(rec))
	}
	return out, nil
}

// recordToDestination normalizes the raw record's keys and maps the dataset
// columns onto the domain type.
func recordToDestination(rec map[string]any) domain.Destination {
	fields := make(map[string]string, len(rec))
	for k, v := range rec {
		fields[domain.NormalizeRecordKey(k)] = fieldString(v)
	}
	return domain.Destination{
		ID:                   domain.DestinationID(fields["ID"]),
		Name:                 fields["Destination"],
		Country:              fields["Country"],
		Region:               fields["Region"],
		Category:             fields["Category"],
		Latitude:             fields["Latitude"],
		Longitude:            fields["Longitude"],
		Currency:             fields["Currency"],
		Language:             fields["Language"],
		BestTimeToVisit:      fields["Best Time to Visit"],
		CostOfLiving:         fields["Cost of Living"],
		Safety:               fields["Safety"],
		AnnualTourists:       fields["Approximate Annual Tourists"],
		CulturalSignificance: fields["Cultural Significance"],
		FamousFoods:          fields["Famous Foods"],
		Description:          fields["Description"],
	}
}

// fieldString renders a decoded JSON value as the dataset's string form.
// The dataset serves strings, but numeric-looking columns occasionally come
// through as JSON numbers.
func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
