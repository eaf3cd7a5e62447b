// Package directory is an in-memory implementation of the directory port,
// used in tests and offline demos.
package directory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/directory"
)

// Client serves destinations from a seeded in-memory dataset.
// It is safe for concurrent use.
type Client struct {
	mu   sync.RWMutex
	byID map[domain.DestinationID]domain.Destination
	all  []domain.Destination
}

var _ directory.Client = (*Client)(nil)

func NewClient(ds ...domain.Destination) *Client {
	c := &Client{byID: make(map[domain.DestinationID]domain.Destination)}
	c.Seed(ds...)
	return c
}

func (c *Client) Seed(ds ...domain.Destination) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range ds {
		if _, ok := c.byID[d.ID]; !ok {
			c.all = append(c.all, d)
		}
		c.byID[d.ID] = d
	}
}

func (c *Client) SearchByFields(ctx context.Context, fields []directory.SearchField, term string) ([]domain.Destination, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	term = strings.ToLower(term)
	out := make([]domain.Destination, 0)
	for _, d := range c.all {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(fieldValue(d, f)), term) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byID[id]
	if !ok {
		return domain.Destination{}, directory.ErrNotFound
	}
	return d, nil
}

func (c *Client) GetCoordinates(ctx context.Context, id domain.DestinationID) (domain.Coordinates, error) {
	d, err := c.GetByID(ctx, id)
	if err != nil {
		return domain.Coordinates{}, err
	}
	coords, ok := d.Coordinates()
	if !ok {
		return domain.Coordinates{}, directory.ErrNotFound
	}
	return coords, nil
}

func (c *Client) SuggestByNamePrefix(ctx context.Context, prefix string) ([]domain.Destination, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	prefix = strings.ToLower(prefix)
	out := make([]domain.Destination, 0)
	for _, d := range c.all {
		if !d.Valid() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(d.Name), prefix) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (c *Client) Countries(ctx context.Context) ([]string, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, d := range c.all {
		if d.Country == "" {
			continue
		}
		if _, ok := seen[d.Country]; ok {
			continue
		}
		seen[d.Country] = struct{}{}
		out = append(out, d.Country)
	}
	sort.Strings(out)
	return out, nil
}

func fieldValue(d domain.Destination, f directory.SearchField) string {
	switch f {
	case directory.FieldDestination:
		return d.Name
	case directory.FieldRegion:
		return d.Region
	case directory.FieldCountry:
		return d.Country
	default:
		return ""
	}
}
