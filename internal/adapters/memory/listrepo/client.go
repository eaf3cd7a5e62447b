// Package listrepo is an in-memory implementation of the listrepo port.
// It mirrors the API's ownership and visibility rules closely enough for
// service tests and offline demos.
package listrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/clock"
	"github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
)

// Client stores lists in memory, keyed by id, with insertion order preserved.
// Credentials are opaque tokens registered through Authorize; an unregistered
// credential fails protected calls with ErrUnauthorized.
type Client struct {
	mu       sync.Mutex
	clk      clock.Clock
	byID     map[domain.ListID]domain.List
	order    []domain.ListID
	nickname map[listrepo.Credential]string
}

var _ listrepo.Client = (*Client)(nil)

func NewClient(clk clock.Clock) *Client {
	return &Client{
		clk:      clk,
		byID:     make(map[domain.ListID]domain.List),
		order:    make([]domain.ListID, 0),
		nickname: make(map[listrepo.Credential]string),
	}
}

// Authorize registers cred as belonging to nickname.
func (c *Client) Authorize(cred listrepo.Credential, nickname string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nickname[cred] = nickname
}

// Seed inserts lists directly, bypassing ownership checks.
func (c *Client) Seed(lists ...domain.List) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range lists {
		if _, ok := c.byID[l.ID]; !ok {
			c.order = append(c.order, l.ID)
		}
		c.byID[l.ID] = cloneList(l)
	}
}

func (c *Client) ListPublic(ctx context.Context, limit int) ([]domain.List, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.List, 0)
	for _, id := range c.order {
		l := c.byID[id]
		if l.Visibility != domain.VisibilityPublic {
			continue
		}
		out = append(out, cloneList(l))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (c *Client) ListMine(ctx context.Context, cred listrepo.Credential) ([]domain.List, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	nick, ok := c.nickname[cred]
	if !ok {
		return nil, listrepo.ErrUnauthorized
	}
	out := make([]domain.List, 0)
	for _, id := range c.order {
		l := c.byID[id]
		if l.OwnerNickname == nick {
			out = append(out, cloneList(l))
		}
	}
	return out, nil
}

func (c *Client) ListHome(ctx context.Context, cred listrepo.Credential, page, limit int) (listrepo.HomeCollections, error) {
	public, err := c.ListPublic(ctx, 0)
	if err != nil {
		return listrepo.HomeCollections{}, err
	}
	if limit > 0 {
		start := (page - 1) * limit
		if start < 0 {
			start = 0
		}
		if start > len(public) {
			start = len(public)
		}
		end := start + limit
		if end > len(public) {
			end = len(public)
		}
		public = public[start:end]
	}
	mine, err := c.ListMine(ctx, cred)
	if err != nil {
		return listrepo.HomeCollections{}, err
	}
	return listrepo.HomeCollections{PublicLists: public, UserLists: mine}, nil
}

func (c *Client) Create(ctx context.Context, cred listrepo.Credential, in listrepo.CreateListInput) (domain.List, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	nick, ok := c.nickname[cred]
	if !ok {
		return domain.List{}, listrepo.ErrUnauthorized
	}
	l := domain.List{
		ID:            domain.ListID(uuid.NewString()),
		Name:          in.Name,
		Description:   in.Description,
		Visibility:    in.Visibility,
		OwnerNickname: nick,
		Destinations:  append([]domain.ListEntry(nil), in.Destinations...),
		Reviews:       []domain.Review{},
		LastModified:  c.clk.Now(),
	}
	c.byID[l.ID] = cloneList(l)
	c.order = append(c.order, l.ID)
	return l, nil
}

func (c *Client) Update(ctx context.Context, cred listrepo.Credential, id domain.ListID, in listrepo.UpdateListInput) (domain.List, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	nick, ok := c.nickname[cred]
	if !ok {
		return domain.List{}, listrepo.ErrUnauthorized
	}
	l, ok := c.byID[id]
	if !ok {
		return domain.List{}, listrepo.ErrNotFound
	}
	if l.OwnerNickname != nick {
		return domain.List{}, listrepo.ErrUnauthorized
	}
	if v, err := in.Name.Get(); err == nil {
		l.Name = v
	}
	if v, err := in.Description.Get(); err == nil {
		l.Description = v
	}
	if v, err := in.Visibility.Get(); err == nil {
		l.Visibility = domain.Visibility(v)
	}
	if in.Destinations != nil {
		l.Destinations = append([]domain.ListEntry(nil), (*in.Destinations)...)
	}
	l.LastModified = c.clk.Now()
	c.byID[id] = cloneList(l)
	return cloneList(l), nil
}

func (c *Client) Delete(ctx context.Context, cred listrepo.Credential, id domain.ListID) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	nick, ok := c.nickname[cred]
	if !ok {
		return listrepo.ErrUnauthorized
	}
	l, ok := c.byID[id]
	if !ok {
		return listrepo.ErrNotFound
	}
	if l.OwnerNickname != nick {
		return listrepo.ErrUnauthorized
	}
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Client) AddReview(ctx context.Context, cred listrepo.Credential, id domain.ListID, rating int, comment string) ([]domain.Review, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	nick, ok := c.nickname[cred]
	if !ok {
		return nil, listrepo.ErrUnauthorized
	}
	l, ok := c.byID[id]
	if !ok {
		return nil, listrepo.ErrNotFound
	}
	l.Reviews = append(l.Reviews, domain.Review{
		Rating:   rating,
		Comment:  comment,
		Nickname: nick,
		Date:     c.clk.Now(),
	})
	var sum int
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	l.AverageRating = float64(sum) / float64(len(l.Reviews))
	l.LastModified = c.clk.Now()
	c.byID[id] = cloneList(l)
	return append([]domain.Review(nil), l.Reviews...), nil
}

func cloneList(l domain.List) domain.List {
	out := l
	out.Destinations = append([]domain.ListEntry(nil), l.Destinations...)
	out.Reviews = append([]domain.Review(nil), l.Reviews...)
	return out
}
