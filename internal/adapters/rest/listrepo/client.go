// Package listrepo is the HTTP adapter for the curated-list API.
package listrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/destination-europe/explorer-client/internal/adapters/rest/transport"
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
)

type Client struct {
	t *transport.Client
}

var _ listrepo.Client = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{t: transport.New(baseURL, timeout)}
}

type entryDTO struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

type reviewDTO struct {
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Nickname string    `json:"nickname"`
	Date     time.Time `json:"date"`
}

type listDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
	User        struct {
		Nickname string `json:"nickname"`
	} `json:"user"`
	Destinations  []entryDTO  `json:"destinations"`
	Reviews       []reviewDTO `json:"reviews"`
	AverageRating float64     `json:"averageRating"`
	LastModified  time.Time   `json:"lastModified"`
}

func (c *Client) ListPublic(ctx context.Context, limit int) ([]domain.List, error) {
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/lists", nil, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	var payload struct {
		Lists []listDTO `json:"listsL"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", listrepo.ErrUnavailable, err)
	}
	out := toDomainLists(payload.Lists)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *Client) ListMine(ctx context.Context, cred listrepo.Credential) ([]domain.List, error) {
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/lists/mine", nil, string(cred), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	var dtos []listDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", listrepo.ErrUnavailable, err)
	}
	return toDomainLists(dtos), nil
}

func (c *Client) ListHome(ctx context.Context, cred listrepo.Credential, page, limit int) (listrepo.HomeCollections, error) {
	q := url.Values{}
	if err := transport.QueryParam(q, "page", page); err != nil {
		return listrepo.HomeCollections{}, err
	}
	if err := transport.QueryParam(q, "limit", limit); err != nil {
		return listrepo.HomeCollections{}, err
	}
	status, body, err := c.t.DoJSON(ctx, http.MethodGet, "/lists/home", q, string(cred), nil)
	if err != nil {
		return listrepo.HomeCollections{}, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return listrepo.HomeCollections{}, statusErr(status)
	}
	var payload struct {
		PublicLists []listDTO `json:"publicLists"`
		UserLists   []listDTO `json:"userLists"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return listrepo.HomeCollections{}, fmt.Errorf("%w: decode: %v", listrepo.ErrUnavailable, err)
	}
	return listrepo.HomeCollections{
		PublicLists: toDomainLists(payload.PublicLists),
		UserLists:   toDomainLists(payload.UserLists),
	}, nil
}

func (c *Client) Create(ctx context.Context, cred listrepo.Credential, in listrepo.CreateListInput) (domain.List, error) {
	payload := struct {
		Name         string     `json:"name"`
		Description  string     `json:"description"`
		Destinations []entryDTO `json:"destinations"`
		Visibility   string     `json:"visibility"`
	}{
		Name:         in.Name,
		Description:  in.Description,
		Destinations: toEntryDTOs(in.Destinations),
		Visibility:   string(in.Visibility),
	}
	status, body, err := c.t.DoJSON(ctx, http.MethodPost, "/lists", nil, string(cred), payload)
	if err != nil {
		return domain.List{}, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return domain.List{}, statusErr(status)
	}
	return decodeList(body)
}

type updateListRequest struct {
	Name         nullable.Nullable[string] `json:"name,omitempty"`
	Description  nullable.Nullable[string] `json:"description,omitempty"`
	Visibility   nullable.Nullable[string] `json:"visibility,omitempty"`
	Destinations *[]entryDTO               `json:"destinations,omitempty"`
}

func (c *Client) Update(ctx context.Context, cred listrepo.Credential, id domain.ListID, in listrepo.UpdateListInput) (domain.List, error) {
	payload := updateListRequest{
		Name:        in.Name,
		Description: in.Description,
		Visibility:  in.Visibility,
	}
	if in.Destinations != nil {
		dtos := toEntryDTOs(*in.Destinations)
		payload.Destinations = &dtos
	}
	status, body, err := c.t.DoJSON(ctx, http.MethodPut, "/lists/"+url.PathEscape(string(id)), nil, string(cred), payload)
	if err != nil {
		return domain.List{}, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return domain.List{}, statusErr(status)
	}
	return decodeList(body)
}

func (c *Client) Delete(ctx context.Context, cred listrepo.Credential, id domain.ListID) error {
	status, _, err := c.t.DoJSON(ctx, http.MethodDelete, "/lists/"+url.PathEscape(string(id)), nil, string(cred), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return statusErr(status)
	}
	return nil
}

func (c *Client) AddReview(ctx context.Context, cred listrepo.Credential, id domain.ListID, rating int, comment string) ([]domain.Review, error) {
	payload := struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}{Rating: rating, Comment: comment}
	status, body, err := c.t.DoJSON(ctx, http.MethodPost, "/lists/"+url.PathEscape(string(id))+"/reviews", nil, string(cred), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", listrepo.ErrUnavailable, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, statusErr(status)
	}
	var out struct {
		Reviews []reviewDTO `json:"reviews"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", listrepo.ErrUnavailable, err)
	}
	return toDomainReviews(out.Reviews), nil
}

func statusErr(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return listrepo.ErrUnauthorized
	case http.StatusNotFound:
		return listrepo.ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", listrepo.ErrUnavailable, status)
	}
}

func decodeList(body []byte) (domain.List, error) {
	var dto listDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.List{}, fmt.Errorf("%w: decode: %v", listrepo.ErrUnavailable, err)
	}
	return toDomainList(dto), nil
}

func toDomainLists(dtos []listDTO) []domain.List {
	out := make([]domain.List, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toDomainList(dto))
	}
	return out
}

func toDomainList(dto listDTO) domain.List {
	entries := make([]domain.ListEntry, 0, len(dto.Destinations))
	for _, e := range dto.Destinations {
		entries = append(entries, domain.ListEntry{Name: e.Name, DestinationID: domain.DestinationID(e.Details)})
	}
	return domain.List{
		ID:            domain.ListID(dto.ID),
		Name:          dto.Name,
		Description:   dto.Description,
		Visibility:    domain.Visibility(dto.Visibility),
		OwnerNickname: dto.User.Nickname,
		Destinations:  entries,
		Reviews:       toDomainReviews(dto.Reviews),
		AverageRating: dto.AverageRating,
		LastModified:  dto.LastModified,
	}
}

func toDomainReviews(dtos []reviewDTO) []domain.Review {
	out := make([]domain.Review, 0, len(dtos))
	for _, r := range dtos {
		out = append(out, domain.Review{
			Rating:   r.Rating,
			Comment:  r.Comment,
			Nickname: r.Nickname,
			Date:     r.Date,
		})
	}
	return out
}

func toEntryDTOs(entries []domain.ListEntry) []entryDTO {
	out := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryDTO{Name: e.Name, Details: string(e.DestinationID)})
	}
	return out
}
