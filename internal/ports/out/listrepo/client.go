package listrepo

import (
	"context"

	"github.com/oapi-codegen/nullable"

	"github.com/destination-europe/explorer-client/internal/domain"
)

// Credential is the bearer token attached to protected calls. Absence is not
// pre-validated client-side; the server rejects and the adapter maps that to
// ErrUnauthorized.
type Credential string

// CreateListInput is the payload for creating a list.
type CreateListInput struct {
	Name         string
	Description  string
	Destinations []domain.ListEntry
	Visibility   domain.Visibility
}

// UpdateListInput patches an existing list. Name, when specified, cannot be
// null. Nullable fields distinguish "leave unchanged" from "clear".
type UpdateListInput struct {
	Name         nullable.Nullable[string]
	Description  nullable.Nullable[string]
	Visibility   nullable.Nullable[string]
	Destinations *[]domain.ListEntry // nil leaves the entries unchanged
}

// HomeCollections is the two independently-shaped collections returned by the
// home listing endpoint. The caller merges and paginates them client-side.
type HomeCollections struct {
	PublicLists []domain.List
	UserLists   []domain.List
}

// Client provides access to curated destination lists and their reviews.
type Client interface {
	// ListPublic returns the guest-visible public lists (server-capped).
	ListPublic(ctx context.Context, limit int) ([]domain.List, error)

	// ListMine returns the caller's own lists, unpaged.
	ListMine(ctx context.Context, cred Credential) ([]domain.List, error)

	// ListHome returns the public page plus the caller's personal lists.
	ListHome(ctx context.Context, cred Credential, page, limit int) (HomeCollections, error)

	Create(ctx context.Context, cred Credential, in CreateListInput) (domain.List, error)
	Update(ctx context.Context, cred Credential, id domain.ListID, in UpdateListInput) (domain.List, error)
	Delete(ctx context.Context, cred Credential, id domain.ListID) error

	// AddReview appends a review and returns the server's authoritative
	// review sequence (server-side derived fields may have changed).
	AddReview(ctx context.Context, cred Credential, id domain.ListID, rating int, comment string) ([]domain.Review, error)
}
