package directory

import (
	"context"

	"github.com/destination-europe/explorer-client/internal/domain"
)

// SearchField is a destination attribute the search endpoint can match on.
type SearchField string

const (
	FieldDestination SearchField = "Destination"
	FieldRegion      SearchField = "Region"
	FieldCountry     SearchField = "Country"
)

// Client provides read access to the destination dataset.
//
// Implementations must normalize dataset record keys (BOM/whitespace
// artifacts) before building domain values; see domain.NormalizeRecordKeys.
type Client interface {
	// SearchByFields matches term against each of the given fields.
	// A "no matches" response is returned as an empty slice, not an error.
	SearchByFields(ctx context.Context, fields []SearchField, term string) ([]domain.Destination, error)

	GetByID(ctx context.Context, id domain.DestinationID) (domain.Destination, error)

	// GetCoordinates looks up just the coordinate pair for a destination,
	// independent of a full detail fetch.
	GetCoordinates(ctx context.Context, id domain.DestinationID) (domain.Coordinates, error)

	// SuggestByNamePrefix returns autocomplete candidates. Rows lacking an id
	// or a name are dropped, never surfaced.
	SuggestByNamePrefix(ctx context.Context, prefix string) ([]domain.Destination, error)

	// Countries returns the distinct country names present in the dataset.
	Countries(ctx context.Context) ([]string, error)
}
