package maprender

import "github.com/destination-europe/explorer-client/internal/domain"

// Engine creates map surfaces. The actual rendering engine is an external
// capability; the controller only assumes these operations.
type Engine interface {
	// NewMap creates a fresh map surface centered on center at zoom.
	NewMap(center domain.Coordinates, zoom int) Map
}

// Map is a single live map surface holding at most one marker.
type Map interface {
	SetView(center domain.Coordinates, zoom int)

	// PlaceMarker creates the marker at point, or relocates and re-labels the
	// existing one.
	PlaceMarker(point domain.Coordinates, label string)

	// InvalidateSize forces a resize/redraw pass. Needed after the surface was
	// hidden, when the container size may have been miscalculated.
	InvalidateSize()

	// Remove destroys the surface. The Map must not be used afterwards.
	Remove()
}
