// Package mapview owns the single map surface and its single marker as an
// explicit Hidden/Shown state machine. The surface and marker are singletons:
// at most one of each exists at any time, gated by one visibility flag rather
// than by individual selections.
package mapview

import (
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/maprender"
)

// Default view used when a fresh surface is created.
var (
	DefaultCenter = domain.Coordinates{Latitude: 51.505, Longitude: -0.09}
)

const (
	DefaultZoom = 5
	PointZoom   = 13
)

// Controller drives the map lifecycle. It is not safe for concurrent use;
// like the rest of the browsing state it is driven from a single event loop.
type Controller struct {
	engine maprender.Engine

	surface   maprender.Map // nil while Hidden
	hasMarker bool
}

func NewController(engine maprender.Engine) *Controller {
	return &Controller{engine: engine}
}

// Shown reports whether a live surface exists.
func (c *Controller) Shown() bool { return c.surface != nil }

// SetVisible transitions the state machine. Hidden→Shown creates a fresh
// surface on the default view; Shown→Hidden destroys the surface and discards
// the marker unconditionally, so a later show re-initializes cleanly.
// Redundant transitions are no-ops.
func (c *Controller) SetVisible(visible bool) {
	switch {
	case visible && c.surface == nil:
		c.surface = c.engine.NewMap(DefaultCenter, DefaultZoom)
		c.hasMarker = false
	case !visible && c.surface != nil:
		c.surface.Remove()
		c.surface = nil
		c.hasMarker = false
	}
}

// ShowPoint re-centers the surface on point and places (or relocates and
// re-labels) the marker there. Valid only in Shown: on a Hidden controller it
// is a silent no-op, because callers are required to validate coordinates and
// visibility before routing a selection here.
func (c *Controller) ShowPoint(point domain.Coordinates, label string) {
	if c.surface == nil {
		return
	}
	c.surface.SetView(point, PointZoom)
	c.surface.PlaceMarker(point, label)
	c.hasMarker = true

	// The surface may have been hidden moments before; its container size can
	// be stale until a redraw pass.
	c.surface.InvalidateSize()
}

// HasMarker reports whether the current surface carries a marker.
func (c *Controller) HasMarker() bool { return c.surface != nil && c.hasMarker }
