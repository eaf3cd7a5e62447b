// Package maprender renders map state as log lines. A terminal has no map
// surface; the engine narrates what a graphical surface would do so the
// controller's behavior stays observable.
package maprender

import (
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/maprender"
	"github.com/destination-europe/explorer-client/internal/platform/logging"
)

type Engine struct {
	log *logging.Logger
}

var _ maprender.Engine = (*Engine)(nil)

func NewEngine(log *logging.Logger) *Engine {
	return &Engine{log: log}
}

func (e *Engine) NewMap(center domain.Coordinates, zoom int) maprender.Map {
	e.log.Debug("map: new surface centered on %.4f,%.4f zoom %d", center.Latitude, center.Longitude, zoom)
	return &surface{log: e.log}
}

type surface struct {
	log *logging.Logger
}

func (s *surface) SetView(center domain.Coordinates, zoom int) {
	s.log.Info("map: view %.4f,%.4f zoom %d", center.Latitude, center.Longitude, zoom)
}

func (s *surface) PlaceMarker(point domain.Coordinates, label string) {
	s.log.Info("map: marker %q at %.4f,%.4f", label, point.Latitude, point.Longitude)
}

func (s *surface) InvalidateSize() {
	s.log.Debug("map: invalidate size")
}

func (s *surface) Remove() {
	s.log.Debug("map: surface removed")
}
