// Package maprender is a recording map engine for tests. Surfaces keep a log
// of the operations applied to them so tests can assert on the exact calls.
package maprender

import (
	"sync"

	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/maprender"
)

type Engine struct {
	mu      sync.Mutex
	created []*Surface
}

var _ maprender.Engine = (*Engine)(nil)

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) NewMap(center domain.Coordinates, zoom int) maprender.Map {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := &Surface{Center: center, Zoom: zoom}
	e.created = append(e.created, s)
	return s
}

// Created returns every surface the engine has produced, in creation order,
// including removed ones.
func (e *Engine) Created() []*Surface {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Surface(nil), e.created...)
}

// Last returns the most recently created surface, or nil.
func (e *Engine) Last() *Surface {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.created) == 0 {
		return nil
	}
	return e.created[len(e.created)-1]
}

// Surface records the state and call history of one map instance.
type Surface struct {
	mu sync.Mutex

	Center domain.Coordinates
	Zoom   int

	Marker      domain.Coordinates
	MarkerLabel string
	HasMarker   bool

	Invalidated int
	Removed     bool
}

var _ maprender.Map = (*Surface)(nil)

func (s *Surface) SetView(center domain.Coordinates, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Center = center
	s.Zoom = zoom
}

func (s *Surface) PlaceMarker(point domain.Coordinates, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Marker = point
	s.MarkerLabel = label
	s.HasMarker = true
}

func (s *Surface) InvalidateSize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Invalidated++
}

func (s *Surface) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Removed = true
}
