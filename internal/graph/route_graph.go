package graph

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
)

// One adjacency entry: a neighbor reachable over a single route.
type Edge struct {
	To       domain.Location
	Duration int
}

// Undirected weighted graph over locations.
// Parallel routes between the same pair are kept as distinct edges.
// A RouteGraph is written once during construction and only read afterwards.
type RouteGraph struct {
	adj       map[domain.Location][]Edge
	locations []domain.Location
}

func NewRouteGraph() *RouteGraph {
	return &RouteGraph{adj: make(map[domain.Location][]Edge)}
}

// AddLocation registers a location with no routes. Re-adding is a no-op.
func (g *RouteGraph) AddLocation(l domain.Location) {
	if _, ok := g.adj[l]; ok {
		return
	}
	g.adj[l] = nil
	g.locations = append(g.locations, l)
}

// AddRoute inserts the route in both directions.
func (g *RouteGraph) AddRoute(a, b domain.Location, duration int) error {
	if duration <= 0 {
		return fmt.Errorf("add route %s-%s: duration must be positive, got %d: %w", a, b, duration, domain.ErrInvalidInput)
	}

	g.AddLocation(a)
	g.AddLocation(b)
	g.adj[a] = append(g.adj[a], Edge{To: b, Duration: duration})
	g.adj[b] = append(g.adj[b], Edge{To: a, Duration: duration})
	return nil
}

// Neighbors returns the adjacency of l, empty for unknown locations.
func (g *RouteGraph) Neighbors(l domain.Location) []Edge {
	return g.adj[l]
}

func (g *RouteGraph) HasLocation(l domain.Location) bool {
	_, ok := g.adj[l]
	return ok
}

// Locations in insertion order.
func (g *RouteGraph) Locations() []domain.Location {
	out := make([]domain.Location, len(g.locations))
	copy(out, g.locations)
	return out
}
