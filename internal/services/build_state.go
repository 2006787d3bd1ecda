package services

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/graph"
	"strings"
)

// Seconds per minute of route duration in a network description.
const secondsPerMinute = 60

// Everything the scheduler reads and mutates during one run.
// Carriers and Packages keep roster and manifest order.
type SimulationState struct {
	Graph    *graph.RouteGraph
	Carriers []*domain.Carrier
	Packages []*domain.Package
}

// BuildState validates a network description and turns it into a fresh
// SimulationState. Malformed input is rejected here, never mid-simulation.
//
// Locations are the declared ones plus every route endpoint. Carriers and
// packages may only reference known locations.
func BuildState(desc domain.NetworkDescription) (*SimulationState, error) {
	g := graph.NewRouteGraph()

	for i, l := range desc.Locations {
		name := strings.TrimSpace(l)
		if name == "" {
			return nil, fmt.Errorf("build state: location at index %d is empty: %w", i, domain.ErrInvalidInput)
		}
		g.AddLocation(domain.Location(name))
	}

	routeIDs := make(map[string]struct{}, len(desc.Routes))
	for i, r := range desc.Routes {
		id := strings.TrimSpace(r.RouteID)
		if id == "" {
			return nil, fmt.Errorf("build state: route at index %d has empty id: %w", i, domain.ErrInvalidInput)
		}
		if _, dup := routeIDs[id]; dup {
			return nil, fmt.Errorf("build state: route %q: %w", id, domain.ErrDuplicateID)
		}
		routeIDs[id] = struct{}{}

		a, b := strings.TrimSpace(r.LocationA), strings.TrimSpace(r.LocationB)
		if a == "" || b == "" {
			return nil, fmt.Errorf("build state: route %q has an empty endpoint: %w", id, domain.ErrInvalidInput)
		}
		if err := g.AddRoute(domain.Location(a), domain.Location(b), r.DurationMinutes*secondsPerMinute); err != nil {
			return nil, fmt.Errorf("build state: route %q: %w", id, err)
		}
	}

	state := &SimulationState{
		Graph:    g,
		Carriers: make([]*domain.Carrier, 0, len(desc.Carriers)),
		Packages: make([]*domain.Package, 0, len(desc.Packages)),
	}

	carrierIDs := make(map[string]struct{}, len(desc.Carriers))
	for i, c := range desc.Carriers {
		id := strings.TrimSpace(c.CarrierID)
		if id == "" {
			return nil, fmt.Errorf("build state: carrier at index %d has empty id: %w", i, domain.ErrInvalidInput)
		}
		if _, dup := carrierIDs[id]; dup {
			return nil, fmt.Errorf("build state: carrier %q: %w", id, domain.ErrDuplicateID)
		}
		carrierIDs[id] = struct{}{}

		if c.Capacity <= 0 {
			return nil, fmt.Errorf("build state: carrier %q capacity must be positive, got %d: %w", id, c.Capacity, domain.ErrInvalidInput)
		}
		start := domain.Location(strings.TrimSpace(c.StartLocation))
		if !g.HasLocation(start) {
			return nil, fmt.Errorf("build state: carrier %q start %q: %w", id, start, domain.ErrUnknownLocation)
		}
		state.Carriers = append(state.Carriers, domain.NewCarrier(id, c.Capacity, start))
	}

	packageIDs := make(map[string]struct{}, len(desc.Packages))
	for i, p := range desc.Packages {
		id := strings.TrimSpace(p.PackageID)
		if id == "" {
			return nil, fmt.Errorf("build state: package at index %d has empty id: %w", i, domain.ErrInvalidInput)
		}
		if _, dup := packageIDs[id]; dup {
			return nil, fmt.Errorf("build state: package %q: %w", id, domain.ErrDuplicateID)
		}
		packageIDs[id] = struct{}{}

		if p.Weight <= 0 {
			return nil, fmt.Errorf("build state: package %q weight must be positive, got %d: %w", id, p.Weight, domain.ErrInvalidInput)
		}
		origin := domain.Location(strings.TrimSpace(p.Origin))
		if !g.HasLocation(origin) {
			return nil, fmt.Errorf("build state: package %q origin %q: %w", id, origin, domain.ErrUnknownLocation)
		}
		dest := domain.Location(strings.TrimSpace(p.Destination))
		if !g.HasLocation(dest) {
			return nil, fmt.Errorf("build state: package %q destination %q: %w", id, dest, domain.ErrUnknownLocation)
		}
		state.Packages = append(state.Packages, domain.NewPackage(id, p.Weight, origin, dest))
	}

	return state, nil
}

// Stranded lists packages that were not delivered, in manifest order.
func (s *SimulationState) Stranded() []domain.StrandedPackage {
	var out []domain.StrandedPackage
	for _, p := range s.Packages {
		if p.IsDelivered() {
			continue
		}
		out = append(out, domain.StrandedPackage{
			PackageID: p.PackageID,
			Location:  p.Current.Location,
			State:     p.Current.State,
		})
	}
	return out
}
