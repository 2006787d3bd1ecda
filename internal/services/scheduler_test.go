package services

import (
	"freight-dispatch-service/internal/domain"
	"reflect"
	"testing"
)

func mustBuild(t *testing.T, desc domain.NetworkDescription) *SimulationState {
	t.Helper()
	state, err := BuildState(desc)
	if err != nil {
		t.Fatalf("build state: %v", err)
	}
	return state
}

func scenarioA() domain.NetworkDescription {
	return domain.NetworkDescription{
		Locations: []string{"A", "B", "C"},
		Routes: []domain.RouteSpec{
			{RouteID: "E1", LocationA: "A", LocationB: "B", DurationMinutes: 30},
			{RouteID: "E2", LocationA: "B", LocationB: "C", DurationMinutes: 10},
		},
		Carriers: []domain.CarrierSpec{{CarrierID: "Q1", Capacity: 6, StartLocation: "B"}},
		Packages: []domain.PackageSpec{{PackageID: "K1", Weight: 5, Origin: "A", Destination: "C"}},
	}
}

func TestScheduleSingleDelivery(t *testing.T) {
	state := mustBuild(t, scenarioA())
	res := Schedule(state)

	want := []domain.Event{
		{Timestamp: 1800, CarrierID: "Q1", From: "B", Loaded: []string{}, To: "A", Unloaded: []string{}},
		{Timestamp: 1800, CarrierID: "Q1", From: "A", Loaded: []string{"K1"}, To: "A", Unloaded: []string{}},
		{Timestamp: 3600, CarrierID: "Q1", From: "A", Loaded: []string{"K1"}, To: "B", Unloaded: []string{}},
		{Timestamp: 4200, CarrierID: "Q1", From: "B", Loaded: []string{"K1"}, To: "C", Unloaded: []string{}},
		{Timestamp: 4200, CarrierID: "Q1", From: "C", Loaded: []string{}, To: "C", Unloaded: []string{"K1"}},
	}
	if !reflect.DeepEqual(res.Events, want) {
		t.Fatalf("events =\n%+v\nwant\n%+v", res.Events, want)
	}

	if got := res.Events[len(res.Events)-1].Timestamp; got != 4200 {
		t.Fatalf("final timestamp = %d, want 4200", got)
	}
	if len(res.Stranded) != 0 {
		t.Fatalf("unexpected stranded packages: %+v", res.Stranded)
	}
	if !reflect.DeepEqual(res.Delivered, []string{"K1"}) {
		t.Fatalf("delivered = %v, want [K1]", res.Delivered)
	}
	if c := res.Carriers[0]; c.Location != "C" || c.Time != 4200 {
		t.Fatalf("carrier summary = %+v", c)
	}
	if !state.Packages[0].IsDelivered() {
		t.Fatalf("K1 state = %s, want delivered", state.Packages[0].Current.State)
	}
}

func TestScheduleDisconnectedPackageIsStranded(t *testing.T) {
	desc := scenarioA()
	desc.Locations = append(desc.Locations, "X", "Y")
	desc.Routes = append(desc.Routes, domain.RouteSpec{RouteID: "E3", LocationA: "X", LocationB: "Y", DurationMinutes: 5})
	desc.Packages = append(desc.Packages, domain.PackageSpec{PackageID: "K2", Weight: 1, Origin: "X", Destination: "Y"})

	res := Schedule(mustBuild(t, desc))

	if len(res.Stranded) != 1 {
		t.Fatalf("stranded = %+v, want only K2", res.Stranded)
	}
	s := res.Stranded[0]
	if s.PackageID != "K2" || s.State != domain.AtLocation || s.Location != "X" {
		t.Fatalf("stranded = %+v, want K2 waiting at X", s)
	}
	for _, e := range res.Events {
		if e.From == "X" || e.To == "X" {
			t.Fatalf("carrier should never reach X: %+v", e)
		}
	}
}

func TestScheduleUnreachableDestinationIsNotPicked(t *testing.T) {
	desc := domain.NetworkDescription{
		Locations: []string{"A", "B", "Island"},
		Routes:    []domain.RouteSpec{{RouteID: "E1", LocationA: "A", LocationB: "B", DurationMinutes: 1}},
		Carriers:  []domain.CarrierSpec{{CarrierID: "Q1", Capacity: 10, StartLocation: "A"}},
		Packages:  []domain.PackageSpec{{PackageID: "K1", Weight: 1, Origin: "B", Destination: "Island"}},
	}

	res := Schedule(mustBuild(t, desc))
	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %+v", res.Events)
	}
	if len(res.Stranded) != 1 || res.Stranded[0].State != domain.AtLocation {
		t.Fatalf("stranded = %+v, want K1 left at B", res.Stranded)
	}
}

func TestScheduleFirstFitByManifestOrder(t *testing.T) {
	desc := domain.NetworkDescription{
		Routes: []domain.RouteSpec{{RouteID: "E1", LocationA: "A", LocationB: "B", DurationMinutes: 10}},
		Carriers: []domain.CarrierSpec{
			{CarrierID: "Q1", Capacity: 6, StartLocation: "A"},
		},
		Packages: []domain.PackageSpec{
			{PackageID: "K1", Weight: 4, Origin: "A", Destination: "B"},
			{PackageID: "K2", Weight: 3, Origin: "A", Destination: "B"},
			{PackageID: "K3", Weight: 2, Origin: "A", Destination: "B"},
		},
	}

	res := Schedule(mustBuild(t, desc))

	// K1 and K3 fit together (6), K2 is skipped and fetched on a second trip.
	first := res.Events[0]
	if !reflect.DeepEqual(first.Loaded, []string{"K1", "K3"}) || first.From != "A" || first.To != "A" {
		t.Fatalf("first load = %+v, want K1,K3 loaded at A", first)
	}
	if len(res.Stranded) != 0 {
		t.Fatalf("unexpected stranded: %+v", res.Stranded)
	}
	if !reflect.DeepEqual(res.Delivered, []string{"K1", "K3", "K2"}) {
		t.Fatalf("delivered = %v", res.Delivered)
	}
	// A->B (600) unload, B->A (1200), load, A->B (1800) unload.
	if res.Carriers[0].Time != 1800 {
		t.Fatalf("final time = %d, want 1800", res.Carriers[0].Time)
	}
}

func TestScheduleRemainderLeftForNextCarrier(t *testing.T) {
	desc := domain.NetworkDescription{
		Routes: []domain.RouteSpec{
			{RouteID: "E1", LocationA: "A", LocationB: "B", DurationMinutes: 10},
		},
		Carriers: []domain.CarrierSpec{
			{CarrierID: "small", Capacity: 3, StartLocation: "A"},
			{CarrierID: "big", Capacity: 10, StartLocation: "B"},
		},
		Packages: []domain.PackageSpec{
			{PackageID: "K1", Weight: 3, Origin: "A", Destination: "B"},
			{PackageID: "K2", Weight: 8, Origin: "A", Destination: "B"},
		},
	}

	res := Schedule(mustBuild(t, desc))

	if !reflect.DeepEqual(res.Carriers[0].Delivered, []string{"K1"}) {
		t.Fatalf("small delivered = %v, want [K1]", res.Carriers[0].Delivered)
	}
	if !reflect.DeepEqual(res.Carriers[1].Delivered, []string{"K2"}) {
		t.Fatalf("big delivered = %v, want [K2]", res.Carriers[1].Delivered)
	}
	// Clocks are per carrier: the second carrier starts again at zero.
	for _, e := range res.Events {
		if e.CarrierID == "big" && e.Timestamp == 600 && e.To == "A" {
			return
		}
	}
	t.Fatalf("big carrier should reach A at t=600, events: %+v", res.Events)
}

func TestScheduleTooHeavyForEveryCarrier(t *testing.T) {
	desc := scenarioA()
	desc.Packages[0].Weight = 7

	res := Schedule(mustBuild(t, desc))
	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %+v", res.Events)
	}
	if len(res.Stranded) != 1 || res.Stranded[0].PackageID != "K1" {
		t.Fatalf("stranded = %+v", res.Stranded)
	}
}

func TestScheduleDropsAlongTheWay(t *testing.T) {
	desc := domain.NetworkDescription{
		Routes: []domain.RouteSpec{
			{RouteID: "E1", LocationA: "A", LocationB: "B", DurationMinutes: 1},
			{RouteID: "E2", LocationA: "B", LocationB: "C", DurationMinutes: 1},
			{RouteID: "E3", LocationA: "C", LocationB: "D", DurationMinutes: 1},
		},
		Carriers: []domain.CarrierSpec{{CarrierID: "Q1", Capacity: 10, StartLocation: "A"}},
		Packages: []domain.PackageSpec{
			{PackageID: "far", Weight: 1, Origin: "A", Destination: "D"},
			{PackageID: "near", Weight: 1, Origin: "A", Destination: "B"},
			{PackageID: "here", Weight: 1, Origin: "A", Destination: "A"},
		},
	}

	res := Schedule(mustBuild(t, desc))

	if !reflect.DeepEqual(res.Delivered, []string{"here", "near", "far"}) {
		t.Fatalf("delivered = %v", res.Delivered)
	}
	var unloads []domain.Event
	for _, e := range res.Events {
		if len(e.Unloaded) > 0 {
			unloads = append(unloads, e)
		}
	}
	wantAt := []domain.Location{"A", "B", "D"}
	wantTime := []int{0, 60, 180}
	for i, e := range unloads {
		if e.To != wantAt[i] || e.Timestamp != wantTime[i] || len(e.Loaded) != 0 {
			t.Fatalf("unload %d = %+v, want at %s t=%d", i, e, wantAt[i], wantTime[i])
		}
	}
}

func TestScheduleInvariants(t *testing.T) {
	desc := domain.NetworkDescription{
		Routes: []domain.RouteSpec{
			{RouteID: "r1", LocationA: "A", LocationB: "B", DurationMinutes: 3},
			{RouteID: "r2", LocationA: "B", LocationB: "C", DurationMinutes: 4},
			{RouteID: "r3", LocationA: "C", LocationB: "D", DurationMinutes: 2},
			{RouteID: "r4", LocationA: "D", LocationB: "A", DurationMinutes: 9},
			{RouteID: "r5", LocationA: "B", LocationB: "D", DurationMinutes: 5},
			{RouteID: "r6", LocationA: "A", LocationB: "C", DurationMinutes: 7},
		},
		Carriers: []domain.CarrierSpec{
			{CarrierID: "T1", Capacity: 5, StartLocation: "A"},
			{CarrierID: "T2", Capacity: 9, StartLocation: "C"},
		},
		Packages: []domain.PackageSpec{
			{PackageID: "P1", Weight: 2, Origin: "A", Destination: "C"},
			{PackageID: "P2", Weight: 3, Origin: "B", Destination: "D"},
			{PackageID: "P3", Weight: 4, Origin: "D", Destination: "A"},
			{PackageID: "P4", Weight: 5, Origin: "C", Destination: "B"},
			{PackageID: "P5", Weight: 8, Origin: "B", Destination: "A"},
			{PackageID: "P6", Weight: 1, Origin: "B", Destination: "C"},
		},
	}
	state := mustBuild(t, desc)
	res := Schedule(state)

	weights := map[string]int{}
	dests := map[string]domain.Location{}
	for _, p := range state.Packages {
		weights[p.PackageID] = p.Weight
		dests[p.PackageID] = p.Destination
	}
	capacity := map[string]int{"T1": 5, "T2": 9}
	lastTime := map[string]int{}
	unloadedAt := map[string]domain.Location{}

	for _, e := range res.Events {
		held := 0
		for _, id := range e.Loaded {
			held += weights[id]
			if _, done := unloadedAt[id]; done {
				t.Fatalf("package %s held after delivery: %+v", id, e)
			}
		}
		if held > capacity[e.CarrierID] {
			t.Fatalf("carrier %s over capacity (%d): %+v", e.CarrierID, held, e)
		}
		if e.Timestamp < lastTime[e.CarrierID] {
			t.Fatalf("carrier %s clock went backwards: %+v", e.CarrierID, e)
		}
		lastTime[e.CarrierID] = e.Timestamp
		for _, id := range e.Unloaded {
			unloadedAt[id] = e.To
		}
	}

	if len(res.Stranded) != 0 {
		t.Fatalf("stranded = %+v, want none on a connected graph", res.Stranded)
	}
	for id, dest := range dests {
		if unloadedAt[id] != dest {
			t.Fatalf("package %s unloaded at %q, want %q", id, unloadedAt[id], dest)
		}
	}
}
