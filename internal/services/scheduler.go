package services

import (
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/graph"

	"github.com/golang/glog"
)

// Outcome of one scheduling pass over a SimulationState.
type ScheduleResult struct {
	Events    []domain.Event
	Carriers  []domain.CarrierSummary
	Delivered []string
	Stranded  []domain.StrandedPackage
}

// Schedule runs the greedy pickup-and-deliver loop for every carrier.
//
// Carriers are processed one after another in roster order, each until it
// finds no more reachable work. Their clocks are independent: timestamps of
// different carriers do not form one shared timeline, and a later carrier
// only sees the packages the earlier ones left behind.
func Schedule(state *SimulationState) *ScheduleResult {
	var log domain.EventLog
	res := &ScheduleResult{Carriers: make([]domain.CarrierSummary, 0, len(state.Carriers))}

	for _, c := range state.Carriers {
		run := &carrierRun{state: state, carrier: c, log: &log}
		run.loop()

		res.Carriers = append(res.Carriers, domain.CarrierSummary{
			CarrierID: c.CarrierID,
			Location:  c.Location,
			Time:      c.Time,
			Delivered: run.delivered,
		})
		res.Delivered = append(res.Delivered, run.delivered...)
		glog.V(1).Infof("carrier=%s state=done loc=%s time=%d delivered=%d", c.CarrierID, c.Location, c.Time, len(run.delivered))
	}

	res.Events = log.Events()
	res.Stranded = state.Stranded()
	for _, s := range res.Stranded {
		glog.Warningf("package=%s stranded state=%s loc=%s", s.PackageID, s.State, s.Location)
	}
	return res
}

// Scheduling state of a single carrier.
type carrierRun struct {
	state     *SimulationState
	carrier   *domain.Carrier
	log       *domain.EventLog
	delivered []string
}

// loop cycles idle -> seeking -> carrying until no reachable package is left.
func (r *carrierRun) loop() {
	c := r.carrier
	for {
		sp := graph.Dijkstra(r.state.Graph, c.Location)
		target, ok := r.nearestPickup(sp)
		if !ok {
			return
		}
		glog.V(2).Infof("carrier=%s state=seeking from=%s target=%s dist=%d", c.CarrierID, c.Location, target, sp.Distance(target))

		if !r.travel(sp, target, false) {
			return
		}

		if n := r.loadHere(sp); n == 0 {
			// Unreachable in practice: the target held a package that fits an empty carrier.
			glog.Errorf("carrier=%s loaded nothing at target=%s", c.CarrierID, target)
			return
		}

		r.deliverHeld()
	}
}

// nearestPickup picks the closest location holding a package this carrier
// can take: unclaimed, light enough for an empty carrier, and with both its
// position and destination reachable.
func (r *carrierRun) nearestPickup(sp *graph.ShortestPaths) (domain.Location, bool) {
	seen := make(map[domain.Location]struct{})
	var candidates []domain.Location
	for _, p := range r.state.Packages {
		if !r.pickable(sp, p) {
			continue
		}
		if p.Weight > r.carrier.Capacity {
			continue
		}
		if _, dup := seen[p.Current.Location]; dup {
			continue
		}
		seen[p.Current.Location] = struct{}{}
		candidates = append(candidates, p.Current.Location)
	}
	return graph.Nearest(sp, candidates)
}

func (r *carrierRun) pickable(sp *graph.ShortestPaths, p *domain.Package) bool {
	return p.Unclaimed() && sp.Reachable(p.Current.Location) && sp.Reachable(p.Destination)
}

// loadHere loads, first-fit in manifest order, every waiting package at the
// current location that keeps the carrier within capacity.
// sp must come from a location connected to the current one.
func (r *carrierRun) loadHere(sp *graph.ShortestPaths) int {
	c := r.carrier
	loaded := 0
	for _, p := range r.state.Packages {
		if !r.pickable(sp, p) || p.Current.Location != c.Location {
			continue
		}
		if !c.CanFit(p) {
			glog.V(2).Infof("carrier=%s skip package=%s weight=%d load=%d capacity=%d", c.CarrierID, p.PackageID, p.Weight, c.Load(), c.Capacity)
			continue
		}
		if err := c.Pick(p); err != nil {
			glog.Errorf("carrier=%s err=%v", c.CarrierID, err)
			continue
		}
		loaded++
	}

	if loaded > 0 {
		glog.V(2).Infof("carrier=%s state=carrying loc=%s time=%d held=%v", c.CarrierID, c.Location, c.Time, c.PackageIDs())
		r.log.Append(domain.Event{
			Timestamp: c.Time,
			CarrierID: c.CarrierID,
			From:      c.Location,
			Loaded:    c.PackageIDs(),
			To:        c.Location,
		})
	}
	return loaded
}

// deliverHeld routes toward the destination of the earliest loaded package
// until the carrier is empty.
func (r *carrierRun) deliverHeld() {
	c := r.carrier
	for {
		r.unloadHere()
		if len(c.Packages) == 0 {
			return
		}

		sp := graph.Dijkstra(r.state.Graph, c.Location)
		if !r.travel(sp, c.Packages[0].Destination, true) {
			glog.Errorf("carrier=%s cannot reach destination=%s of package=%s", c.CarrierID, c.Packages[0].Destination, c.Packages[0].PackageID)
			return
		}
	}
}

// travel moves the carrier hop by hop along the shortest path to target,
// emitting one event per hop. With unloadOnArrival the carrier drops
// packages at intermediate stops and stops early once the head of its load
// has changed, so the caller can reroute. Returns false if target is unreachable.
func (r *carrierRun) travel(sp *graph.ShortestPaths, target domain.Location, unloadOnArrival bool) bool {
	c := r.carrier
	path, ok := graph.ReconstructPath(sp, target)
	if !ok {
		return false
	}

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		c.Move(to, sp.Distance(to)-sp.Distance(from))
		r.log.Append(domain.Event{
			Timestamp: c.Time,
			CarrierID: c.CarrierID,
			From:      from,
			Loaded:    c.PackageIDs(),
			To:        to,
		})

		if unloadOnArrival && to != target {
			r.unloadHere()
			if len(c.Packages) == 0 || c.Packages[0].Destination != target {
				return true
			}
		}
	}
	return true
}

// unloadHere drops every held package addressed to the current location.
func (r *carrierRun) unloadHere() {
	c := r.carrier
	dropped := c.DropArrived()
	if len(dropped) == 0 {
		return
	}

	ids := make([]string, 0, len(dropped))
	for _, p := range dropped {
		ids = append(ids, p.PackageID)
	}
	r.delivered = append(r.delivered, ids...)
	glog.V(2).Infof("carrier=%s unload loc=%s time=%d packages=%v", c.CarrierID, c.Location, c.Time, ids)
	r.log.Append(domain.Event{
		Timestamp: c.Time,
		CarrierID: c.CarrierID,
		From:      c.Location,
		To:        c.Location,
		Unloaded:  ids,
	})
}
