package services

import (
	"context"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
	"freight-dispatch-service/internal/ports"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

type RunSimulationRequest struct {
	// Nil means: use the network stored in the repository.
	Network *domain.NetworkDescription
}

// Dependencies of RunSimulation. Store and Cache are optional.
type Simulator struct {
	Repo  ports.NetworkRepository
	Store ports.RunStore
	Cache ports.RunCache
	Now   func() time.Time
}

// RunSimulation builds the simulation state, schedules every carrier and
// records the outcome.
//
// A cached run for the same network fingerprint is reused only while the
// store still holds it, so its RunID stays fetchable through GetRun; otherwise
// the network is rescheduled under a new RunID. Cache failures are logged and
// never fail the request; store failures on save do.
func (s *Simulator) RunSimulation(ctx context.Context, req RunSimulationRequest) (_ *domain.SimulationRun, err error) {
	defer obs.Time(ctx, "simulation.Run")(&err)

	var desc domain.NetworkDescription
	if req.Network != nil {
		desc = *req.Network
	} else {
		if s.Repo == nil {
			return nil, errors.New("run simulation: no network given and no repository configured")
		}
		desc, err = s.Repo.LoadNetwork(ctx)
		if err != nil {
			return nil, fmt.Errorf("run simulation: load network: %w", err)
		}
	}

	fingerprint := desc.Fingerprint()
	if cached := s.cachedRun(ctx, fingerprint); cached != nil {
		return cached, nil
	}

	state, err := BuildState(desc)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	result := Schedule(state)

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	run := &domain.SimulationRun{
		RunID:       uuid.New().String(),
		Fingerprint: fingerprint,
		CreatedAt:   now().UTC(),
		Events:      result.Events,
		Carriers:    result.Carriers,
		Stranded:    result.Stranded,
	}

	if s.Store != nil {
		if err := s.Store.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("run simulation: save run: %w", err)
		}
	}

	if s.Cache != nil {
		if cerr := s.Cache.Put(ctx, run); cerr != nil {
			glog.Warningf("op=simulation.Run cache put failed run_id=%s err=%v", run.RunID, cerr)
		}
	}

	return run, nil
}

// cachedRun returns the cached run for fingerprint, or nil when there is none
// or the store no longer has it.
func (s *Simulator) cachedRun(ctx context.Context, fingerprint string) *domain.SimulationRun {
	if s.Cache == nil {
		return nil
	}
	cached, err := s.Cache.Get(ctx, fingerprint)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			glog.Warningf("op=simulation.Run cache get failed fingerprint=%s err=%v", fingerprint, err)
		}
		return nil
	}
	if s.Store == nil {
		return cached
	}

	stored, err := s.Store.GetRun(ctx, cached.RunID)
	switch {
	case err == nil:
		return stored
	case errors.Is(err, domain.ErrRunNotFound):
		glog.Infof("op=simulation.Run cached run missing from store run_id=%s fingerprint=%s", cached.RunID, fingerprint)
	default:
		glog.Warningf("op=simulation.Run store check failed run_id=%s err=%v", cached.RunID, err)
	}
	return nil
}

// GetRun fetches a stored run by id.
func (s *Simulator) GetRun(ctx context.Context, runID string) (_ *domain.SimulationRun, err error) {
	defer obs.Time(ctx, "simulation.GetRun")(&err)

	if s.Store == nil {
		return nil, fmt.Errorf("get run %q: %w", runID, domain.ErrRunNotFound)
	}
	run, err := s.Store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run %q: %w", runID, err)
	}
	return run, nil
}
