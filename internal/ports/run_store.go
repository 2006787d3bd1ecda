package ports

import (
	"context"
	"freight-dispatch-service/internal/domain"
)

// Contract for persisting simulation runs.
type RunStore interface {
	SaveRun(ctx context.Context, run *domain.SimulationRun) error
	// Return domain.ErrRunNotFound when no run has the given id.
	GetRun(ctx context.Context, runID string) (*domain.SimulationRun, error)
}
