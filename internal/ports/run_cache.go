package ports

import (
	"context"
	"freight-dispatch-service/internal/domain"
)

// Optional cache of finished runs keyed by network fingerprint.
type RunCache interface {
	// Return domain.ErrCacheMiss when nothing is cached for the fingerprint.
	Get(ctx context.Context, fingerprint string) (*domain.SimulationRun, error)
	Put(ctx context.Context, run *domain.SimulationRun) error
}
