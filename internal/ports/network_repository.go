package ports

import (
	"context"
	"freight-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving the stored network description.
type NetworkRepository interface {
	// Load locations, routes, carriers and packages in their stored order.
	LoadNetwork(ctx context.Context) (domain.NetworkDescription, error)
}
