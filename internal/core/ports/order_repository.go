package ports

import (
	"context"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their pipeline status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the stored version must match the aggregate's loaded
	// version, otherwise a VersionIsInvalidError is returned and nothing is
	// written. Station submissions racing on the same order lose here.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-facing order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first. Department dashboards poll their stage's queue with this.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllWithReservations retrieves all orders that hold at least one roll
	// reservation. Used by reservation reconciliation.
	GetAllWithReservations(ctx context.Context) ([]*order.Order, error)
}
