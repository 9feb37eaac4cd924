package ports

import (
	"context"

	"pressflow/internal/core/domain/model/stock"
)

// StockMovementRepository defines the persistence contract for the stock
// journal. The journal is append-only: movements are never updated or
// deleted, so the interface deliberately offers no mutation beyond Append.
type StockMovementRepository interface {
	// Append persists a new movement record.
	Append(ctx context.Context, movement stock.Movement) error

	// List retrieves movements matching the filter, newest first.
	List(ctx context.Context, filter stock.Filter) ([]stock.Movement, error)
}
