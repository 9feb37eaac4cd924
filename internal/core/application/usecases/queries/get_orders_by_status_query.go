package queries

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders currently sitting in one
// pipeline stage, oldest first. Department dashboards poll their stage's
// queue with this.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for one pipeline stage's queue.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested pipeline stage.
func (q GetOrdersByStatusQuery) Status() order.Status { return q.status }

// GetOrdersByStatusQueryResponse is one row of a department's work queue.
type GetOrdersByStatusQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Customer      string
	Product       string
	Category      string
	QuantityUnits int
	RevisionAlert string
	CreatedAt     time.Time
}
