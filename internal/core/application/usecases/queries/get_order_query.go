// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/services"
	"pressflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of one order: its header,
// pipeline status, station log with per-station fire percentages and the
// order-level fire summary.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// StationRecordReadModel is one station pass in the order detail view. The
// fire percentage is computed at read time from the recorded meterage.
type StationRecordReadModel struct {
	Station        string
	StationName    string
	Operator       string
	StartedAt      time.Time
	EndedAt        time.Time
	InputMeterage  string
	OutputMeterage string
	OutputQuantity *int
	FirePercent    float64
	Notes          string
}

// GetOrderQueryResponse is the order detail read model.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Customer      string
	Product       string
	Category      string
	QuantityUnits int
	Status        string
	RevisionAlert string
	ShipmentSent  bool
	CreatedAt     time.Time
	StationLog    []StationRecordReadModel
	FireSummary   services.FireSummary
}
