package queries

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/pkg/guard"
)

var ErrGetStockMovementsQueryIsNotConstructed = errors.New(
	"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
)

// GetStockMovementsQuery retrieves entries of the stock journal, newest
// first. All filter fields are optional; a zero filter returns the whole
// journal page by page.
type GetStockMovementsQuery struct {
	movementType stock.MovementType
	rollBarcode  string
	materialName string
	orderNumber  string
	limit        int

	guard guard.ConstructorGuard
}

// NewGetStockMovementsQuery creates a query over the stock journal.
// A zero movement type means no type filter; a non-positive limit falls back
// to 100 entries.
func NewGetStockMovementsQuery(
	movementType stock.MovementType,
	rollBarcode string,
	materialName string,
	orderNumber string,
	limit int,
) (GetStockMovementsQuery, error) {
	if movementType != stock.MovementTypeUnknown {
		if err := movementType.Validate(); err != nil {
			return GetStockMovementsQuery{}, err
		}
	}
	if limit <= 0 {
		limit = 100
	}

	return GetStockMovementsQuery{
		movementType: movementType,
		rollBarcode:  rollBarcode,
		materialName: materialName,
		orderNumber:  orderNumber,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

// MovementType returns the type filter, MovementTypeUnknown when unfiltered.
func (q GetStockMovementsQuery) MovementType() stock.MovementType { return q.movementType }

// RollBarcode returns the barcode filter, empty when unfiltered.
func (q GetStockMovementsQuery) RollBarcode() string { return q.rollBarcode }

// MaterialName returns the material filter, empty when unfiltered.
func (q GetStockMovementsQuery) MaterialName() string { return q.materialName }

// OrderNumber returns the order number filter, empty when unfiltered.
func (q GetStockMovementsQuery) OrderNumber() string { return q.orderNumber }

// Limit returns the maximum number of entries to return.
func (q GetStockMovementsQuery) Limit() int { return q.limit }

// GetStockMovementsQueryResponse is one journal entry in the read model.
type GetStockMovementsQueryResponse struct {
	ID               kernel.UUID
	MovementType     string
	RollBarcode      string
	MaterialName     string
	Quantity         string
	ReturnedQuantity string
	OrderNumber      string
	Description      string
	OccurredAt       time.Time
}
