package queries

import (
	"context"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockMovementsQueryHandler retrieves stock journal entries from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockMovementsQueryHandler creates a handler for stock journal queries.
// Requires a GORM database connection for query execution.
func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle executes the query to retrieve journal entries matching the filter,
// newest first.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) ([]GetStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			movement_type,
			roll_barcode,
			material_name,
			quantity,
			returned_quantity,
			order_number,
			description,
			occurred_at
		FROM stock_movements
		WHERE 1 = 1
	`
	args := make([]any, 0, 5)
	if query.MovementType() != stock.MovementTypeUnknown {
		sqlQuery += ` AND movement_type = ?`
		args = append(args, int(query.MovementType()))
	}
	if query.RollBarcode() != "" {
		sqlQuery += ` AND roll_barcode = ?`
		args = append(args, query.RollBarcode())
	}
	if query.MaterialName() != "" {
		sqlQuery += ` AND material_name = ?`
		args = append(args, query.MaterialName())
	}
	if query.OrderNumber() != "" {
		sqlQuery += ` AND order_number = ?`
		args = append(args, query.OrderNumber())
	}
	sqlQuery += ` ORDER BY occurred_at DESC LIMIT ?`
	args = append(args, query.Limit())

	movements := make([]GetStockMovementsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStockMovementsQueryResponse
		var id uuid.UUID
		var movementType int
		var quantity, returnedQuantity float64

		err = rows.Scan(
			&id,
			&movementType,
			&resp.RollBarcode,
			&resp.MaterialName,
			&quantity,
			&returnedQuantity,
			&resp.OrderNumber,
			&resp.Description,
			&resp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		movementID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = movementID
		resp.MovementType = stock.MovementType(movementType).String()

		moved, qtyErr := kernel.NewMeterage(quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}
		returned, qtyErr := kernel.NewMeterage(returnedQuantity)
		if qtyErr != nil {
			return nil, qtyErr
		}
		resp.Quantity = moved.String()
		resp.ReturnedQuantity = returned.String()

		movements = append(movements, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
