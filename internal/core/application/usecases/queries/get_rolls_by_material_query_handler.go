package queries

import (
	"context"
	"database/sql"

	"pressflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRollsByMaterialQueryHandler retrieves one material's stock from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetRollsByMaterialQueryHandler struct {
	db *gorm.DB
}

// NewGetRollsByMaterialQueryHandler creates a handler for material stock queries.
// Requires a GORM database connection for query execution.
func NewGetRollsByMaterialQueryHandler(db *gorm.DB) GetRollsByMaterialQueryHandler {
	return GetRollsByMaterialQueryHandler{db: db}
}

// Handle executes the query to retrieve the material's rolls, longest
// remaining length first.
func (h GetRollsByMaterialQueryHandler) Handle(
	ctx context.Context,
	query GetRollsByMaterialQuery,
) ([]GetRollsByMaterialQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			barcode,
			material_name,
			supplier_name,
			width_cm,
			original_length,
			current_length,
			is_jumbo,
			is_sliced,
			parent_barcode,
			reserved_order_number,
			reserved_length,
			created_at
		FROM rolls
		WHERE material_name = ?
	`
	if query.AvailableOnly() {
		sqlQuery += ` AND is_sliced = false AND current_length > 0 AND reserved_order_id IS NULL`
	}
	sqlQuery += ` ORDER BY current_length DESC`

	rolls := make([]GetRollsByMaterialQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, query.MaterialName()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRollsByMaterialQueryResponse
		var id uuid.UUID
		var originalLength, currentLength float64
		var reservedOrderNumber sql.NullString
		var reservedLength sql.NullFloat64

		err = rows.Scan(
			&id,
			&resp.Barcode,
			&resp.MaterialName,
			&resp.SupplierName,
			&resp.WidthCm,
			&originalLength,
			&currentLength,
			&resp.IsJumbo,
			&resp.IsSliced,
			&resp.ParentBarcode,
			&reservedOrderNumber,
			&reservedLength,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		rollID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = rollID

		original, lenErr := kernel.NewMeterage(originalLength)
		if lenErr != nil {
			return nil, lenErr
		}
		current, lenErr := kernel.NewMeterage(currentLength)
		if lenErr != nil {
			return nil, lenErr
		}
		resp.OriginalLength = original.String()
		resp.CurrentLength = current.String()

		if reservedOrderNumber.Valid {
			resp.ReservedOrderNumber = reservedOrderNumber.String
		}
		if reservedLength.Valid {
			reserved, resErr := kernel.NewMeterage(reservedLength.Float64)
			if resErr != nil {
				return nil, resErr
			}
			resp.ReservedLength = reserved.String()
		}

		rolls = append(rolls, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rolls, nil
}
