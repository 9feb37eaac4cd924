package stockrepo

import (
	"context"

	"pressflow/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// Movements are journal lines, not aggregates, so there is no tracking and
// no update path.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GORM stock movement repository.
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Append persists a new movement record.
func (r *GormStockMovementRepository) Append(ctx context.Context, movement stock.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List retrieves movements matching the filter, newest first.
func (r *GormStockMovementRepository) List(ctx context.Context, filter stock.Filter) ([]stock.Movement, error) {
	tx := r.db.WithContext(ctx).Model(&MovementDTO{})
	if filter.Type != stock.MovementTypeUnknown {
		tx = tx.Where("movement_type = ?", int(filter.Type))
	}
	if filter.RollBarcode != "" {
		tx = tx.Where("roll_barcode = ?", filter.RollBarcode)
	}
	if filter.MaterialName != "" {
		tx = tx.Where("material_name = ?", filter.MaterialName)
	}
	if filter.OrderNumber != "" {
		tx = tx.Where("order_number = ?", filter.OrderNumber)
	}

	var dtos []MovementDTO
	if err := tx.Order("occurred_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	movements := make([]stock.Movement, 0, len(dtos))
	for _, dto := range dtos {
		movement, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, nil
}
