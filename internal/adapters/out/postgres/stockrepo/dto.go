// Package stockrepo provides data transfer objects and mapping functions for
// the stock journal. The journal is append-only, so mapping only ever runs
// one way per operation: fromDomain on Append, toDomain on List.
package stockrepo

import (
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// MovementDTO represents the database structure for persisting stock movements.
type MovementDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	MovementType     int
	RollBarcode      string `gorm:"index"`
	MaterialName     string `gorm:"index"`
	Quantity         float64
	ReturnedQuantity float64
	OrderID          *uuid.UUID `gorm:"type:uuid"`
	OrderNumber      string     `gorm:"index"`
	Description      string
	OccurredAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for movement entities.
// Overrides GORM's default naming convention to use "stock_movements".
func (MovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts a stock movement to its database representation.
func fromDomain(movement stock.Movement) MovementDTO {
	dto := MovementDTO{
		ID:               movement.ID().Bytes(),
		MovementType:     int(movement.Type()),
		RollBarcode:      movement.RollBarcode(),
		MaterialName:     movement.MaterialName(),
		Quantity:         movement.Quantity().Float64(),
		ReturnedQuantity: movement.ReturnedQuantity().Float64(),
		OrderNumber:      movement.OrderNumber(),
		Description:      movement.Description(),
		OccurredAt:       movement.OccurredAt(),
	}

	if orderID := movement.OrderID(); orderID != nil {
		id := orderID.Bytes()
		dto.OrderID = &id
	}

	return dto
}

// toDomain converts a database DTO to a stock movement.
func toDomain(dto MovementDTO) (stock.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return stock.Movement{}, err
	}
	quantity, err := kernel.NewMeterage(dto.Quantity)
	if err != nil {
		return stock.Movement{}, err
	}
	returnedQuantity, err := kernel.NewMeterage(dto.ReturnedQuantity)
	if err != nil {
		return stock.Movement{}, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		restored, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return stock.Movement{}, idErr
		}
		orderID = &restored
	}

	return stock.NewMovement(
		id,
		stock.MovementType(dto.MovementType),
		dto.RollBarcode,
		dto.MaterialName,
		quantity,
		returnedQuantity,
		orderID,
		dto.OrderNumber,
		dto.Description,
		dto.OccurredAt,
	)
}
