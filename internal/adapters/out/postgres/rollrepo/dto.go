// Package rollrepo provides data transfer objects and mapping functions for
// material roll persistence. This package implements the repository pattern
// for the roll domain aggregate, handling the conversion between domain
// entities and database representations.
package rollrepo

import (
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"

	"github.com/google/uuid"
)

// RollDTO represents the database structure for persisting roll aggregates.
// The reservation is a nullable value object flattened into the row so the
// conditional reservation write can key on a single column.
type RollDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode             string    `gorm:"uniqueIndex"`
	MaterialName        string    `gorm:"index"`
	SupplierName        string
	SupplierPrefix      string
	WidthCm             float64
	OriginalLength      float64
	CurrentLength       float64
	IsJumbo             bool
	IsSliced            bool
	ParentBarcode       string     `gorm:"index"`
	ReservedOrderID     *uuid.UUID `gorm:"type:uuid"`
	ReservedOrderNumber *string
	ReservedLength      *float64
	ReservedAt          *time.Time
	CreatedAt           time.Time
}

// TableName specifies the database table name for roll entities.
// Overrides GORM's default naming convention to use "rolls".
func (RollDTO) TableName() string {
	return "rolls"
}

// fromDomain converts a roll domain aggregate to its database representation.
func fromDomain(aggregate *roll.Roll) RollDTO {
	dto := RollDTO{
		ID:             aggregate.ID().Bytes(),
		Barcode:        aggregate.Barcode(),
		MaterialName:   aggregate.MaterialName(),
		SupplierName:   aggregate.SupplierName(),
		SupplierPrefix: aggregate.SupplierPrefix(),
		WidthCm:        aggregate.WidthCm(),
		OriginalLength: aggregate.OriginalLength().Float64(),
		CurrentLength:  aggregate.CurrentLength().Float64(),
		IsJumbo:        aggregate.IsJumbo(),
		IsSliced:       aggregate.IsSliced(),
		ParentBarcode:  aggregate.ParentBarcode(),
		CreatedAt:      aggregate.CreatedAt(),
	}

	if reservation := aggregate.Reservation(); reservation != nil {
		orderID := reservation.OrderID().Bytes()
		orderNumber := reservation.OrderNumber()
		length := reservation.Length().Float64()
		reservedAt := reservation.ReservedAt()

		dto.ReservedOrderID = &orderID
		dto.ReservedOrderNumber = &orderNumber
		dto.ReservedLength = &length
		dto.ReservedAt = &reservedAt
	}

	return dto
}

// toDomain converts a database DTO to a roll domain aggregate.
func toDomain(dto RollDTO) (*roll.Roll, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originalLength, err := kernel.NewMeterage(dto.OriginalLength)
	if err != nil {
		return nil, err
	}
	currentLength, err := kernel.NewMeterage(dto.CurrentLength)
	if err != nil {
		return nil, err
	}

	var reservation *roll.Reservation
	if dto.ReservedOrderID != nil {
		orderID, resErr := kernel.UUIDFromBytes(dto.ReservedOrderID[:])
		if resErr != nil {
			return nil, resErr
		}
		length, resErr := kernel.NewMeterage(valueOrZero(dto.ReservedLength))
		if resErr != nil {
			return nil, resErr
		}
		var orderNumber string
		if dto.ReservedOrderNumber != nil {
			orderNumber = *dto.ReservedOrderNumber
		}
		var reservedAt time.Time
		if dto.ReservedAt != nil {
			reservedAt = *dto.ReservedAt
		}
		restored := roll.RestoreReservation(orderID, orderNumber, length, reservedAt)
		reservation = &restored
	}

	return roll.RestoreRoll(
		id,
		dto.Barcode,
		dto.MaterialName,
		dto.SupplierName,
		dto.SupplierPrefix,
		dto.WidthCm,
		originalLength,
		currentLength,
		dto.IsJumbo,
		dto.IsSliced,
		dto.ParentBarcode,
		reservation,
		dto.CreatedAt,
	)
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
