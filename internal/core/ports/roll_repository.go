// Package ports defines repository interfaces for the production pipeline.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
)

// RollRepository defines the persistence contract for material roll aggregates.
type RollRepository interface {
	// Add persists a new roll aggregate to storage.
	// The roll must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *roll.Roll) error

	// Update persists changes to an existing roll aggregate.
	//
	// When the update sets a reservation where storage currently has none it
	// must execute as a single conditional write keyed on the absence of a
	// reservation. Of two racing reservation attempts exactly one wins; the
	// loser receives ErrRollAlreadyReserved and must pick different stock.
	Update(ctx context.Context, aggregate *roll.Roll) error

	// Get retrieves a roll aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*roll.Roll, error)

	// GetByBarcode retrieves a roll by its barcode.
	GetByBarcode(ctx context.Context, barcode string) (*roll.Roll, error)

	// GetAllByMaterial retrieves all rolls of the given raw material,
	// longest remaining length first.
	GetAllByMaterial(ctx context.Context, materialName string) ([]*roll.Roll, error)

	// GetAllByParentBarcode retrieves the child rolls sliced from a parent.
	// Slicing is not retry-safe, so callers check for existing children
	// before repeating a slice.
	GetAllByParentBarcode(ctx context.Context, parentBarcode string) ([]*roll.Roll, error)

	// GetAllReserved retrieves all rolls that currently hold a reservation.
	// Used by reservation reconciliation.
	GetAllReserved(ctx context.Context) ([]*roll.Roll, error)

	// GetBarcodesByPrefix retrieves the barcodes starting with the given
	// supplier-material prefix, for sequential barcode generation.
	GetBarcodesByPrefix(ctx context.Context, prefix string) ([]string, error)
}
