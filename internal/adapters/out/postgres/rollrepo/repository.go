package rollrepo

import (
	"context"
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRollRepository implements RollRepository using GORM.
type GormRollRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRollRepository creates a new GORM roll repository.
func NewGormRollRepository(db *gorm.DB, tracker aggregateTracker) *GormRollRepository {
	return &GormRollRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new roll to the database.
func (r *GormRollRepository) Add(ctx context.Context, aggregate *roll.Roll) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing roll to the database.
//
// A write that carries a reservation executes as a single conditional update
// keyed on the stored reservation being absent or already belonging to the
// same order. Of two racing reservation attempts exactly one matches a row;
// the loser gets ErrRollAlreadyReserved and nothing is written.
//
// A write that clears a reservation is conditional the same way, keyed on the
// stored hold still belonging to the order being released. Of two racing
// releases of the same hold only one writes and journals; the loser gets
// ErrNoActiveReservation.
func (r *GormRollRepository) Update(ctx context.Context, aggregate *roll.Roll) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	cleared := aggregate.ClearedReservation()

	// Select("*") forces zero values (released reservations, spent lengths)
	// to be written.
	tx := r.db.WithContext(ctx).Model(&RollDTO{}).Select("*")
	switch {
	case dto.ReservedOrderID != nil:
		tx = tx.Where(
			"id = ? AND (reserved_order_id IS NULL OR reserved_order_id = ?)",
			dto.ID, *dto.ReservedOrderID,
		)
	case cleared != nil:
		tx = tx.Where(
			"id = ? AND reserved_order_id = ?",
			dto.ID, cleared.OrderID().Bytes(),
		)
	default:
		tx = tx.Where("id = ?", dto.ID)
	}

	result := tx.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		switch {
		case dto.ReservedOrderID != nil:
			return roll.ErrRollAlreadyReserved
		case cleared != nil:
			return roll.ErrNoActiveReservation
		default:
			return errs.NewObjectNotFoundError("roll", aggregate.ID().String())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a roll by ID.
func (r *GormRollRepository) Get(ctx context.Context, id kernel.UUID) (*roll.Roll, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RollDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("roll", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBarcode retrieves a roll by its barcode.
func (r *GormRollRepository) GetByBarcode(ctx context.Context, barcode string) (*roll.Roll, error) {
	if barcode == "" {
		return nil, errs.NewValueIsRequiredError("barcode")
	}

	var dto RollDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("roll", barcode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByMaterial retrieves all rolls of the given raw material, longest
// remaining length first.
func (r *GormRollRepository) GetAllByMaterial(ctx context.Context, materialName string) ([]*roll.Roll, error) {
	if materialName == "" {
		return nil, errs.NewValueIsRequiredError("materialName")
	}

	var dtos []RollDTO
	if err := r.db.WithContext(ctx).
		Where("material_name = ?", materialName).
		Order("current_length DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByParentBarcode retrieves the child rolls sliced from a parent.
func (r *GormRollRepository) GetAllByParentBarcode(ctx context.Context, parentBarcode string) ([]*roll.Roll, error) {
	if parentBarcode == "" {
		return nil, errs.NewValueIsRequiredError("parentBarcode")
	}

	var dtos []RollDTO
	if err := r.db.WithContext(ctx).
		Where("parent_barcode = ?", parentBarcode).
		Order("barcode").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllReserved retrieves all rolls that currently hold a reservation.
// Used by reservation reconciliation.
func (r *GormRollRepository) GetAllReserved(ctx context.Context) ([]*roll.Roll, error) {
	var dtos []RollDTO
	if err := r.db.WithContext(ctx).
		Where("reserved_order_id IS NOT NULL").
		Order("reserved_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetBarcodesByPrefix retrieves the barcodes starting with the given
// supplier-material prefix, for sequential barcode generation.
func (r *GormRollRepository) GetBarcodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, errs.NewValueIsRequiredError("prefix")
	}

	barcodes := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&RollDTO{}).
		Where("barcode LIKE ?", prefix+"%").
		Order("barcode").
		Pluck("barcode", &barcodes).Error; err != nil {
		return nil, err
	}

	return barcodes, nil
}

func toDomainSlice(dtos []RollDTO) ([]*roll.Roll, error) {
	rolls := make([]*roll.Roll, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, aggregate)
	}
	return rolls, nil
}
