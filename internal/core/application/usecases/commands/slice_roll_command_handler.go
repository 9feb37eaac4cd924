package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
)

// ErrRollHasChildren is returned when slicing is attempted on a roll that
// already has child rolls in stock. Slicing is not retry-safe: a blind retry
// after a timeout would duplicate the children, so the handler refuses and
// the caller must inspect the existing children instead.
var ErrRollHasChildren = errors.New("roll already has sliced children")

// SliceRollCommandHandler cuts a roll into child rolls: the parent is retired,
// each child gets the next sequential barcode and an Intake movement, all in
// one transaction.
type SliceRollCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewSliceRollCommandHandler creates a handler for roll slicing operations.
func NewSliceRollCommandHandler(uowFactory StockUoWFactory) SliceRollCommandHandler {
	return SliceRollCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the slicing operation.
func (h *SliceRollCommandHandler) Handle(ctx context.Context, cmd SliceRollCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rollRepo := uow.RollRepository()
	parent, err := rollRepo.Get(ctx, cmd.RollID())
	if err != nil {
		return err
	}

	existingChildren, err := rollRepo.GetAllByParentBarcode(ctx, parent.Barcode())
	if err != nil {
		return err
	}
	if len(existingChildren) > 0 {
		return fmt.Errorf("%w: %s has %d children", ErrRollHasChildren, parent.Barcode(), len(existingChildren))
	}

	cuts := cmd.Cuts()
	prefix := roll.BarcodePrefix(parent.SupplierPrefix(), parent.MaterialName())
	existingBarcodes, err := rollRepo.GetBarcodesByPrefix(ctx, prefix)
	if err != nil {
		return err
	}

	barcodes := make([]string, 0, len(cuts))
	for range cuts {
		next := roll.NextBarcode(parent.SupplierPrefix(), parent.MaterialName(), existingBarcodes)
		barcodes = append(barcodes, next)
		existingBarcodes = append(existingBarcodes, next)
	}

	children, err := parent.Slice(cuts, barcodes)
	if err != nil {
		return err
	}

	if err = rollRepo.Update(ctx, parent); err != nil {
		return err
	}

	stockRepo := uow.StockMovementRepository()
	for _, child := range children {
		if err = rollRepo.Add(ctx, child); err != nil {
			return err
		}

		movement, movementErr := stock.NewMovement(
			kernel.NewUUID(), stock.Intake, child.Barcode(), child.MaterialName(),
			child.CurrentLength(), kernel.ZeroMeterage(), nil, "",
			fmt.Sprintf("sliced from %s - %v cm x %s m", parent.Barcode(), child.WidthCm(), child.CurrentLength()),
			time.Now().UTC())
		if movementErr != nil {
			return movementErr
		}
		if err = stockRepo.Append(ctx, movement); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
