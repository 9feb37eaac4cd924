package commands

import (
	"context"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
)

// IntakeRollCommandHandler takes a delivered roll into stock: generates the
// next sequential barcode for the supplier and material, persists the roll
// and journals an Intake movement, all in one transaction.
type IntakeRollCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewIntakeRollCommandHandler creates a handler for roll intake operations.
func NewIntakeRollCommandHandler(uowFactory StockUoWFactory) IntakeRollCommandHandler {
	return IntakeRollCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the roll intake.
func (h *IntakeRollCommandHandler) Handle(ctx context.Context, cmd IntakeRollCommand) error {
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

	prefix := roll.BarcodePrefix(cmd.SupplierPrefix(), cmd.MaterialName())
	existing, err := rollRepo.GetBarcodesByPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	barcode := roll.NextBarcode(cmd.SupplierPrefix(), cmd.MaterialName(), existing)

	aggregate, err := roll.NewRoll(
		cmd.RollID(), barcode, cmd.MaterialName(),
		cmd.SupplierName(), cmd.SupplierPrefix(),
		cmd.WidthCm(), cmd.Length(), cmd.IsJumbo())
	if err != nil {
		return err
	}

	if err = rollRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	movement, err := stock.NewMovement(
		kernel.NewUUID(), stock.Intake, barcode, cmd.MaterialName(),
		cmd.Length(), kernel.ZeroMeterage(), nil, "",
		fmt.Sprintf("supplier delivery from %s - %v cm x %s m", cmd.SupplierName(), cmd.WidthCm(), cmd.Length()),
		time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.StockMovementRepository().Append(ctx, movement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
