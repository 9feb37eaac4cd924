package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/pkg/errs"
)

// ReleaseRollReservationCommandHandler cancels a roll's reservation and
// credits the reserved length back. When the reserving order still exists its
// reservation reference is removed too; a missing order is tolerated, that is
// the orphan case reconciliation exists for.
type ReleaseRollReservationCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseRollReservationCommandHandler creates a handler for reservation release.
func NewReleaseRollReservationCommandHandler(uowFactory UoWFactory) ReleaseRollReservationCommandHandler {
	return ReleaseRollReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release.
func (h *ReleaseRollReservationCommandHandler) Handle(ctx context.Context, cmd ReleaseRollReservationCommand) error {
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
	targetRoll, err := rollRepo.Get(ctx, cmd.RollID())
	if err != nil {
		return err
	}

	released, err := targetRoll.ReleaseReservation()
	if err != nil {
		return err
	}

	if err = rollRepo.Update(ctx, targetRoll); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, released.OrderID())
	switch {
	case err == nil:
		if err = aggregate.RemoveReservation(targetRoll.ID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// Orphaned reservation: the order is gone, only the roll side remains.
	default:
		return err
	}

	orderID := released.OrderID()
	movement, err := stock.NewMovement(
		kernel.NewUUID(), stock.Consumption, targetRoll.Barcode(), targetRoll.MaterialName(),
		kernel.ZeroMeterage(), released.Length(), &orderID, released.OrderNumber(),
		fmt.Sprintf("reservation released, %s m returned to stock", released.Length()),
		time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.StockMovementRepository().Append(ctx, movement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
