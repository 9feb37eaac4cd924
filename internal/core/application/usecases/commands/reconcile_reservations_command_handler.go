package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/pkg/errs"
)

// ReconcileReservationsCommandHandler releases roll reservations held by
// orders that no longer exist. Reservations whose order is still present are
// left untouched; each released reservation leaves a journal entry crediting
// the full reserved length back.
type ReconcileReservationsCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileReservationsCommandHandler creates a handler for the
// reservation sweep.
func NewReconcileReservationsCommandHandler(uowFactory UoWFactory) ReconcileReservationsCommandHandler {
	return ReconcileReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many reservations were released.
func (h *ReconcileReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileReservationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rollRepo := uow.RollRepository()
	orderRepo := uow.OrderRepository()

	reservedRolls, err := rollRepo.GetAllReserved(ctx)
	if err != nil {
		return 0, err
	}

	releasedCount := 0
	for _, reservedRoll := range reservedRolls {
		reservation := reservedRoll.Reservation()
		if reservation == nil {
			continue
		}

		_, err = orderRepo.Get(ctx, reservation.OrderID())
		switch {
		case err == nil:
			continue
		case errors.Is(err, errs.ErrObjectNotFound):
			// Orphan: the reserving order is gone.
		default:
			return 0, err
		}

		released, releaseErr := reservedRoll.ReleaseReservation()
		if releaseErr != nil {
			return 0, releaseErr
		}
		if err = rollRepo.Update(ctx, reservedRoll); err != nil {
			// A manual release can settle the same hold between the sweep's
			// read and its write; the journal line belongs to that release.
			if errors.Is(err, roll.ErrNoActiveReservation) {
				continue
			}
			return 0, err
		}

		orderID := released.OrderID()
		movement, movementErr := stock.NewMovement(
			kernel.NewUUID(), stock.Consumption, reservedRoll.Barcode(), reservedRoll.MaterialName(),
			kernel.ZeroMeterage(), released.Length(), &orderID, released.OrderNumber(),
			fmt.Sprintf("orphaned reservation reconciled, %s m returned to stock", released.Length()),
			time.Now().UTC())
		if movementErr != nil {
			return 0, movementErr
		}
		if err = uow.StockMovementRepository().Append(ctx, movement); err != nil {
			return 0, err
		}

		releasedCount++
	}

	return releasedCount, uow.Commit(ctx)
}
