package commands

import (
	"context"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/stock"
)

// ReserveRollCommandHandler pulls stock aside for an order: the roll takes
// the reservation, the order records the reference and a Reservation
// movement lands in the journal, all in one transaction.
//
// The roll repository executes the reservation as a conditional write keyed
// on the roll being unreserved, so of two racing requests on the same roll
// exactly one commits; the loser receives ErrRollAlreadyReserved.
type ReserveRollCommandHandler struct {
	uowFactory UoWFactory
}

// NewReserveRollCommandHandler creates a handler for roll reservations.
func NewReserveRollCommandHandler(uowFactory UoWFactory) ReserveRollCommandHandler {
	return ReserveRollCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation.
func (h *ReserveRollCommandHandler) Handle(ctx context.Context, cmd ReserveRollCommand) error {
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

	orderRepo := uow.OrderRepository()
	rollRepo := uow.RollRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	targetRoll, err := rollRepo.Get(ctx, cmd.RollID())
	if err != nil {
		return err
	}

	if err = targetRoll.Reserve(aggregate.ID(), aggregate.OrderNumber(), cmd.Length()); err != nil {
		return err
	}

	reservation := targetRoll.Reservation()
	if err = aggregate.AddReservation(order.ReservationRef{
		RollID:      targetRoll.ID(),
		RollBarcode: targetRoll.Barcode(),
		Length:      reservation.Length(),
		ReservedAt:  reservation.ReservedAt(),
	}); err != nil {
		return err
	}

	if err = rollRepo.Update(ctx, targetRoll); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	orderID := aggregate.ID()
	movement, err := stock.NewMovement(
		kernel.NewUUID(), stock.Reservation, targetRoll.Barcode(), targetRoll.MaterialName(),
		cmd.Length(), kernel.ZeroMeterage(), &orderID, aggregate.OrderNumber(),
		fmt.Sprintf("reserved %s m for order %s", cmd.Length(), aggregate.OrderNumber()),
		time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.StockMovementRepository().Append(ctx, movement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
