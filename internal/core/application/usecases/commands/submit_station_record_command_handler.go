package commands

import (
	"context"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/core/domain/services"
)

// SubmitStationRecordCommandHandler appends a completed-station record to an
// order's log. The station must be the next one the router requires; anything
// else is out of sequence.
//
// The first record of an order additionally settles the material side: the
// order's first reserved roll is consumed against the station's input
// meterage, the unused reservation remainder returns to stock and a
// Consumption movement lands in the journal.
//
// The order update is version-checked, so two submissions racing on the same
// order cannot interleave their log appends; the slower one fails and must
// resubmit against fresh state.
type SubmitStationRecordCommandHandler struct {
	uowFactory UoWFactory
	router     services.StationRouter
}

// NewSubmitStationRecordCommandHandler creates a handler for station record submission.
func NewSubmitStationRecordCommandHandler(uowFactory UoWFactory) SubmitStationRecordCommandHandler {
	return SubmitStationRecordCommandHandler{
		uowFactory: uowFactory,
		router:     services.NewStationRouter(),
	}
}

// Handle processes the station record submission.
func (h *SubmitStationRecordCommandHandler) Handle(ctx context.Context, cmd SubmitStationRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := cmd.Record()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	next, pathComplete, err := h.router.Next(aggregate)
	if err != nil {
		return err
	}
	if next != cmd.Station() {
		return fmt.Errorf("%w: expected %s, got %s", order.ErrStationOutOfSequence, next, cmd.Station())
	}

	firstRecord := len(aggregate.StationLog()) == 0

	if err = aggregate.AppendStationRecord(record, pathComplete); err != nil {
		return err
	}

	if firstRecord {
		if err = h.consumeFirstReservedRoll(ctx, uow, aggregate, cmd.InputMeterage()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// consumeFirstReservedRoll settles the oldest reservation held by the order
// against the meterage fed into the first station. Orders without a
// reservation pass through untouched; production may run on hand-issued
// material.
func (h *SubmitStationRecordCommandHandler) consumeFirstReservedRoll(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	usedLength kernel.Meterage,
) error {
	ref, ok := aggregate.FirstReservedRoll()
	if !ok {
		return nil
	}

	rollRepo := uow.RollRepository()
	reservedRoll, err := rollRepo.Get(ctx, ref.RollID)
	if err != nil {
		return err
	}

	settled, err := reservedRoll.Consume(usedLength)
	if err != nil {
		return err
	}

	if err = aggregate.RemoveReservation(reservedRoll.ID()); err != nil {
		return err
	}
	if err = rollRepo.Update(ctx, reservedRoll); err != nil {
		return err
	}

	orderID := aggregate.ID()
	movement, err := stock.NewMovement(
		kernel.NewUUID(), stock.Consumption, reservedRoll.Barcode(), reservedRoll.MaterialName(),
		settled.Consumed, settled.Returned, &orderID, aggregate.OrderNumber(),
		fmt.Sprintf("consumed %s m for order %s, returned %s m", settled.Consumed, aggregate.OrderNumber(), settled.Returned),
		time.Now().UTC())
	if err != nil {
		return err
	}
	return uow.StockMovementRepository().Append(ctx, movement)
}
