package commands

import (
	"context"
)

// SetShipmentStatusCommandHandler flips an order between ShippingReady and
// Completed as the shipment is sent or flagged as awaiting again.
type SetShipmentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetShipmentStatusCommandHandler creates a handler for the shipment flip.
func NewSetShipmentStatusCommandHandler(uowFactory OrderUoWFactory) SetShipmentStatusCommandHandler {
	return SetShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment status change.
func (h *SetShipmentStatusCommandHandler) Handle(ctx context.Context, cmd SetShipmentStatusCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetShipment(cmd.Sent()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
