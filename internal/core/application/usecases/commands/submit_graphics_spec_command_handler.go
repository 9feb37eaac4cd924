package commands

import (
	"context"
)

// SubmitGraphicsSpecCommandHandler stores the graphics spec on an order and
// advances it to the warehouse stage. A resubmission after the order moved
// downstream replaces the spec and raises a revision alert instead.
type SubmitGraphicsSpecCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitGraphicsSpecCommandHandler creates a handler for graphics spec submission.
func NewSubmitGraphicsSpecCommandHandler(uowFactory OrderUoWFactory) SubmitGraphicsSpecCommandHandler {
	return SubmitGraphicsSpecCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the graphics spec submission.
func (h *SubmitGraphicsSpecCommandHandler) Handle(ctx context.Context, cmd SubmitGraphicsSpecCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	spec, err := cmd.Spec()
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

	if err = aggregate.SubmitGraphicsSpec(spec); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
