package commands

import (
	"context"

	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/services"
)

// SetMaterialStatusCommandHandler records a warehouse material assessment.
// When the assessed status opens the planning gate the order moves on to
// planning, otherwise it stays parked in warehouse processing. The gross
// meterage to issue is computed from the graphics spec's net requirement and
// the assessed waste rate.
type SetMaterialStatusCommandHandler struct {
	uowFactory      OrderUoWFactory
	wasteCalculator services.WasteCalculator
}

// NewSetMaterialStatusCommandHandler creates a handler for material assessments.
func NewSetMaterialStatusCommandHandler(uowFactory OrderUoWFactory) SetMaterialStatusCommandHandler {
	return SetMaterialStatusCommandHandler{
		uowFactory:      uowFactory,
		wasteCalculator: services.NewWasteCalculator(),
	}
}

// Handle processes the material assessment.
func (h *SetMaterialStatusCommandHandler) Handle(ctx context.Context, cmd SetMaterialStatusCommand) error {
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

	spec := aggregate.GraphicsSpec()
	if spec == nil {
		return order.ErrNoGraphicsSpec
	}

	issued := h.wasteCalculator.IssuedLength(spec.NetMeterage(), cmd.WasteRatePercent())
	plan, err := order.NewMaterialPlan(
		cmd.RawMaterialName(), cmd.MaterialStatus(), cmd.WasteRatePercent(), issued, cmd.SlicingDate())
	if err != nil {
		return err
	}

	if err = aggregate.AssessMaterial(plan); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
