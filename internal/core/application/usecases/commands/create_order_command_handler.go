package commands

import (
	"context"

	"pressflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders enter the pipeline in GraphicsPending status and wait for the
// graphics department.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quantity, err := buildQuantity(cmd.Units(), cmd.Variants())
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

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.OrderNumber(), cmd.Customer(), cmd.Product(), cmd.Category(), quantity)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildQuantity(units int, variants []OrderVariantInput) (order.Quantity, error) {
	if len(variants) == 0 {
		return order.NewQuantity(units)
	}

	converted := make([]order.Variant, 0, len(variants))
	for _, v := range variants {
		converted = append(converted, order.Variant{Name: v.Name, Units: v.Units})
	}
	return order.NewQuantityFromVariants(converted)
}
