package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
	"pressflow/internal/pkg/guard"
)

var ErrReserveRollCommandIsNotConstructed = errors.New(
	"ReserveRollCommand must be created via NewReserveRollCommand constructor",
)

// ReserveRollCommand represents the warehouse setting a length of a roll
// aside for an order.
type ReserveRollCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rollID  kernel.UUID
	length  kernel.Meterage

	guard guard.ConstructorGuard
}

// NewReserveRollCommand creates a command to reserve roll meterage for an order.
func NewReserveRollCommand(
	orderID kernel.UUID,
	rollID kernel.UUID,
	length kernel.Meterage,
) (ReserveRollCommand, error) {
	if err := errors.Join(orderID.Validate(), rollID.Validate()); err != nil {
		return ReserveRollCommand{}, err
	}
	if !length.IsPositive() {
		return ReserveRollCommand{}, errs.NewValueIsInvalidError("length is invalid")
	}

	return ReserveRollCommand{
		orderID: orderID,
		rollID:  rollID,
		length:  length,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveRollCommand) Validate() error {
	return c.guard.Validate(ErrReserveRollCommandIsNotConstructed)
}

// OrderID returns the reserving order's identifier.
func (c ReserveRollCommand) OrderID() kernel.UUID { return c.orderID }

// RollID returns the target roll's identifier.
func (c ReserveRollCommand) RollID() kernel.UUID { return c.rollID }

// Length returns the meterage to reserve.
func (c ReserveRollCommand) Length() kernel.Meterage { return c.length }
