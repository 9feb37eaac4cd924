package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/guard"
)

var ErrSetShipmentStatusCommandIsNotConstructed = errors.New(
	"SetShipmentStatusCommand must be created via NewSetShipmentStatusCommand constructor",
)

// SetShipmentStatusCommand represents the archive desk flipping an order's
// shipment flag. This is the only edit allowed on a terminal order.
type SetShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	sent    bool

	guard guard.ConstructorGuard
}

// NewSetShipmentStatusCommand creates a command to flip the shipment flag.
func NewSetShipmentStatusCommand(orderID kernel.UUID, sent bool) (SetShipmentStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetShipmentStatusCommand{}, err
	}

	return SetShipmentStatusCommand{
		orderID: orderID,
		sent:    sent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetShipmentStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SetShipmentStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Sent reports whether the shipment is marked sent or awaiting again.
func (c SetShipmentStatusCommand) Sent() bool { return c.sent }
