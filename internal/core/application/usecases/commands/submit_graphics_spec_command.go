package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/guard"
)

var ErrSubmitGraphicsSpecCommandIsNotConstructed = errors.New(
	"SubmitGraphicsSpecCommand must be created via NewSubmitGraphicsSpecCommand constructor",
)

// SubmitGraphicsSpecCommand represents the graphics department submitting the
// technical print specification for an order.
type SubmitGraphicsSpecCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	machine          order.Machine
	colorPlan        string
	printType        string
	stepMm           float64
	netMeterage      kernel.Meterage
	paperWidthCm     float64
	lamination       string
	layeringRequired bool
	wrapDirection    string
	notes            string

	guard guard.ConstructorGuard
}

// NewSubmitGraphicsSpecCommand creates a command carrying the graphics spec.
// Field validation beyond identity is left to the GraphicsSpec value object.
func NewSubmitGraphicsSpecCommand(
	orderID kernel.UUID,
	machine order.Machine,
	colorPlan string,
	printType string,
	stepMm float64,
	netMeterage kernel.Meterage,
	paperWidthCm float64,
	lamination string,
	layeringRequired bool,
	wrapDirection string,
	notes string,
) (SubmitGraphicsSpecCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitGraphicsSpecCommand{}, err
	}

	return SubmitGraphicsSpecCommand{
		orderID:          orderID,
		machine:          machine,
		colorPlan:        colorPlan,
		printType:        printType,
		stepMm:           stepMm,
		netMeterage:      netMeterage,
		paperWidthCm:     paperWidthCm,
		lamination:       lamination,
		layeringRequired: layeringRequired,
		wrapDirection:    wrapDirection,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitGraphicsSpecCommand) Validate() error {
	return c.guard.Validate(ErrSubmitGraphicsSpecCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SubmitGraphicsSpecCommand) OrderID() kernel.UUID { return c.orderID }

// Spec builds the GraphicsSpec value object from the command fields.
func (c SubmitGraphicsSpecCommand) Spec() (order.GraphicsSpec, error) {
	return order.NewGraphicsSpec(
		c.machine, c.colorPlan, c.printType, c.stepMm, c.netMeterage,
		c.paperWidthCm, c.lamination, c.layeringRequired, c.wrapDirection, c.notes)
}
