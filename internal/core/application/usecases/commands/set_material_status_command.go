package commands

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/errs"
	"pressflow/internal/pkg/guard"
)

var ErrSetMaterialStatusCommandIsNotConstructed = errors.New(
	"SetMaterialStatusCommand must be created via NewSetMaterialStatusCommand constructor",
)

// SetMaterialStatusCommand represents the warehouse assessing raw-material
// availability for an order. The issued meterage is derived from the order's
// net requirement and the waste rate, not supplied by the caller.
type SetMaterialStatusCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	rawMaterialName  string
	materialStatus   order.MaterialStatus
	wasteRatePercent float64
	slicingDate      *time.Time

	guard guard.ConstructorGuard
}

// NewSetMaterialStatusCommand creates a command carrying a material assessment.
func NewSetMaterialStatusCommand(
	orderID kernel.UUID,
	rawMaterialName string,
	materialStatus order.MaterialStatus,
	wasteRatePercent float64,
	slicingDate *time.Time,
) (SetMaterialStatusCommand, error) {
	cmd := SetMaterialStatusCommand{
		rawMaterialName: rawMaterialName,
		slicingDate:     slicingDate,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMaterialStatus(materialStatus),
		cmd.setWasteRatePercent(wasteRatePercent),
	); err != nil {
		return SetMaterialStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMaterialStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetMaterialStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SetMaterialStatusCommand) OrderID() kernel.UUID { return c.orderID }

// RawMaterialName returns the raw material chosen by the warehouse.
func (c SetMaterialStatusCommand) RawMaterialName() string { return c.rawMaterialName }

// MaterialStatus returns the warehouse's availability assessment.
func (c SetMaterialStatusCommand) MaterialStatus() order.MaterialStatus { return c.materialStatus }

// WasteRatePercent returns the waste rate to apply on the net meterage.
func (c SetMaterialStatusCommand) WasteRatePercent() float64 { return c.wasteRatePercent }

// SlicingDate returns the planned slicing date, only meaningful while the
// status is AwaitingSlicing.
func (c SetMaterialStatusCommand) SlicingDate() *time.Time { return c.slicingDate }

func (c *SetMaterialStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetMaterialStatusCommand) setMaterialStatus(status order.MaterialStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.materialStatus = status
	return nil
}

func (c *SetMaterialStatusCommand) setWasteRatePercent(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidError("wasteRatePercent is invalid")
	}
	c.wasteRatePercent = rate
	return nil
}
