package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
	"pressflow/internal/pkg/guard"
)

var (
	ErrIntakeRollCommandIsNotConstructed = errors.New(
		"IntakeRollCommand must be created via NewIntakeRollCommand constructor",
	)
	ErrMaterialNameIsRequired = errors.New("material name is required")
)

// IntakeRollCommand represents a supplier delivery entering stock as a new
// material roll. The barcode is generated, not supplied.
type IntakeRollCommand struct { //nolint:recvcheck //using for validation
	rollID         kernel.UUID
	materialName   string
	supplierName   string
	supplierPrefix string
	widthCm        float64
	length         kernel.Meterage
	isJumbo        bool

	guard guard.ConstructorGuard
}

// NewIntakeRollCommand creates a command to take a roll into stock.
// Width and length must both be positive.
func NewIntakeRollCommand(
	rollID kernel.UUID,
	materialName string,
	supplierName string,
	supplierPrefix string,
	widthCm float64,
	length kernel.Meterage,
	isJumbo bool,
) (IntakeRollCommand, error) {
	cmd := IntakeRollCommand{
		supplierName:   supplierName,
		supplierPrefix: supplierPrefix,
		isJumbo:        isJumbo,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRollID(rollID),
		cmd.setMaterialName(materialName),
		cmd.setWidthCm(widthCm),
		cmd.setLength(length),
	); err != nil {
		return IntakeRollCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IntakeRollCommand) Validate() error {
	return c.guard.Validate(ErrIntakeRollCommandIsNotConstructed)
}

// RollID returns the unique identifier for the new roll.
func (c IntakeRollCommand) RollID() kernel.UUID { return c.rollID }

// MaterialName returns the raw material on the roll.
func (c IntakeRollCommand) MaterialName() string { return c.materialName }

// SupplierName returns the supplier's display name.
func (c IntakeRollCommand) SupplierName() string { return c.supplierName }

// SupplierPrefix returns the supplier's barcode prefix.
func (c IntakeRollCommand) SupplierPrefix() string { return c.supplierPrefix }

// WidthCm returns the roll width in centimeters.
func (c IntakeRollCommand) WidthCm() float64 { return c.widthCm }

// Length returns the delivered length.
func (c IntakeRollCommand) Length() kernel.Meterage { return c.length }

// IsJumbo reports whether the roll is a wide jumbo meant for slicing.
func (c IntakeRollCommand) IsJumbo() bool { return c.isJumbo }

func (c *IntakeRollCommand) setRollID(rollID kernel.UUID) error {
	if err := rollID.Validate(); err != nil {
		return err
	}
	c.rollID = rollID
	return nil
}

func (c *IntakeRollCommand) setMaterialName(materialName string) error {
	if materialName == "" {
		return ErrMaterialNameIsRequired
	}
	c.materialName = materialName
	return nil
}

func (c *IntakeRollCommand) setWidthCm(widthCm float64) error {
	if widthCm <= 0 {
		return errs.NewValueIsInvalidError("widthCm is invalid")
	}
	c.widthCm = widthCm
	return nil
}

func (c *IntakeRollCommand) setLength(length kernel.Meterage) error {
	if !length.IsPositive() {
		return errs.NewValueIsInvalidError("length is invalid")
	}
	c.length = length
	return nil
}
