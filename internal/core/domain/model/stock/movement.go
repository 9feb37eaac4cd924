// Package stock contains the append-only stock movement journal. Every change
// to roll inventory leaves a movement record; records are never edited or
// deleted, so the journal replays the full history of a roll.
package stock

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

// ErrMovementIsNotConstructed is returned when a Movement instance was not
// created through the NewMovement factory method.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement constructor")

// MovementType classifies a stock movement.
type MovementType int

const (
	// MovementTypeUnknown represents an invalid or undefined movement type.
	MovementTypeUnknown MovementType = iota

	// Intake records material entering stock, either from a supplier delivery
	// or as a child roll produced by slicing.
	Intake

	// Reservation records meterage being set aside for an order.
	Reservation

	// Consumption records the settlement of a reservation by production.
	Consumption
)

func getMovementTypeStrings() map[MovementType]string {
	return map[MovementType]string{
		MovementTypeUnknown: "Unknown",
		Intake:              "Intake",
		Reservation:         "Reservation",
		Consumption:         "Consumption",
	}
}

// MovementTypeFromString parses a movement type from its string representation.
func MovementTypeFromString(s string) (MovementType, error) {
	for m, str := range getMovementTypeStrings() {
		if m != MovementTypeUnknown && str == s {
			return m, nil
		}
	}
	return MovementTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"movementType is invalid",
		fmt.Errorf("%q is not a valid movement type", s),
	)
}

// Validate checks if the MovementType value is valid.
func (m MovementType) Validate() error {
	if m != Intake && m != Reservation && m != Consumption {
		return errs.NewValueIsInvalidErrorWithCause(
			"movementType is invalid",
			fmt.Errorf("%d is not a valid movement type", m),
		)
	}
	return nil
}

// String returns the human-readable name of the movement type.
func (m MovementType) String() string {
	if str, ok := getMovementTypeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Movement is one immutable entry in the stock journal.
type Movement struct {
	id               kernel.UUID
	movementType     MovementType
	rollBarcode      string
	materialName     string
	quantity         kernel.Meterage
	returnedQuantity kernel.Meterage
	orderID          *kernel.UUID
	orderNumber      string
	description      string
	occurredAt       time.Time

	guard kernel.ConstructorGuard
}

// NewMovement creates a validated stock movement.
//
// Quantity is the meterage moved; for a consumption the returned quantity
// additionally records the unused reservation remainder credited back. The
// order reference is only present on reservation and consumption movements.
func NewMovement(
	id kernel.UUID,
	movementType MovementType,
	rollBarcode string,
	materialName string,
	quantity kernel.Meterage,
	returnedQuantity kernel.Meterage,
	orderID *kernel.UUID,
	orderNumber string,
	description string,
	occurredAt time.Time,
) (Movement, error) {
	if err := errors.Join(
		id.Validate(),
		movementType.Validate(),
	); err != nil {
		return Movement{}, err
	}
	if rollBarcode == "" {
		return Movement{}, errs.NewValueIsRequiredError("rollBarcode is required")
	}
	if quantity.IsNegative() {
		return Movement{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%s is negative", quantity),
		)
	}
	if returnedQuantity.IsNegative() {
		return Movement{}, errs.NewValueIsInvalidErrorWithCause(
			"returnedQuantity is invalid",
			fmt.Errorf("%s is negative", returnedQuantity),
		)
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return Movement{
		id:               id,
		movementType:     movementType,
		rollBarcode:      rollBarcode,
		materialName:     materialName,
		quantity:         quantity,
		returnedQuantity: returnedQuantity,
		orderID:          orderID,
		orderNumber:      orderNumber,
		description:      description,
		occurredAt:       occurredAt,
		guard:            kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the movement was created through NewMovement.
func (m Movement) Validate() error {
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

// ID returns the movement's unique identifier.
func (m Movement) ID() kernel.UUID { return m.id }

// Type returns the movement classification.
func (m Movement) Type() MovementType { return m.movementType }

// RollBarcode returns the barcode of the roll the movement touched.
func (m Movement) RollBarcode() string { return m.rollBarcode }

// MaterialName returns the raw material involved.
func (m Movement) MaterialName() string { return m.materialName }

// Quantity returns the meterage moved.
func (m Movement) Quantity() kernel.Meterage { return m.quantity }

// ReturnedQuantity returns the reservation remainder credited back on a
// consumption, zero otherwise.
func (m Movement) ReturnedQuantity() kernel.Meterage { return m.returnedQuantity }

// OrderID returns the referenced order, nil for plain intake movements.
func (m Movement) OrderID() *kernel.UUID { return m.orderID }

// OrderNumber returns the referenced order's human-facing number.
func (m Movement) OrderNumber() string { return m.orderNumber }

// Description returns the free-form journal line.
func (m Movement) Description() string { return m.description }

// OccurredAt returns when the movement happened.
func (m Movement) OccurredAt() time.Time { return m.occurredAt }

// Filter narrows a stock journal listing. Zero-valued fields match everything.
type Filter struct {
	Type         MovementType
	RollBarcode  string
	MaterialName string
	OrderNumber  string
}

// Matches reports whether the movement satisfies every set filter field.
func (f Filter) Matches(m Movement) bool {
	if f.Type != MovementTypeUnknown && m.movementType != f.Type {
		return false
	}
	if f.RollBarcode != "" && m.rollBarcode != f.RollBarcode {
		return false
	}
	if f.MaterialName != "" && m.materialName != f.MaterialName {
		return false
	}
	if f.OrderNumber != "" && m.orderNumber != f.OrderNumber {
		return false
	}
	return true
}
