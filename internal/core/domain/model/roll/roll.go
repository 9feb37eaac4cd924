package roll

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

var (
	// ErrRollIsNotConstructed is returned when a Roll instance was not created
	// through the NewRoll factory method.
	ErrRollIsNotConstructed = errors.New("Roll must be created via NewRoll constructor")

	// ErrRollAlreadyReserved is returned when a reservation is attempted on a
	// roll that already holds one. A roll carries at most one reservation.
	ErrRollAlreadyReserved = errors.New("roll is already reserved for another order")

	// ErrInsufficientLength is returned when a reservation asks for more
	// meterage than the roll has left.
	ErrInsufficientLength = errors.New("roll does not have enough length left")

	// ErrNoActiveReservation is returned when consumption or release is
	// attempted on a roll without a reservation.
	ErrNoActiveReservation = errors.New("roll has no active reservation")

	// ErrRollIsSliced is returned when an operation targets a roll that was
	// already sliced into child rolls. Sliced rolls are retired.
	ErrRollIsSliced = errors.New("roll was sliced and is retired")

	// ErrRollIsNotJumbo is returned when slicing is attempted on a regular
	// roll. Only wide jumbo rolls can be cut into child rolls.
	ErrRollIsNotJumbo = errors.New("roll is not a jumbo and cannot be sliced")

	// ErrWidthExceeded is returned when the combined width of the requested
	// slices exceeds the parent roll's width.
	ErrWidthExceeded = errors.New("total slice width exceeds the roll width")
)

// Reservation is the single hold an order places on a roll. The reserved
// length is already deducted from the roll's remaining length; settling the
// reservation decides how much of it comes back.
type Reservation struct {
	orderID     kernel.UUID
	orderNumber string
	length      kernel.Meterage
	reservedAt  time.Time
}

// RestoreReservation reconstructs a reservation from persistence.
func RestoreReservation(orderID kernel.UUID, orderNumber string, length kernel.Meterage, reservedAt time.Time) Reservation {
	return Reservation{
		orderID:     orderID,
		orderNumber: orderNumber,
		length:      length,
		reservedAt:  reservedAt,
	}
}

// OrderID returns the id of the order holding the reservation.
func (r Reservation) OrderID() kernel.UUID { return r.orderID }

// OrderNumber returns the human-facing number of the reserving order.
func (r Reservation) OrderNumber() string { return r.orderNumber }

// Length returns the reserved meterage.
func (r Reservation) Length() kernel.Meterage { return r.length }

// ReservedAt returns when the reservation was placed.
func (r Reservation) ReservedAt() time.Time { return r.reservedAt }

// Consumption is the settlement of a reservation by production. Consumed is
// capped at the reserved length; Returned is the unused part credited back to
// the roll.
type Consumption struct {
	OrderID     kernel.UUID
	OrderNumber string
	Consumed    kernel.Meterage
	Returned    kernel.Meterage
}

// Cut describes one child roll requested from a slicing operation. A zero
// Length means the child inherits the parent's remaining length.
type Cut struct {
	WidthCm float64
	Length  kernel.Meterage
}

// Roll is the aggregate root for a material roll in stock.
//
// Roll follows these invariants:
//   - Remaining length never goes negative
//   - At most one reservation is active at a time
//   - A sliced roll is retired: zero length, no reservations, no further slicing
//   - Can only be created through NewRoll or RestoreRoll
type Roll struct {
	id             kernel.UUID
	barcode        string
	materialName   string
	supplierName   string
	supplierPrefix string
	widthCm        float64
	originalLength kernel.Meterage
	currentLength  kernel.Meterage
	isJumbo        bool
	isSliced       bool
	parentBarcode  string
	reservation    *Reservation
	createdAt      time.Time

	// clearedReservation remembers the reservation removed by Consume or
	// ReleaseReservation so the persistence layer can make the clearing
	// write conditional on the stored hold still being the same one.
	clearedReservation *Reservation

	guard kernel.ConstructorGuard
}

// NewRoll creates a new available roll entering stock.
func NewRoll(
	id kernel.UUID,
	barcode string,
	materialName string,
	supplierName string,
	supplierPrefix string,
	widthCm float64,
	length kernel.Meterage,
	isJumbo bool,
) (*Roll, error) {
	r := &Roll{
		isJumbo:   isJumbo,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setBarcode(barcode),
		r.setMaterialName(materialName),
		r.setWidthCm(widthCm),
		r.setLength(length),
	); err != nil {
		return nil, err
	}

	r.supplierName = supplierName
	r.supplierPrefix = supplierPrefix
	return r, nil
}

// RestoreRoll reconstructs a Roll from persistence.
func RestoreRoll(
	id kernel.UUID,
	barcode string,
	materialName string,
	supplierName string,
	supplierPrefix string,
	widthCm float64,
	originalLength kernel.Meterage,
	currentLength kernel.Meterage,
	isJumbo bool,
	isSliced bool,
	parentBarcode string,
	reservation *Reservation,
	createdAt time.Time,
) (*Roll, error) {
	r := &Roll{
		isJumbo:   isJumbo,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setBarcode(barcode),
		r.setMaterialName(materialName),
		r.setWidthCm(widthCm),
		r.setLength(originalLength),
	); err != nil {
		return nil, err
	}
	if currentLength.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"currentLength is invalid",
			fmt.Errorf("%s is negative", currentLength),
		)
	}
	if currentLength.GreaterThan(originalLength) {
		return nil, errs.NewValueIsOutOfRangeError(
			"currentLength", currentLength, kernel.ZeroMeterage(), originalLength)
	}
	if isSliced && !currentLength.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"currentLength is invalid",
			fmt.Errorf("sliced roll holds %s instead of 0", currentLength),
		)
	}
	if isSliced && reservation != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"reservation is invalid",
			errors.New("sliced roll cannot hold a reservation"),
		)
	}

	r.supplierName = supplierName
	r.supplierPrefix = supplierPrefix
	r.currentLength = currentLength
	r.isSliced = isSliced
	r.parentBarcode = parentBarcode
	r.reservation = reservation
	return r, nil
}

// Validate ensures the Roll instance was properly constructed.
func (r *Roll) Validate() error {
	if r == nil {
		return ErrRollIsNotConstructed
	}
	return r.guard.Validate(ErrRollIsNotConstructed)
}

// IsEqual compares two rolls by their unique identifiers.
func (r *Roll) IsEqual(other *Roll) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the roll's unique identifier.
func (r *Roll) ID() kernel.UUID { return r.id }

// Barcode returns the generated roll barcode.
func (r *Roll) Barcode() string { return r.barcode }

// MaterialName returns the raw material on the roll.
func (r *Roll) MaterialName() string { return r.materialName }

// SupplierName returns the supplier's display name.
func (r *Roll) SupplierName() string { return r.supplierName }

// SupplierPrefix returns the supplier's barcode prefix.
func (r *Roll) SupplierPrefix() string { return r.supplierPrefix }

// WidthCm returns the roll width in centimeters.
func (r *Roll) WidthCm() float64 { return r.widthCm }

// OriginalLength returns the length the roll entered stock with.
func (r *Roll) OriginalLength() kernel.Meterage { return r.originalLength }

// CurrentLength returns the remaining length, net of any active reservation.
func (r *Roll) CurrentLength() kernel.Meterage { return r.currentLength }

// IsJumbo reports whether this is a wide jumbo roll meant for slicing.
func (r *Roll) IsJumbo() bool { return r.isJumbo }

// IsSliced reports whether the roll was sliced into child rolls and retired.
func (r *Roll) IsSliced() bool { return r.isSliced }

// ParentBarcode returns the barcode of the roll this one was sliced from,
// empty for rolls that entered stock directly.
func (r *Roll) ParentBarcode() string { return r.parentBarcode }

// Reservation returns the active reservation, nil when the roll is free.
func (r *Roll) Reservation() *Reservation {
	if r.reservation == nil {
		return nil
	}
	res := *r.reservation
	return &res
}

// ClearedReservation returns the reservation this instance removed via
// Consume or ReleaseReservation, nil when no hold was cleared. Persistence
// keys the clearing write on it so two racing releases settle the same hold
// at most once.
func (r *Roll) ClearedReservation() *Reservation {
	if r.clearedReservation == nil {
		return nil
	}
	res := *r.clearedReservation
	return &res
}

// CreatedAt returns when the roll entered stock.
func (r *Roll) CreatedAt() time.Time { return r.createdAt }

// IsAvailable reports whether the roll can take a reservation.
func (r *Roll) IsAvailable() bool {
	return !r.isSliced && r.reservation == nil && r.currentLength.IsPositive()
}

// Reserve places a hold for an order and deducts the reserved length from the
// remaining length. A roll holds at most one reservation.
func (r *Roll) Reserve(orderID kernel.UUID, orderNumber string, length kernel.Meterage) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if r.isSliced {
		return ErrRollIsSliced
	}
	if r.reservation != nil {
		return ErrRollAlreadyReserved
	}
	if !length.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"length is invalid",
			fmt.Errorf("%s is not greater than 0", length),
		)
	}
	if length.GreaterThan(r.currentLength) {
		return fmt.Errorf("%w: requested %s, available %s", ErrInsufficientLength, length, r.currentLength)
	}

	r.currentLength = r.currentLength.Sub(length)
	r.reservation = &Reservation{
		orderID:     orderID,
		orderNumber: orderNumber,
		length:      length,
		reservedAt:  time.Now().UTC(),
	}
	return nil
}

// Consume settles the active reservation against the meterage production
// actually fed into the first station. Consumption is capped at the reserved
// length; the unused remainder is credited back to the roll. The reservation
// is cleared either way.
func (r *Roll) Consume(usedLength kernel.Meterage) (Consumption, error) {
	if r.reservation == nil {
		return Consumption{}, ErrNoActiveReservation
	}
	if usedLength.IsNegative() {
		return Consumption{}, errs.NewValueIsInvalidErrorWithCause(
			"usedLength is invalid",
			fmt.Errorf("%s is negative", usedLength),
		)
	}

	reserved := r.reservation.length
	consumed := usedLength.Min(reserved)
	returned := reserved.Sub(consumed)

	r.currentLength = r.currentLength.Add(returned)
	settled := Consumption{
		OrderID:     r.reservation.orderID,
		OrderNumber: r.reservation.orderNumber,
		Consumed:    consumed,
		Returned:    returned,
	}
	r.clearedReservation = r.reservation
	r.reservation = nil
	return settled, nil
}

// ReleaseReservation cancels the active reservation and credits the full
// reserved length back to the roll. It returns the released reservation so
// callers can update the order's side of the hold.
func (r *Roll) ReleaseReservation() (Reservation, error) {
	if r.reservation == nil {
		return Reservation{}, ErrNoActiveReservation
	}

	released := *r.reservation
	r.currentLength = r.currentLength.Add(released.length)
	r.clearedReservation = r.reservation
	r.reservation = nil
	return released, nil
}

// Slice cuts a jumbo roll into child rolls and retires it. Each cut needs a
// pre-generated barcode; a cut with zero length inherits the parent's
// remaining length. The combined cut width must fit within the roll width.
// Regular rolls cannot be sliced.
func (r *Roll) Slice(cuts []Cut, barcodes []string) ([]*Roll, error) {
	if r.isSliced {
		return nil, ErrRollIsSliced
	}
	if !r.isJumbo {
		return nil, ErrRollIsNotJumbo
	}
	if r.reservation != nil {
		return nil, ErrRollAlreadyReserved
	}
	if len(cuts) == 0 {
		return nil, errs.NewValueIsRequiredError("cuts are required")
	}
	if len(barcodes) != len(cuts) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"barcodes are invalid",
			fmt.Errorf("%d barcodes for %d cuts", len(barcodes), len(cuts)),
		)
	}

	totalWidth := 0.0
	for _, cut := range cuts {
		if cut.WidthCm <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"cut width is invalid",
				fmt.Errorf("%v is not greater than 0", cut.WidthCm),
			)
		}
		totalWidth += cut.WidthCm
	}
	if totalWidth > r.widthCm {
		return nil, fmt.Errorf("%w: %v cm requested from a %v cm roll", ErrWidthExceeded, totalWidth, r.widthCm)
	}

	children := make([]*Roll, 0, len(cuts))
	for i, cut := range cuts {
		length := cut.Length
		if length.IsZero() {
			length = r.currentLength
		}
		child, err := NewRoll(
			kernel.NewUUID(), barcodes[i], r.materialName,
			r.supplierName, r.supplierPrefix, cut.WidthCm, length, false)
		if err != nil {
			return nil, err
		}
		child.parentBarcode = r.barcode
		children = append(children, child)
	}

	r.currentLength = kernel.ZeroMeterage()
	r.isSliced = true
	return children, nil
}

func (r *Roll) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Roll) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode is required")
	}
	r.barcode = barcode
	return nil
}

func (r *Roll) setMaterialName(materialName string) error {
	if materialName == "" {
		return errs.NewValueIsRequiredError("materialName is required")
	}
	r.materialName = materialName
	return nil
}

func (r *Roll) setWidthCm(widthCm float64) error {
	if widthCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"widthCm is invalid",
			fmt.Errorf("%v is not greater than 0", widthCm),
		)
	}
	r.widthCm = widthCm
	return nil
}

func (r *Roll) setLength(length kernel.Meterage) error {
	if !length.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"length is invalid",
			fmt.Errorf("%s is not greater than 0", length),
		)
	}
	r.originalLength = length
	r.currentLength = length
	return nil
}
