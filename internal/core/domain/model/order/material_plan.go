package order

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

// ErrMaterialPlanIsNotConstructed is returned when a MaterialPlan instance was
// not created through the NewMaterialPlan factory method.
var ErrMaterialPlanIsNotConstructed = errors.New("MaterialPlan must be created via NewMaterialPlan constructor")

// MaterialStatus is the warehouse's assessment of raw-material availability.
type MaterialStatus int

const (
	// MaterialStatusUnknown represents an invalid or undefined material status.
	MaterialStatusUnknown MaterialStatus = iota

	// MaterialSourcing means the material is still being sourced; the order
	// stays in (or returns to) warehouse processing.
	MaterialSourcing

	// MaterialAwaitingSlicing means a jumbo roll must be sliced first, but the
	// order may already be scheduled.
	MaterialAwaitingSlicing

	// MaterialReady means the material is staged and the order may be scheduled.
	MaterialReady
)

func getMaterialStatusStrings() map[MaterialStatus]string {
	return map[MaterialStatus]string{
		MaterialStatusUnknown:   "Unknown",
		MaterialSourcing:        "Sourcing",
		MaterialAwaitingSlicing: "AwaitingSlicing",
		MaterialReady:           "Ready",
	}
}

// MaterialStatusFromString parses a material status from its string representation.
func MaterialStatusFromString(s string) (MaterialStatus, error) {
	for m, str := range getMaterialStatusStrings() {
		if m != MaterialStatusUnknown && str == s {
			return m, nil
		}
	}
	return MaterialStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"materialStatus is invalid",
		fmt.Errorf("%q is not a valid material status", s),
	)
}

// Validate checks if the MaterialStatus value is valid.
func (m MaterialStatus) Validate() error {
	if m != MaterialSourcing && m != MaterialAwaitingSlicing && m != MaterialReady {
		return errs.NewValueIsInvalidErrorWithCause(
			"materialStatus is invalid",
			fmt.Errorf("%d is not a valid material status", m),
		)
	}
	return nil
}

// String returns the human-readable name of the material status.
func (m MaterialStatus) String() string {
	if str, ok := getMaterialStatusStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// OpensPlanningGate reports whether this material status allows the order to
// move to planning. Material awaiting slicing may already be scheduled.
func (m MaterialStatus) OpensPlanningGate() bool {
	return m == MaterialReady || m == MaterialAwaitingSlicing
}

// ReservationRef records a roll reservation held by the order. The roll
// aggregate owns the reservation itself; the order keeps this reference so
// production can consume the first reserved roll.
type ReservationRef struct {
	RollID      kernel.UUID
	RollBarcode string
	Length      kernel.Meterage
	ReservedAt  time.Time
}

// MaterialPlan is the warehouse's material preparation for an order: which raw
// material, the waste rate applied, the gross issued meterage and the rolls
// reserved against the order.
type MaterialPlan struct {
	rawMaterialName  string
	materialStatus   MaterialStatus
	wasteRatePercent float64
	issuedMeterage   kernel.Meterage
	reservedRolls    []ReservationRef
	slicingDate      *time.Time

	guard kernel.ConstructorGuard
}

// NewMaterialPlan creates a validated material plan.
//
// The waste rate must not be negative. A slicing date is only meaningful while
// the material status is AwaitingSlicing and is dropped otherwise.
func NewMaterialPlan(
	rawMaterialName string,
	materialStatus MaterialStatus,
	wasteRatePercent float64,
	issuedMeterage kernel.Meterage,
	slicingDate *time.Time,
) (MaterialPlan, error) {
	if err := materialStatus.Validate(); err != nil {
		return MaterialPlan{}, err
	}
	if wasteRatePercent < 0 {
		return MaterialPlan{}, errs.NewValueIsInvalidErrorWithCause(
			"wasteRatePercent is invalid",
			fmt.Errorf("%v is negative", wasteRatePercent),
		)
	}
	if materialStatus != MaterialAwaitingSlicing {
		slicingDate = nil
	}

	return MaterialPlan{
		rawMaterialName:  rawMaterialName,
		materialStatus:   materialStatus,
		wasteRatePercent: wasteRatePercent,
		issuedMeterage:   issuedMeterage,
		slicingDate:      slicingDate,
		guard:            kernel.NewConstructorGuard(),
	}, nil
}

// RestoreMaterialPlan reconstructs a material plan from persistence including
// the roll reservations held at save time.
func RestoreMaterialPlan(
	rawMaterialName string,
	materialStatus MaterialStatus,
	wasteRatePercent float64,
	issuedMeterage kernel.Meterage,
	slicingDate *time.Time,
	reservedRolls []ReservationRef,
) (MaterialPlan, error) {
	plan, err := NewMaterialPlan(rawMaterialName, materialStatus, wasteRatePercent, issuedMeterage, slicingDate)
	if err != nil {
		return MaterialPlan{}, err
	}
	return plan.restoreReservations(reservedRolls), nil
}

// Validate ensures the plan was created through NewMaterialPlan.
func (p MaterialPlan) Validate() error {
	return p.guard.Validate(ErrMaterialPlanIsNotConstructed)
}

// RawMaterialName returns the name of the raw material to issue.
func (p MaterialPlan) RawMaterialName() string { return p.rawMaterialName }

// MaterialStatus returns the warehouse assessment.
func (p MaterialPlan) MaterialStatus() MaterialStatus { return p.materialStatus }

// WasteRatePercent returns the waste rate applied on top of the net meterage.
func (p MaterialPlan) WasteRatePercent() float64 { return p.wasteRatePercent }

// IssuedMeterage returns the gross meterage released to production.
func (p MaterialPlan) IssuedMeterage() kernel.Meterage { return p.issuedMeterage }

// SlicingDate returns the planned slicing date, nil unless awaiting slicing.
func (p MaterialPlan) SlicingDate() *time.Time { return p.slicingDate }

// ReservedRolls returns a copy of the reservation references, in the order
// they were reserved.
func (p MaterialPlan) ReservedRolls() []ReservationRef {
	copied := make([]ReservationRef, len(p.reservedRolls))
	copy(copied, p.reservedRolls)
	return copied
}

// withReservation returns a copy of the plan with the reference appended.
func (p MaterialPlan) withReservation(ref ReservationRef) MaterialPlan {
	next := p
	next.reservedRolls = append(p.ReservedRolls(), ref)
	return next
}

// withoutReservation returns a copy of the plan with the roll's reference removed.
func (p MaterialPlan) withoutReservation(rollID kernel.UUID) MaterialPlan {
	next := p
	next.reservedRolls = make([]ReservationRef, 0, len(p.reservedRolls))
	for _, ref := range p.reservedRolls {
		if !ref.RollID.IsEqual(rollID) {
			next.reservedRolls = append(next.reservedRolls, ref)
		}
	}
	return next
}

// restoreReservations is used by persistence to rebuild the reservation list.
func (p MaterialPlan) restoreReservations(refs []ReservationRef) MaterialPlan {
	next := p
	next.reservedRolls = make([]ReservationRef, len(refs))
	copy(next.reservedRolls, refs)
	return next
}
