package order

import (
	"fmt"

	"pressflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine with defined transitions so orders always
// follow the department hand-off sequence:
//
//	GraphicsPending ──> WarehouseMaterialPending ──┬──> PlanningPending ──> Planned
//	                                               │          ▲
//	                                               └──> WarehouseProcessing
//	                                                          (re-enterable)
//	Planned ──> ProductionStarted ──> ShippingReady <──> Completed
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// GraphicsPending is the initial status: the order waits for the graphics
	// department to submit the technical print specification.
	GraphicsPending

	// WarehouseMaterialPending means the graphics spec exists and the warehouse
	// must assess raw-material availability.
	WarehouseMaterialPending

	// WarehouseProcessing means the warehouse is still sourcing material.
	// The order can re-enter this status any number of times.
	WarehouseProcessing

	// PlanningPending means material is ready (or awaiting slicing) and the
	// order waits for a production schedule.
	PlanningPending

	// Planned means the order carries a schedule and a station sequence.
	Planned

	// ProductionStarted means at least one station record has been submitted.
	ProductionStarted

	// ShippingReady means every mandatory station for the order's category has
	// completed. Immutable except for the shipment flip.
	ShippingReady

	// Completed means the shipment was marked sent. Reversible back to
	// ShippingReady when the shipment is flagged as awaiting again.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                  "Unknown",
		GraphicsPending:          "GraphicsPending",
		WarehouseMaterialPending: "WarehouseMaterialPending",
		WarehouseProcessing:      "WarehouseProcessing",
		PlanningPending:          "PlanningPending",
		Planned:                  "Planned",
		ProductionStarted:        "ProductionStarted",
		ShippingReady:            "ShippingReady",
		Completed:                "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		GraphicsPending:          "GraphicsPending",
		WarehouseMaterialPending: "WarehouseMaterialPending",
		WarehouseProcessing:      "WarehouseProcessing",
		PlanningPending:          "PlanningPending",
		Planned:                  "Planned",
		ProductionStarted:        "ProductionStarted",
		ShippingReady:            "ShippingReady",
		Completed:                "Completed",
	}
}

// StatusFromString parses a status from its string representation.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", str),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is one of the terminal states in which
// the order is immutable except for the shipment flip.
func (s Status) IsTerminal() bool {
	return s == ShippingReady || s == Completed
}

// SubmitGraphics transitions the status after the graphics spec is submitted.
//
// Valid transition: GraphicsPending -> WarehouseMaterialPending.
func (s Status) SubmitGraphics() (Status, error) {
	if s != GraphicsPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit graphics from", s),
		)
	}
	return WarehouseMaterialPending, nil
}

// AssessMaterial transitions the status after a warehouse material assessment.
// materialGateOpen reports whether the material status allows planning
// (Ready or AwaitingSlicing).
//
// Valid transitions:
//   - WarehouseMaterialPending | WarehouseProcessing | PlanningPending -> PlanningPending (gate open)
//   - WarehouseMaterialPending | WarehouseProcessing | PlanningPending -> WarehouseProcessing (gate closed)
func (s Status) AssessMaterial(materialGateOpen bool) (Status, error) {
	if s != WarehouseMaterialPending && s != WarehouseProcessing && s != PlanningPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a material assessment", s),
		)
	}
	if materialGateOpen {
		return PlanningPending, nil
	}
	return WarehouseProcessing, nil
}

// Plan transitions the status after a production schedule is assigned.
//
// Valid transitions: PlanningPending -> Planned, Planned -> Planned (replan).
func (s Status) Plan() (Status, error) {
	if s != PlanningPending && s != Planned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan from", s),
		)
	}
	return Planned, nil
}

// RecordStation transitions the status after a station record is accepted.
// pathComplete reports whether the station router found no further mandatory
// station for the order.
//
// Valid transitions:
//   - Planned | ProductionStarted -> ProductionStarted (stations remain)
//   - Planned | ProductionStarted -> ShippingReady (path complete)
func (s Status) RecordStation(pathComplete bool) (Status, error) {
	if s != Planned && s != ProductionStarted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to record a station from", s),
		)
	}
	if pathComplete {
		return ShippingReady, nil
	}
	return ProductionStarted, nil
}

// SetShipment flips the status between ShippingReady and Completed.
//
// Valid transitions:
//   - ShippingReady -> Completed (sent)
//   - Completed -> ShippingReady (awaiting again)
//   - ShippingReady -> ShippingReady, Completed -> Completed (idempotent flips)
func (s Status) SetShipment(sent bool) (Status, error) {
	if s != ShippingReady && s != Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to set shipment from", s),
		)
	}
	if sent {
		return Completed, nil
	}
	return ShippingReady, nil
}
