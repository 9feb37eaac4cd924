package order

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

var (
	// ErrScheduledPlanIsNotConstructed is returned when a ScheduledPlan was not
	// created through the NewScheduledPlan factory method.
	ErrScheduledPlanIsNotConstructed = errors.New("ScheduledPlan must be created via NewScheduledPlan constructor")

	// ErrEmptyStationSequence is returned when planning is attempted without
	// selecting at least one production station.
	ErrEmptyStationSequence = errors.New("must select at least one station")
)

// ScheduledPlan is the production schedule assigned by the planning
// department: when production starts, how long it is expected to take and the
// explicit station sequence the order will follow.
//
// A non-empty station sequence overrides the category's default path in the
// station router.
type ScheduledPlan struct {
	date            time.Time
	startHour       string
	durationHours   int
	stationSequence []Station

	guard kernel.ConstructorGuard
}

// NewScheduledPlan creates a validated production schedule.
//
// The date must be set, the duration positive and the station sequence
// non-empty with every station belonging to the station table.
func NewScheduledPlan(
	date time.Time,
	startHour string,
	durationHours int,
	stationSequence []Station,
) (ScheduledPlan, error) {
	if date.IsZero() {
		return ScheduledPlan{}, errs.NewValueIsRequiredError("date is required")
	}
	if startHour == "" {
		return ScheduledPlan{}, errs.NewValueIsRequiredError("startHour is required")
	}
	if durationHours <= 0 {
		return ScheduledPlan{}, errs.NewValueIsInvalidErrorWithCause(
			"durationHours is invalid",
			fmt.Errorf("%d is not greater than 0", durationHours),
		)
	}
	if len(stationSequence) == 0 {
		return ScheduledPlan{}, ErrEmptyStationSequence
	}
	for _, s := range stationSequence {
		if err := s.Validate(); err != nil {
			return ScheduledPlan{}, err
		}
	}

	sequence := make([]Station, len(stationSequence))
	copy(sequence, stationSequence)

	return ScheduledPlan{
		date:            date,
		startHour:       startHour,
		durationHours:   durationHours,
		stationSequence: sequence,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the plan was created through NewScheduledPlan.
func (p ScheduledPlan) Validate() error {
	return p.guard.Validate(ErrScheduledPlanIsNotConstructed)
}

// Date returns the scheduled production date.
func (p ScheduledPlan) Date() time.Time { return p.date }

// StartHour returns the scheduled start hour, e.g. "08:00".
func (p ScheduledPlan) StartHour() string { return p.startHour }

// DurationHours returns the expected duration in hours.
func (p ScheduledPlan) DurationHours() int { return p.durationHours }

// StationSequence returns a copy of the planned station sequence.
func (p ScheduledPlan) StationSequence() []Station {
	sequence := make([]Station, len(p.stationSequence))
	copy(sequence, p.stationSequence)
	return sequence
}
