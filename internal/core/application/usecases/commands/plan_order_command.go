package commands

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/guard"
)

var ErrPlanOrderCommandIsNotConstructed = errors.New(
	"PlanOrderCommand must be created via NewPlanOrderCommand constructor",
)

// PlanOrderCommand represents the planning department scheduling production
// for an order: date, start hour, expected duration and the explicit station
// sequence the order will follow.
type PlanOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	date            time.Time
	startHour       string
	durationHours   int
	stationSequence []order.Station

	guard guard.ConstructorGuard
}

// NewPlanOrderCommand creates a command carrying a production schedule.
// Validation of the schedule fields is left to the ScheduledPlan value object.
func NewPlanOrderCommand(
	orderID kernel.UUID,
	date time.Time,
	startHour string,
	durationHours int,
	stationSequence []order.Station,
) (PlanOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PlanOrderCommand{}, err
	}

	sequence := make([]order.Station, len(stationSequence))
	copy(sequence, stationSequence)

	return PlanOrderCommand{
		orderID:         orderID,
		date:            date,
		startHour:       startHour,
		durationHours:   durationHours,
		stationSequence: sequence,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlanOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c PlanOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Schedule builds the ScheduledPlan value object from the command fields.
func (c PlanOrderCommand) Schedule() (order.ScheduledPlan, error) {
	return order.NewScheduledPlan(c.date, c.startHour, c.durationHours, c.stationSequence)
}
