package commands

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/pkg/guard"
)

var ErrSubmitStationRecordCommandIsNotConstructed = errors.New(
	"SubmitStationRecordCommand must be created via NewSubmitStationRecordCommand constructor",
)

// SubmitStationRecordCommand represents a production operator reporting a
// completed station pass for an order.
type SubmitStationRecordCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	station        order.Station
	operator       string
	startedAt      time.Time
	endedAt        time.Time
	inputMeterage  kernel.Meterage
	outputMeterage kernel.Meterage
	outputQuantity *int
	notes          string

	guard guard.ConstructorGuard
}

// NewSubmitStationRecordCommand creates a command carrying a station record.
// Completeness validation is left to the StationRecord value object.
func NewSubmitStationRecordCommand(
	orderID kernel.UUID,
	station order.Station,
	operator string,
	startedAt time.Time,
	endedAt time.Time,
	inputMeterage kernel.Meterage,
	outputMeterage kernel.Meterage,
	outputQuantity *int,
	notes string,
) (SubmitStationRecordCommand, error) {
	if err := errors.Join(orderID.Validate(), station.Validate()); err != nil {
		return SubmitStationRecordCommand{}, err
	}

	return SubmitStationRecordCommand{
		orderID:        orderID,
		station:        station,
		operator:       operator,
		startedAt:      startedAt,
		endedAt:        endedAt,
		inputMeterage:  inputMeterage,
		outputMeterage: outputMeterage,
		outputQuantity: outputQuantity,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitStationRecordCommand) Validate() error {
	return c.guard.Validate(ErrSubmitStationRecordCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c SubmitStationRecordCommand) OrderID() kernel.UUID { return c.orderID }

// Station returns the completed station.
func (c SubmitStationRecordCommand) Station() order.Station { return c.station }

// InputMeterage returns the meterage fed into the station.
func (c SubmitStationRecordCommand) InputMeterage() kernel.Meterage { return c.inputMeterage }

// Record builds the StationRecord value object from the command fields.
func (c SubmitStationRecordCommand) Record() (order.StationRecord, error) {
	return order.NewStationRecord(
		c.station, c.operator, c.startedAt, c.endedAt,
		c.inputMeterage, c.outputMeterage, c.outputQuantity, c.notes)
}
