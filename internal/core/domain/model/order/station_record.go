package order

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

var (
	// ErrStationRecordIsNotConstructed is returned when a StationRecord was not
	// created through the NewStationRecord factory method.
	ErrStationRecordIsNotConstructed = errors.New("StationRecord must be created via NewStationRecord constructor")

	// ErrIncompleteStationRecord is returned when a station record misses a
	// required field. The caller must fix the input and resubmit; nothing is
	// coerced silently.
	ErrIncompleteStationRecord = errors.New("station record is missing required fields")
)

// StationRecord is one completed production step in an order's station log.
// Records are append-only: once accepted into the log they are never edited.
//
// Input and output meterage feed the per-station fire percentage; the output
// quantity is only present on the category's terminal station and feeds the
// order-level fire summary.
type StationRecord struct {
	station        Station
	operator       string
	startedAt      time.Time
	endedAt        time.Time
	inputMeterage  kernel.Meterage
	outputMeterage kernel.Meterage
	outputQuantity *int
	notes          string

	guard kernel.ConstructorGuard
}

// NewStationRecord creates a validated station record.
//
// A record is complete when it names a known station and an operator and
// carries an end time no earlier than the start time. Input and output
// meterage are value types and may legitimately be zero (a station can
// destroy its whole input). The output quantity is required on terminal
// stations only; the aggregate enforces that rule because it depends on the
// order's category.
func NewStationRecord(
	station Station,
	operator string,
	startedAt time.Time,
	endedAt time.Time,
	inputMeterage kernel.Meterage,
	outputMeterage kernel.Meterage,
	outputQuantity *int,
	notes string,
) (StationRecord, error) {
	if err := station.Validate(); err != nil {
		return StationRecord{}, err
	}
	if operator == "" {
		return StationRecord{}, fmt.Errorf("%w: operator is required", ErrIncompleteStationRecord)
	}
	if startedAt.IsZero() {
		return StationRecord{}, fmt.Errorf("%w: start time is required", ErrIncompleteStationRecord)
	}
	if endedAt.IsZero() {
		return StationRecord{}, fmt.Errorf("%w: end time is required", ErrIncompleteStationRecord)
	}
	if endedAt.Before(startedAt) {
		return StationRecord{}, errs.NewValueIsInvalidErrorWithCause(
			"endedAt is invalid",
			fmt.Errorf("end time %s is before start time %s", endedAt, startedAt),
		)
	}
	if outputQuantity != nil && *outputQuantity < 0 {
		return StationRecord{}, errs.NewValueIsInvalidErrorWithCause(
			"outputQuantity is invalid",
			fmt.Errorf("%d is negative", *outputQuantity),
		)
	}

	return StationRecord{
		station:        station,
		operator:       operator,
		startedAt:      startedAt,
		endedAt:        endedAt,
		inputMeterage:  inputMeterage,
		outputMeterage: outputMeterage,
		outputQuantity: outputQuantity,
		notes:          notes,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through NewStationRecord.
func (r StationRecord) Validate() error {
	return r.guard.Validate(ErrStationRecordIsNotConstructed)
}

// Station returns the station this record completes.
func (r StationRecord) Station() Station { return r.station }

// StationName returns the display name of the record's station.
func (r StationRecord) StationName() string {
	if info, ok := r.station.Info(); ok {
		return info.Name
	}
	return string(r.station)
}

// Operator returns the name of the operator who ran the station.
func (r StationRecord) Operator() string { return r.operator }

// StartedAt returns when the station started work on the order.
func (r StationRecord) StartedAt() time.Time { return r.startedAt }

// EndedAt returns when the station finished work on the order.
func (r StationRecord) EndedAt() time.Time { return r.endedAt }

// InputMeterage returns the meterage that entered the station.
func (r StationRecord) InputMeterage() kernel.Meterage { return r.inputMeterage }

// OutputMeterage returns the meterage that left the station.
func (r StationRecord) OutputMeterage() kernel.Meterage { return r.outputMeterage }

// OutputQuantity returns the finished unit count, only set on the terminal station.
func (r StationRecord) OutputQuantity() *int { return r.outputQuantity }

// Notes returns the free-form operator notes.
func (r StationRecord) Notes() string { return r.notes }
