package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/guard"
)

var ErrReleaseRollReservationCommandIsNotConstructed = errors.New(
	"ReleaseRollReservationCommand must be created via NewReleaseRollReservationCommand constructor",
)

// ReleaseRollReservationCommand represents cancelling a roll's reservation
// and crediting the full reserved length back to stock. Issued by the
// warehouse when an order's material choice changes, and by reconciliation
// when a reservation's order no longer exists.
type ReleaseRollReservationCommand struct { //nolint:recvcheck //using for validation
	rollID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseRollReservationCommand creates a command to release a reservation.
func NewReleaseRollReservationCommand(rollID kernel.UUID) (ReleaseRollReservationCommand, error) {
	if err := rollID.Validate(); err != nil {
		return ReleaseRollReservationCommand{}, err
	}

	return ReleaseRollReservationCommand{
		rollID: rollID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseRollReservationCommand) Validate() error {
	return c.guard.Validate(ErrReleaseRollReservationCommandIsNotConstructed)
}

// RollID returns the target roll's identifier.
func (c ReleaseRollReservationCommand) RollID() kernel.UUID { return c.rollID }
