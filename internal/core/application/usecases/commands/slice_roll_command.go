package commands

import (
	"errors"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/pkg/errs"
	"pressflow/internal/pkg/guard"
)

var (
	ErrSliceRollCommandIsNotConstructed = errors.New(
		"SliceRollCommand must be created via NewSliceRollCommand constructor",
	)
	ErrCutsAreRequired = errors.New("at least one cut is required")
)

// SliceRollCommand represents the warehouse cutting a roll into narrower
// child rolls. A cut with a zero length inherits the parent's remaining
// length.
type SliceRollCommand struct { //nolint:recvcheck //using for validation
	rollID kernel.UUID
	cuts   []roll.Cut

	guard guard.ConstructorGuard
}

// NewSliceRollCommand creates a command to slice a roll.
func NewSliceRollCommand(rollID kernel.UUID, cuts []roll.Cut) (SliceRollCommand, error) {
	if err := rollID.Validate(); err != nil {
		return SliceRollCommand{}, err
	}
	if len(cuts) == 0 {
		return SliceRollCommand{}, ErrCutsAreRequired
	}
	for _, cut := range cuts {
		if cut.WidthCm <= 0 {
			return SliceRollCommand{}, errs.NewValueIsInvalidError("cut width is invalid")
		}
	}

	copied := make([]roll.Cut, len(cuts))
	copy(copied, cuts)

	return SliceRollCommand{
		rollID: rollID,
		cuts:   copied,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SliceRollCommand) Validate() error {
	return c.guard.Validate(ErrSliceRollCommandIsNotConstructed)
}

// RollID returns the parent roll's identifier.
func (c SliceRollCommand) RollID() kernel.UUID { return c.rollID }

// Cuts returns the requested child cuts.
func (c SliceRollCommand) Cuts() []roll.Cut {
	copied := make([]roll.Cut, len(c.cuts))
	copy(copied, c.cuts)
	return copied
}
