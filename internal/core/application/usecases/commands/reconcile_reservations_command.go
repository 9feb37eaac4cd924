package commands

import (
	"errors"

	"pressflow/internal/pkg/guard"
)

var ErrReconcileReservationsCommandIsNotConstructed = errors.New(
	"ReconcileReservationsCommand must be created via NewReconcileReservationsCommand constructor",
)

// ReconcileReservationsCommand sweeps the roll stock for reservations whose
// order no longer exists and releases them. Orders are deleted by an
// administrative action outside the pipeline, so their reservations are not
// cascaded inline; the periodic sweep credits the meterage back instead.
type ReconcileReservationsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReconcileReservationsCommand creates a command to reconcile orphaned
// roll reservations.
func NewReconcileReservationsCommand() ReconcileReservationsCommand {
	return ReconcileReservationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileReservationsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileReservationsCommandIsNotConstructed)
}
