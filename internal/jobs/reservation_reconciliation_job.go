package jobs

import (
	"context"
	"log/slog"

	"pressflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconciliationSchedule runs the sweep every ten minutes. Orphans are rare
// and the sweep scans every reserved roll, so a tighter schedule buys nothing.
const reconciliationSchedule = "*/10 * * * *"

// ReservationReconciliationJob periodically releases roll reservations whose
// order has been deleted, crediting the reserved meterage back to stock.
type ReservationReconciliationJob struct {
	handler commands.ReconcileReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationReconciliationJob creates the reconciliation job.
func NewReservationReconciliationJob(
	handler commands.ReconcileReservationsCommandHandler,
	logger *slog.Logger,
) *ReservationReconciliationJob {
	return &ReservationReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reservation_reconciliation_job"),
	}
}

// Start schedules the reconciliation sweep.
func (j *ReservationReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileReservationsCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation reconciliation failed", "error", err)
			return
		}
		if released > 0 {
			j.logger.InfoContext(ctx, "Released orphaned roll reservations", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation reconciliation job started (running every ten minutes)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ReservationReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation reconciliation job stopped")
}
