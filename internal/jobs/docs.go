// Package jobs provides scheduled background tasks for the production system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline and roll stock.
//
// # Available Jobs
//
// 1. ReservationReconciliationJob - Runs every ten minutes to release roll
// reservations whose order has been deleted, crediting the meterage back
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileReservationsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The reconciliation job logs failures and retries on the next tick;
//   a failed sweep never blocks the request path
// - Failed job starts will stop any already running jobs
package jobs
