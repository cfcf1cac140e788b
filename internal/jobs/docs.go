// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order monitoring.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute to log how many orders sit in each status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stats job uses the standard cron expression "* * * * *" and runs every
// minute. It is read-only: order state only changes through the HTTP API.
//
// # Error Handling
//
// Query failures are logged and the next tick runs normally; a broken
// database connection surfaces once per minute rather than crashing the
// process.
package jobs
