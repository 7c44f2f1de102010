// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for kitchen monitoring.
//
// # Available Jobs
//
// 1. KitchenReportJob - Runs every ten seconds to log the current kitchen load
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(kitchenLoadHandler, logger)
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
// The report job uses the cron expression "*/10 * * * * *" which means it
// runs every ten seconds. Frequent enough to follow cooking progress without
// flooding the log.
//
// # Error Handling
//
// The report job logs every query failure; the kitchen load query has no
// expected business errors.
package jobs
