// Package jobs provides scheduled background tasks for the courier hub.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// each one only calls a command handler.
//
// # Available Jobs
//
// 1. DispatchPendingJob - dispatches PROCESSING orders that are still waiting for a courier
// 2. StaleCourierSweepJob - takes ONLINE couriers whose last ping is too old off shift
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(dispatchJob, sweepJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A tick never overlaps the previous one; slow ticks are skipped
// - Orders without a candidate are counted, not reported as failures
// - Failed job starts will stop any already running jobs
package jobs
