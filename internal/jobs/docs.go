// Package jobs provides scheduled background tasks for the tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// TrackingSnapshotJob reads the store totals (orders, partners, assigned and
// unassigned orders), sets the matching prometheus gauges and logs them at
// debug level.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(summaryHandler, trackingMetrics, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron spec or a descriptor such as
// "@every 30s". It comes from SNAPSHOT_SCHEDULE; an invalid value makes
// StartAll fail.
//
// # Error Handling
//
// A failed snapshot is logged and the next tick tries again.
package jobs
