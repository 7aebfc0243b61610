package jobs

import (
	"fmt"
	"log/slog"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingSnapshotJob *TrackingSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	summaryHandler queries.GetTrackingSummaryQueryHandler,
	m *metrics.TrackingMetrics,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingSnapshotJob: NewTrackingSnapshotJob(summaryHandler, m, snapshotSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingSnapshotJob.Stop()
}
