package jobs

import (
	"context"
	"log/slog"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotSchedule is used when no schedule is configured.
const DefaultSnapshotSchedule = "@every 30s"

// TrackingSnapshotJob periodically reads the store totals, publishes them as
// prometheus gauges and logs them.
type TrackingSnapshotJob struct {
	handler  queries.GetTrackingSummaryQueryHandler
	metrics  *metrics.TrackingMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackingSnapshotJob creates the job. schedule is a robfig/cron spec such
// as "@every 30s" or "*/5 * * * *"; empty means DefaultSnapshotSchedule.
func NewTrackingSnapshotJob(
	handler queries.GetTrackingSummaryQueryHandler,
	m *metrics.TrackingMetrics,
	schedule string,
	logger *slog.Logger,
) *TrackingSnapshotJob {
	if schedule == "" {
		schedule = DefaultSnapshotSchedule
	}

	return &TrackingSnapshotJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "tracking_snapshot_job"),
	}
}

// Start schedules the job. It fails on an invalid schedule.
func (j *TrackingSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Tracking snapshot job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot.
func (j *TrackingSnapshotJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetTrackingSummaryQuery())
	if err != nil {
		return err
	}

	j.metrics.ObserveSnapshot(metrics.Snapshot{
		Orders:           summary.Orders,
		Partners:         summary.Partners,
		AssignedOrders:   summary.AssignedOrders,
		UnassignedOrders: summary.UnassignedOrders,
	})

	j.logger.DebugContext(ctx, "Tracking snapshot",
		"orders", summary.Orders,
		"partners", summary.Partners,
		"assigned_orders", summary.AssignedOrders,
		"unassigned_orders", summary.UnassignedOrders,
	)
	return nil
}

// Stop stops scheduling and waits for a running snapshot to finish.
func (j *TrackingSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracking snapshot job stopped")
}
