package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/observability"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the dispatch sweep every five seconds.
const DefaultDispatchSchedule = "*/5 * * * * *"

// PendingDispatcher is satisfied by commands.DispatchPendingOrdersCommandHandler.
type PendingDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchPendingOrdersCommand) (commands.DispatchPendingResult, error)
}

// DispatchPendingJob retries dispatch for orders that got no courier when
// they entered PROCESSING.
type DispatchPendingJob struct {
	handler  PendingDispatcher
	schedule string
	batch    int
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDispatchPendingJob(handler PendingDispatcher, schedule string, batch int, logger *slog.Logger) *DispatchPendingJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	if batch <= 0 {
		batch = commands.DefaultDispatchBatch
	}
	logger = logger.With("component", "dispatch_pending_job")
	return &DispatchPendingJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		timeout:  30 * time.Second,
		cron:     newCron(logger),
		logger:   logger,
	}
}

func (j *DispatchPendingJob) Name() string { return "dispatch pending" }

func (j *DispatchPendingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.tick); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch pending job started", "schedule", j.schedule, "batch", j.batch)
	return nil
}

func (j *DispatchPendingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch pending job stopped")
}

func (j *DispatchPendingJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Dispatch pending job failed", "error", err)
	}
}

// Run performs one sweep and records its outcome counters.
func (j *DispatchPendingJob) Run(ctx context.Context) (commands.DispatchPendingResult, error) {
	cmd, err := commands.NewDispatchPendingOrdersCommand(j.batch)
	if err != nil {
		return commands.DispatchPendingResult{}, err
	}

	result, err := j.handler.Handle(ctx, cmd)
	observability.DispatchTotal.WithLabelValues(observability.OutcomeAssigned).Add(float64(result.Assigned))
	observability.DispatchTotal.WithLabelValues(observability.OutcomeNoCandidate).Add(float64(result.NoCandidate))
	observability.DispatchTotal.WithLabelValues(observability.OutcomeFailed).Add(float64(result.Failed))
	if err != nil {
		return result, err
	}

	if result.Assigned+result.Failed > 0 {
		j.logger.InfoContext(ctx, "dispatch sweep finished",
			"assigned", result.Assigned, "no_candidate", result.NoCandidate, "failed", result.Failed)
	}
	return result, nil
}
