package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/observability"

	"github.com/robfig/cron/v3"
)

const (
	DefaultSweepSchedule = "0 * * * * *"
	DefaultStaleAfter    = 10 * time.Minute
)

// StaleMarker is satisfied by commands.MarkStaleCouriersOfflineCommandHandler.
type StaleMarker interface {
	Handle(ctx context.Context, cmd commands.MarkStaleCouriersOfflineCommand) ([]kernel.UUID, error)
}

// StaleCourierSweepJob takes ONLINE couriers off shift once their last
// location ping is older than staleAfter.
type StaleCourierSweepJob struct {
	handler    StaleMarker
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewStaleCourierSweepJob(
	handler StaleMarker,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleCourierSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	logger = logger.With("component", "stale_courier_sweep_job")
	return &StaleCourierSweepJob{
		handler:    handler,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       newCron(logger),
		logger:     logger,
	}
}

func (j *StaleCourierSweepJob) Name() string { return "stale courier sweep" }

func (j *StaleCourierSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.tick); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale courier sweep job started",
		"schedule", j.schedule, "stale_after", j.staleAfter.String())
	return nil
}

func (j *StaleCourierSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale courier sweep job stopped")
}

func (j *StaleCourierSweepJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Stale courier sweep job failed", "error", err)
	}
}

// Run performs one sweep and returns the number of couriers taken off shift.
func (j *StaleCourierSweepJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewMarkStaleCouriersOfflineCommand(j.staleAfter)
	if err != nil {
		return 0, err
	}

	stale, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	observability.StaleCouriersTotal.Add(float64(len(stale)))
	return len(stale), nil
}
