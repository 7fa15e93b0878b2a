package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPruneSchedule runs the prune at the top of every hour.
const DefaultPruneSchedule = "0 0 * * * *"

type PruneHandler interface {
	Handle(ctx context.Context, cmd commands.PruneExpiredSubscriptionsCommand) (int64, error)
}

// SubscriptionPruneJob periodically deletes push subscriptions that have expired,
// so the fanout does not keep addressing dead endpoints.
type SubscriptionPruneJob struct {
	handler  PruneHandler
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewSubscriptionPruneJob accepts a six-field cron expression or a descriptor such as "@every 30m".
// An empty schedule falls back to DefaultPruneSchedule.
func NewSubscriptionPruneJob(handler PruneHandler, schedule string, logger *slog.Logger) *SubscriptionPruneJob {
	if schedule == "" {
		schedule = DefaultPruneSchedule
	}
	return &SubscriptionPruneJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "subscription_prune_job"),
	}
}

// RunOnce performs a single prune pass.
func (j *SubscriptionPruneJob) RunOnce(ctx context.Context) error {
	cmd, err := commands.NewPruneExpiredSubscriptionsCommand(j.now())
	if err != nil {
		return err
	}

	pruned, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if pruned > 0 {
		j.logger.InfoContext(ctx, "Expired push subscriptions pruned", "count", pruned)
	}
	return nil
}

func (j *SubscriptionPruneJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Subscription prune job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscription prune job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *SubscriptionPruneJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Subscription prune job stopped")
}
