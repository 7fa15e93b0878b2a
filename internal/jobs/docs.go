// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-precision schedules
// and are started and stopped together through JobManager:
//
//	pruneJob := jobs.NewSubscriptionPruneJob(&pruneHandler, cfg.PruneSchedule, logger)
//	jobManager := jobs.NewJobManager(logger, pruneJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
//   - SubscriptionPruneJob removes push subscriptions past their expiry.
//     Delivery also prunes lazily, so the job only bounds how long stale rows linger.
//
// A failing pass is logged and the schedule keeps running.
package jobs
