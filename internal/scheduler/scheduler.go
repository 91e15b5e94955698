// Package scheduler triggers the automation routines on their fixed
// calendar cadence. A run missed while the process was down is skipped, not
// backfilled.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/automation"
	"github.com/BlackSenju/techhive-automation/internal/obs"
	"github.com/BlackSenju/techhive-automation/internal/worker"
)

type job struct {
	spec   string
	action string
	run    func(context.Context) (int, error)
}

// Scheduler wires cron triggers to the worker pool. Each trigger records a
// scheduled_task entry before the routine itself is submitted.
type Scheduler struct {
	cron *cron.Cron
	pool *worker.Pool
	log  *activity.Log
	jobs []job
}

func New(svc *automation.Service, pool *worker.Pool, log *activity.Log) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		pool: pool,
		log:  log,
		jobs: []job{
			{spec: "0 2 * * *", action: automation.ActionTitles, run: svc.OptimizeTitles},
			{spec: "0 */6 * * *", action: automation.ActionInventory, run: svc.UpdateInventoryTags},
			{spec: "0 3 * * 0", action: automation.ActionSEO, run: svc.GenerateSEODescriptions},
		},
	}
}

// Start registers all jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	for _, j := range s.jobs {
		j := j
		_, err := s.cron.AddFunc(j.spec, func() {
			s.log.Record("scheduled_task", "Running scheduled "+j.action)
			if !s.pool.Submit(j.action, func(ctx context.Context) {
				_, _ = j.run(ctx)
			}) {
				obs.Logger.Warn("scheduled_task_not_submitted", "routine", j.action)
			}
		})
		if err != nil {
			return err
		}
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop. A routine already handed to the pool keeps
// running.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Entries reports how many jobs are registered with the cron runner.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
