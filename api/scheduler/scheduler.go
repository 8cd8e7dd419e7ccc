package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/databases"
)

// reconcileTimeout bounds one pass of the mirror job
const reconcileTimeout = 2 * time.Minute

// Scheduler runs the periodic background jobs for the flat-file stores
type Scheduler struct {
	cron     *cron.Cron
	MDB      databases.MessageDatabase
	schedule string
}

// NewScheduler creates a new scheduler instance. An empty schedule disables the
// periodic job; Start then only runs it once.
func NewScheduler(mDB databases.MessageDatabase, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		MDB:      mDB,
		schedule: schedule,
	}
}

// Start reconciles once and then begins the scheduler with all registered jobs
func (s *Scheduler) Start() error {
	s.reconcileMessages()

	if s.schedule == "" {
		zap.S().Info("message mirror schedule disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.reconcileMessages); err != nil {
		zap.S().Errorw("failed to register message mirror job",
			"schedule", s.schedule,
			"error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("scheduler started", "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// reconcileMessages appends any message missing from the CSV mirror
func (s *Scheduler) reconcileMessages() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	added, err := s.MDB.Reconcile(ctx)
	if err != nil {
		zap.S().Errorw("failed to reconcile message csv", "error", err)
		return
	}
	if added > 0 {
		zap.S().Infow("restored missing message csv rows", "count", added)
	}
}
