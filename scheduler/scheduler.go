package scheduler

import (
	"HRAS/database"
	"HRAS/logging"
	"HRAS/services"
	"context"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background jobs: the assignment retry pass for patients
// still waiting, and Redis pool monitoring.
type Scheduler struct {
	cron        *cron.Cron
	assignments *services.AssignmentService
}

func New(assignments *services.AssignmentService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		assignments: assignments,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", func() {
		s.assignments.RetryWaiting(context.Background())
	}); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@hourly", func() {
		database.MonitorRedisPool(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	logging.Log.Infow("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logging.Log.Infow("scheduler stopped")
}
