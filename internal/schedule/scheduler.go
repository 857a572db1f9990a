// Package schedule runs background jobs on fixed intervals.
package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	"ledger/internal/log"
)

// Job is a named unit of scheduled work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs on top of cron.
type Scheduler struct {
	cron   *cron.Cron
	logger *log.Logger
}

func New(logger *log.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger.WithComponent(log.ComponentScheduler),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Every registers a job at a constant interval. Job errors are logged, not
// propagated; the next tick runs regardless.
func (s *Scheduler) Every(interval time.Duration, job Job) {
	s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		if err := job.Run(); err != nil {
			s.logger.Error("job failed", "job", job.Name(), log.FieldError, err)
			return
		}
		s.logger.Debug("job completed", "job", job.Name())
	}))
	s.logger.Info("job registered", "job", job.Name(), "interval", interval.String())
}

// RunNow executes a job immediately, outside its schedule.
func (s *Scheduler) RunNow(job Job) error {
	s.logger.Info("running job immediately", "job", job.Name())
	return job.Run()
}
