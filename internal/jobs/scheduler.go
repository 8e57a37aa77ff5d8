// Package jobs runs the periodic background work: campaign dispatch, email delivery and scheduled reports.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"

	"github.com/getsentry/sentry-go"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{jobs: make([]Job, 0)}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	logger.New().WithFields(map[string]interface{}{
		"job":      job.Name(),
		"interval": job.Schedule().String(),
	}).Info("Registered scheduled job")
}

// Jobs returns the registered jobs
func (s *Scheduler) Jobs() []Job {
	return s.jobs
}

// Start runs every job on its own ticker and blocks until ctx is cancelled and all jobs have stopped
func (s *Scheduler) Start(ctx context.Context) error {
	logger.New().Infof("Starting scheduler with %d jobs", len(s.jobs))

	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	s.wg.Wait()
	logger.New().Info("Scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	// Run immediately on startup
	s.executeJob(ctx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.executeJob(ctx, job)
		}
	}
}

// executeJob runs a job once, recovering panics and reporting failures
func (s *Scheduler) executeJob(ctx context.Context, job Job) (err error) {
	log := logger.New().WithField("job", job.Name())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name(), r)
		}
		duration := time.Since(start)
		if err != nil {
			metrics.JobRuns.WithLabelValues(job.Name(), "error").Inc()
			sentry.CaptureException(err)
			log.WithError(err).WithField("duration", duration.String()).Error("Job failed")
			return
		}
		metrics.JobRuns.WithLabelValues(job.Name(), "ok").Inc()
		log.WithField("duration", duration.String()).Debug("Job completed")
	}()

	return job.Run(ctx)
}
