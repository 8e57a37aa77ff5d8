package jobs

import (
	"context"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/repository"
	"phishing-simulator-backend/internal/service"
)

// CampaignDispatcher starts due campaigns and queues their emails
type CampaignDispatcher interface {
	DispatchDue(ctx context.Context) (*service.DispatchResult, error)
}

// QueueProcessor delivers due queued emails
type QueueProcessor interface {
	ProcessQueue(ctx context.Context) (*service.SendResult, error)
}

// ScheduledReportRunner runs due scheduled reports
type ScheduledReportRunner interface {
	RunScheduledReports(ctx context.Context) (*service.ScheduledRunResult, error)
}

// CampaignDispatchJob starts scheduled campaigns and queues pending recipients
type CampaignDispatchJob struct {
	dispatcher CampaignDispatcher
	interval   time.Duration
}

// NewCampaignDispatchJob creates a new campaign dispatch job
func NewCampaignDispatchJob(dispatcher CampaignDispatcher, interval time.Duration) *CampaignDispatchJob {
	if interval == 0 {
		interval = time.Minute
	}
	return &CampaignDispatchJob{dispatcher: dispatcher, interval: interval}
}

// Name returns the job name
func (j *CampaignDispatchJob) Name() string {
	return "campaign_dispatch"
}

// Schedule returns how often the job should run
func (j *CampaignDispatchJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one dispatch pass
func (j *CampaignDispatchJob) Run(ctx context.Context) error {
	result, err := j.dispatcher.DispatchDue(ctx)
	if err != nil {
		return fmt.Errorf("campaign dispatch failed: %w", err)
	}
	if result.Started > 0 || result.Queued > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"started": result.Started,
			"queued":  result.Queued,
		}).Info("Campaign dispatch completed")
	}
	return nil
}

// EmailSenderJob delivers queued campaign emails
type EmailSenderJob struct {
	processor QueueProcessor
	interval  time.Duration
}

// NewEmailSenderJob creates a new email sender job
func NewEmailSenderJob(processor QueueProcessor, interval time.Duration) *EmailSenderJob {
	if interval == 0 {
		interval = 30 * time.Second
	}
	return &EmailSenderJob{processor: processor, interval: interval}
}

// Name returns the job name
func (j *EmailSenderJob) Name() string {
	return "email_sender"
}

// Schedule returns how often the job should run
func (j *EmailSenderJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one delivery pass
func (j *EmailSenderJob) Run(ctx context.Context) error {
	result, err := j.processor.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("email sending failed: %w", err)
	}
	if result.Sent+result.Retried+result.Failed > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"sent":    result.Sent,
			"retried": result.Retried,
			"failed":  result.Failed,
			"skipped": result.Skipped,
		}).Info("Email sending completed")
	}
	return nil
}

// ScheduledReportsJob regenerates due scheduled reports
type ScheduledReportsJob struct {
	runner   ScheduledReportRunner
	interval time.Duration
}

// NewScheduledReportsJob creates a new scheduled reports job
func NewScheduledReportsJob(runner ScheduledReportRunner, interval time.Duration) *ScheduledReportsJob {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	return &ScheduledReportsJob{runner: runner, interval: interval}
}

// Name returns the job name
func (j *ScheduledReportsJob) Name() string {
	return "scheduled_reports"
}

// Schedule returns how often the job should run
func (j *ScheduledReportsJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one scheduled-report pass
func (j *ScheduledReportsJob) Run(ctx context.Context) error {
	result, err := j.runner.RunScheduledReports(ctx)
	if err != nil {
		return fmt.Errorf("scheduled reports failed: %w", err)
	}
	if result.Run+result.Failed > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"run":    result.Run,
			"failed": result.Failed,
		}).Info("Scheduled reports completed")
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d scheduled reports failed", result.Failed)
	}
	return nil
}

// TokenCleanupJob purges expired entries from the refresh-token blacklist
type TokenCleanupJob struct {
	repo     repository.RevokedTokenRepositoryInterface
	interval time.Duration
}

// NewTokenCleanupJob creates a new token cleanup job
func NewTokenCleanupJob(repo repository.RevokedTokenRepositoryInterface, interval time.Duration) *TokenCleanupJob {
	if interval == 0 {
		interval = time.Hour
	}
	return &TokenCleanupJob{repo: repo, interval: interval}
}

// Name returns the job name
func (j *TokenCleanupJob) Name() string {
	return "token_cleanup"
}

// Schedule returns how often the job should run
func (j *TokenCleanupJob) Schedule() time.Duration {
	return j.interval
}

// Run deletes expired revocations
func (j *TokenCleanupJob) Run(ctx context.Context) error {
	n, err := j.repo.DeleteExpired(time.Now())
	if err != nil {
		return fmt.Errorf("token cleanup failed: %w", err)
	}
	if n > 0 {
		logger.WithContext(ctx).WithField("deleted", n).Info("Expired token revocations purged")
	}
	return nil
}
