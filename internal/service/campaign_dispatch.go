package service

import (
	"context"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"

	"github.com/google/uuid"
)

// DispatchBatchSize is how many pending recipients of one campaign are queued per pass
const DispatchBatchSize = 100

// DispatchResult summarises one campaign-dispatch pass
type DispatchResult struct {
	Started int `json:"started"`
	Queued  int `json:"queued"`
}

// DispatchDue starts scheduled campaigns whose start time has passed, then queues
// the next batch of pending recipients of every running campaign
func (s *CampaignService) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	log := logger.WithContext(ctx)
	now := s.now()
	result := &DispatchResult{}

	due, err := s.repo.ListDueScheduled(now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due campaigns: %w", err)
	}
	for i := range due {
		campaign := &due[i]
		won, err := s.repo.Transition(campaign.ID,
			[]models.CampaignStatus{models.CampaignStatusScheduled},
			models.CampaignStatusRunning,
			map[string]interface{}{"actual_start": now})
		if err != nil {
			log.WithError(err).WithField("campaign_id", campaign.ID).Error("failed to start scheduled campaign")
			continue
		}
		if !won {
			continue
		}
		result.Started++
		metrics.CampaignTransitions.WithLabelValues(string(models.CampaignStatusRunning)).Inc()
		log.WithField("campaign_id", campaign.ID).Info("scheduled campaign started")
		s.notify(ctx, campaign, models.NotificationCampaignStarted, "Campaign Started",
			fmt.Sprintf("Scheduled campaign '%s' is now running.", campaign.Name))
	}

	running, err := s.repo.ListByStatus(models.CampaignStatusRunning)
	if err != nil {
		return result, fmt.Errorf("failed to list running campaigns: %w", err)
	}
	for i := range running {
		n, err := s.queueBatch(ctx, &running[i])
		if err != nil {
			log.WithError(err).WithField("campaign_id", running[i].ID).Error("failed to queue campaign emails")
			continue
		}
		result.Queued += n
	}
	return result, nil
}

// queueBatch queues up to DispatchBatchSize pending recipients, spacing their
// scheduled times by the campaign's send interval. A batch continues after the
// last email still queued from earlier passes.
func (s *CampaignService) queueBatch(ctx context.Context, campaign *models.Campaign) (int, error) {
	pending, err := s.recipients.ListPending(campaign.ID, DispatchBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending recipients: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	now := s.now()
	interval := time.Duration(campaign.SendIntervalMinutes) * time.Minute
	start, err := s.batchStart(campaign.ID, now, interval)
	if err != nil {
		return 0, err
	}

	rows := make([]models.EmailQueue, len(pending))
	for i, ct := range pending {
		rows[i] = models.EmailQueue{
			CampaignID:       campaign.ID,
			TargetID:         ct.TargetID,
			CampaignTargetID: ct.ID,
			ScheduledTime:    start.Add(time.Duration(i) * interval),
			Status:           models.EmailQueueQueued,
		}
	}
	queued, err := s.recipients.QueueEmails(rows, now)
	if err != nil {
		return 0, fmt.Errorf("failed to queue emails: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaign.ID,
		"queued":      queued,
		"skipped":     len(rows) - queued,
	}).Info("campaign emails queued")
	return queued, nil
}

// batchStart is max(now, last queued + interval)
func (s *CampaignService) batchStart(campaignID uuid.UUID, now time.Time, interval time.Duration) (time.Time, error) {
	last, err := s.recipients.LastQueuedTime(campaignID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read queued emails: %w", err)
	}
	if last == nil {
		return now, nil
	}
	if next := last.Add(interval); next.After(now) {
		return next, nil
	}
	return now, nil
}
