package service

import (
	"context"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/repository"

	"github.com/google/uuid"
)

// UsageTracker records plan usage and warns managers as limits approach.
// Limits are recorded, never enforced.
type UsageTracker struct {
	repo     repository.UsageMetricRepositoryInterface
	notifier Notifier
	now      func() time.Time
}

// NewUsageTracker creates a new usage tracker; notifier may be nil
func NewUsageTracker(repo repository.UsageMetricRepositoryInterface, notifier Notifier) *UsageTracker {
	return &UsageTracker{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Increment adds delta to a metric, flags an exceeded limit and sends the one-time warning
func (t *UsageTracker) Increment(ctx context.Context, orgID uuid.UUID, metric models.MetricType, delta int) error {
	if delta == 0 {
		return nil
	}
	m, err := t.repo.Increment(orgID, metric, delta, t.now())
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", metric, err)
	}
	if m.LimitValue <= 0 {
		return nil
	}

	changed := false
	if m.CurrentValue >= m.LimitValue && !m.LimitExceeded {
		m.LimitExceeded = true
		changed = true
	}
	warn := false
	if !m.WarningSent && float64(m.CurrentValue)/float64(m.LimitValue) >= m.WarningThreshold {
		m.WarningSent = true
		changed = true
		warn = true
	}
	if changed {
		if err := t.repo.Update(m); err != nil {
			return fmt.Errorf("failed to update %s: %w", metric, err)
		}
	}

	if warn && t.notifier != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"organization_id": orgID,
			"metric":          metric,
			"usage":           m.UsagePercentage(),
		}).Info("usage warning threshold reached")

		err := t.notifier.NotifyManagers(ctx, orgID, NotificationInput{
			Title: "Usage Limit Warning",
			Message: fmt.Sprintf("Your organization has used %d of %d (%.2f%%) for %s on the current plan.",
				m.CurrentValue, m.LimitValue, m.UsagePercentage(), metric),
			Type:        models.NotificationBillingAlert,
			Priority:    models.NotificationPriorityHigh,
			ActionURL:   "/billing/usage",
			ActionLabel: "View usage",
		})
		if err != nil {
			return fmt.Errorf("failed to send usage warning: %w", err)
		}
	}
	return nil
}
