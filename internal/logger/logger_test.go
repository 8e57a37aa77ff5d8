package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("anonymous when no user in context", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
		assert.NotContains(t, l.Data, "request_id")
	})

	t.Run("prefers email over user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "8a3c")
		ctx = context.WithValue(ctx, UserEmailKey, "alice@example.com")
		ctx = context.WithValue(ctx, RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, OrganizationIDKey, "org-1")

		l := WithContext(ctx)
		assert.Equal(t, "alice@example.com", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
		assert.Equal(t, "org-1", l.Data["organization_id"])
	})

	t.Run("falls back to user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "8a3c")
		assert.Equal(t, "8a3c", WithContext(ctx).Data["user"])
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
