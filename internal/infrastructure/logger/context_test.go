package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_MissingLogger(t *testing.T) {
	got := FromContext(context.Background())

	// No-op logger rather than nil so callers never guard
	assert.NotNil(t, got)
}

func TestWithRequestID(t *testing.T) {
	logger := zap.NewNop()

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.NotNil(t, enriched)
	assert.Same(t, enriched, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	logger := zap.NewNop()

	ctx, enriched := WithUserID(context.Background(), logger, "user-42")

	assert.Equal(t, "user-42", GetUserID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetUserID_Missing(t *testing.T) {
	assert.Equal(t, "", GetUserID(context.Background()))
}
