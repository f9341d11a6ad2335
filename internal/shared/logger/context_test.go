package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
)

func TestFromContext_DefaultsOutsideRequest(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
}

func TestWith_AddsAttributesDownstream(t *testing.T) {
	// Given
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logger.WithLogger(context.Background(), base.With("request_id", "req-1"))

	// When
	ctx = logger.With(ctx, "member_id", "7")
	logger.FromContext(ctx).Info("리뷰 전송")

	// Then
	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "member_id=7")
	assert.Contains(t, out, "리뷰 전송")
}
