package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Success(t *testing.T) {
	logger := New("test-package")

	assert.NotNil(t, logger)
	assert.IsType(t, &SlogLogger{}, logger)
}

func TestNewWithConfig_JSONFormat(t *testing.T) {
	config := Config{
		Name:   "test-service",
		Format: FormatJSON,
		Level:  slog.LevelDebug,
	}

	logger := NewWithConfig(config)

	assert.NotNil(t, logger)
	assert.IsType(t, &SlogLogger{}, logger)
}

func TestNewWithConfig_TextFormat(t *testing.T) {
	config := Config{
		Name:   "test-service",
		Format: FormatText,
		Level:  slog.LevelInfo,
	}

	logger := NewWithConfig(config)

	assert.NotNil(t, logger)
	assert.IsType(t, &SlogLogger{}, logger)
}

func TestNewWithContext_NoTraceID(t *testing.T) {
	// NewWithContext should work even without traceID in context
	ctx := context.Background()

	logger := NewWithContext(ctx, "test-service")

	assert.NotNil(t, logger)
	assert.IsType(t, &SlogLogger{}, logger)
}

func TestContextWithTraceID_RoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-123")

	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
}

func TestTraceIDFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
}

func TestErr_ReturnsOriginalError(t *testing.T) {
	logger := New("test")
	original := errors.New("boom")

	err := logger.Err("something failed", original)

	assert.Equal(t, original, err)
}

func TestError_ReturnsMessageError(t *testing.T) {
	logger := New("test")

	err := logger.Error("something failed", "key", "value")

	assert.EqualError(t, err, "something failed")
}

func TestErrorWithType_WrapsSentinel(t *testing.T) {
	logger := New("test")
	sentinel := errors.New("validation error")

	err := logger.ErrorWithType(sentinel, "bad input")

	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "bad input")
}

func TestErrMsg_ReturnsError(t *testing.T) {
	logger := New("test")

	err := logger.ErrMsg("plain message")

	assert.EqualError(t, err, "plain message")
}

func TestWith_ChainMethod(t *testing.T) {
	logger := New("test")

	newLogger := logger.With("key1", "value1")

	assert.NotNil(t, newLogger)
	assert.IsType(t, &SlogLogger{}, newLogger)
}

func TestFunction_Method(t *testing.T) {
	logger := New("test")

	funcLogger := logger.Function("applyView")

	assert.NotNil(t, funcLogger)
	assert.IsType(t, &SlogLogger{}, funcLogger)
}

func TestTimer_ReturnsStopFunc(t *testing.T) {
	logger := New("test")

	stop := logger.Timer("operation")

	assert.NotNil(t, stop)
	stop()
}
