package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tempora-go/tempora/internal/assert"
	"github.com/tempora-go/tempora/logger"
)

func newTestLogger(buf *bytes.Buffer, level logger.Level) *logger.SlogLogger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.Level(level),
	})
	return logger.NewSlogLogger(context.Background(), slog.New(handler))
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := newTestLogger(&buf, logger.LevelTrace)

	log.Trace("trace message", "a", 1)
	log.Debug("debug message", "b", 2)
	log.Info("info message", "c", 3)
	log.Warn("warn message", "d", 4)
	log.Error("error message", "e", 5)

	output := buf.String()
	for _, fragment := range []string{
		"trace message", "a=1",
		"debug message", "b=2",
		"info message", "c=3",
		"warn message", "d=4",
		"error message", "e=5",
	} {
		assert.True(t, strings.Contains(output, fragment))
	}
}

func TestSlogLoggerLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := newTestLogger(&buf, logger.LevelWarn)

	log.Trace("trace message")
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	output := buf.String()
	assert.True(t, !strings.Contains(output, "trace message"))
	assert.True(t, !strings.Contains(output, "debug message"))
	assert.True(t, !strings.Contains(output, "info message"))
	assert.True(t, strings.Contains(output, "warn message"))
}

func TestNewSlogLoggerNilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		assert.NotNil(t, recover())
	}()
	logger.NewSlogLogger(context.Background(), nil)
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()
	var log logger.Logger = logger.NoOpLogger{}
	log.Trace("a")
	log.Debug("b")
	log.Info("c")
	log.Warn("d")
	log.Error("e")
}
