package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	prev := Logger()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestLevelsReachLogger(t *testing.T) {
	logs := withObserver(t, zapcore.DebugLevel)

	Debug("d")
	Info("i", zap.String("palette", "elementStroke"))
	Warn("w")
	Error("e", zap.Int("status", 500))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "elementStroke", entries[1].ContextMap()["palette"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(500), entries[3].ContextMap()["status"])
}

func TestLevelFiltering(t *testing.T) {
	logs := withObserver(t, zapcore.InfoLevel)

	Debug("hidden")
	Info("shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })
	SetLogger(zap.NewNop())

	// Must not panic or write anywhere.
	Info("nothing")
	Sync()
}

func TestInit(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	require.NoError(t, Init(true))
	assert.True(t, Logger().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, Logger().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger().Core().Enabled(zapcore.InfoLevel))
}
