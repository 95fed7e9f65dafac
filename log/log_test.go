package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := ReplaceLogger(zap.New(core))
	defer restore()

	Info("processed", zap.String("plume", "CH4_PlumeComplex-1"))
	Debug("hidden")
	Error("failed", zap.Error(assert.AnError))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "processed", entries[0].Message)
	assert.Equal(t, "CH4_PlumeComplex-1", entries[0].ContextMap()["plume"])
	assert.Equal(t, "failed", entries[1].Message)
}

func TestUseDevelopment(t *testing.T) {
	prev := get()
	defer func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
		level.SetLevel(zap.InfoLevel)
	}()
	UseDevelopment()
	assert.NotSame(t, prev, get())
	require.NoError(t, SetLevel("warn"))
	assert.False(t, get().Core().Enabled(zap.InfoLevel))
	assert.True(t, get().Core().Enabled(zap.WarnLevel))
}

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zap.InfoLevel)
	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zap.DebugLevel, level.Level())
	assert.Error(t, SetLevel("loud"))
}
