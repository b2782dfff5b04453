package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityTrace))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestShouldLogTrace(t *testing.T) {
	assert.False(t, ShouldLogTrace(VerbosityDebug))
	assert.True(t, ShouldLogTrace(VerbosityTrace))
	assert.True(t, ShouldLogTrace(4))
}

func TestInitializeIdempotentAndSafe(t *testing.T) {
	// Logger must be usable before Initialize.
	assert.NotNil(t, Logger)
	Infof("pre-init message is a no-op")

	assert.NoError(t, Initialize(VerbosityInfo, false))
	assert.NotNil(t, Logger)

	assert.NoError(t, Initialize(VerbosityDebug, true))
	assert.True(t, JSONOutput)
	Cleanup()
}
