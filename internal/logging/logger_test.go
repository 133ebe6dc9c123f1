package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestForLibrary(t *testing.T) {
	assert.False(t, ForLibrary(false).Core().Enabled(zapcore.ErrorLevel), "library is silent by default")
	assert.True(t, ForLibrary(true).Core().Enabled(zapcore.DebugLevel))
}
