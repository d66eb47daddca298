package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/recipebox/backend/config"
)

func TestNew(t *testing.T) {
	logger, err := New(config.Production, "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New(config.Development, "DEBUG")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.Test, "chatty")
	assert.Error(t, err)
}
