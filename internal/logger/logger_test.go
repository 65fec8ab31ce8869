// SPDX-License-Identifier: MIT

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvroute/internal/logger"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json", "", "JSON"} {
		l, err := logger.New("warn", format)
		require.NoError(t, err, format)
		assert.Equal(t, zapcore.WarnLevel, l.Level())
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	}

	_, err := logger.New("loud", "console")
	assert.Error(t, err)
	_, err = logger.New("info", "xml")
	assert.ErrorIs(t, err, logger.ErrUnknownFormat)
}

func TestSetLevel(t *testing.T) {
	l, err := logger.New("info", "console")
	require.NoError(t, err)

	require.NoError(t, l.SetLevel("DEBUG"))
	assert.Equal(t, zapcore.DebugLevel, l.Level())
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, l.SetLevel("chatty"))
	assert.Equal(t, zapcore.DebugLevel, l.Level())
}

func TestWrap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.Wrap(zap.New(core))
	l.Info("hello")
	assert.Equal(t, 1, logs.Len())
}
