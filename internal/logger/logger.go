// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the CLI.
package logger

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvroute/internal/ui/style"
)

// ErrUnknownFormat is returned for encodings other than console and json.
var ErrUnknownFormat = zerr.New("unknown log format")

// Logger is a zap.Logger whose level can be changed after construction,
// once configuration and flags are known.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New builds a Logger writing to stderr. format is "console" (development
// encoder, colored levels on a terminal) or "json" (production encoder).
func New(level, format string) (*Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid log level"), "level", level)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if style.ColorEnabled(os.Stderr) {
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownFormat, "build logger"), "format", format)
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	z, err := cfg.Build()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build logger")
	}

	return &Logger{Logger: z, level: lvl}, nil
}

// Wrap adapts an existing zap logger, mostly for tests. Its level is not
// adjustable through SetLevel beyond the core's own threshold.
func Wrap(z *zap.Logger) *Logger {
	return &Logger{Logger: z, level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

// SetLevel changes the minimum enabled level.
func (l *Logger) SetLevel(level string) error {
	if err := l.level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zerr.With(zerr.Wrap(err, "invalid log level"), "level", level)
	}

	return nil
}

// Level returns the current minimum enabled level.
func (l *Logger) Level() zapcore.Level { return l.level.Level() }
