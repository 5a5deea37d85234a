// Package logger builds the zap logger shared by the command line and the server.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the logging level
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ParseLevel returns the Level named s.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing to stderr.
//
// Development loggers are human-readable, the others write JSON lines.
func New(development bool, level Level) (*zap.Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level.zapLevel())
	config.OutputPaths = []string{"stderr"}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("cannot build logger: %w", err)
	}
	return log, nil
}
