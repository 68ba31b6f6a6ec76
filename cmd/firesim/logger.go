package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	zc := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       debug,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		DisableStacktrace: !debug,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return zc.Build()
}

// engineLogger adapts the process logger to the calculation engine's
// printf-style Logger interface.
type engineLogger struct {
	s *zap.SugaredLogger
}

func (l engineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l engineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l engineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l engineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
