package logx

import (
	"io"
	"strings"

	"github.com/Abraxas-365/exceptkit/configx"
)

var defaultLogger = New()

func init() {
	cfg, err := configx.NewBuilder().FromEnv("LOG_").Build()
	if err != nil {
		return
	}
	Configure(defaultLogger, cfg)
}

// Configure applies level, format, color and caller settings to l.
// Keys: level, format, color, caller.
func Configure(l *Logger, cfg configx.Config) {
	if raw := cfg.Get("level").AsString(); raw != "" {
		if level, err := ParseLevel(raw); err == nil {
			l.SetLevel(level)
		}
	}

	switch strings.ToLower(cfg.Get("format").AsString()) {
	case "json":
		l.SetFormat(FormatJSON)
	case "console":
		l.SetFormat(FormatConsole)
	}

	if cfg.Has("color") {
		l.SetColored(cfg.Get("color").AsBoolDefault(true))
	}
	if cfg.Has("caller") {
		l.SetShowCaller(cfg.Get("caller").AsBoolDefault(true))
	}
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the global output destination
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// SetFormat sets the global log format
func SetFormat(format OutputFormat) {
	defaultLogger.SetFormat(format)
}

// GetLogger returns the default logger instance
func GetLogger() *Logger {
	return defaultLogger
}

func Trace(msg string, args ...any) {
	defaultLogger.Trace(msg, args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
