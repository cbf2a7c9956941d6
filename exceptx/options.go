package exceptx

import (
	"github.com/Abraxas-365/exceptkit/configx"
	"github.com/Abraxas-365/exceptkit/logx"
)

// Logger receives the handler's diagnostics. *logx.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...any)
	Trace(msg string, args ...any)
}

// Option configures an ExceptionHandler
type Option func(*ExceptionHandler)

// WithStrictMode makes the handler refuse registrations of kinds that are
// not Handleable.
func WithStrictMode(strict bool) Option {
	return func(h *ExceptionHandler) {
		h.strict = strict
	}
}

// WithLogger replaces the default logx logger.
func WithLogger(logger Logger) Option {
	return func(h *ExceptionHandler) {
		if logger != nil {
			h.log = logger
		}
	}
}

// NewFromConfig creates a handler from configuration. Keys: strict.
func NewFromConfig(cfg configx.Config, opts ...Option) *ExceptionHandler {
	base := []Option{WithStrictMode(cfg.Get("strict").AsBoolDefault(false))}
	return New(append(base, opts...)...)
}

// NewFromEnv creates a handler configured by EXCEPTX_* environment
// variables, e.g. EXCEPTX_STRICT=true.
func NewFromEnv(opts ...Option) (*ExceptionHandler, error) {
	cfg, err := configx.NewBuilder().
		WithDefaults(map[string]any{"strict": false}).
		FromEnv("EXCEPTX_").
		Build()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...), nil
}

func defaultLogger() Logger {
	return logx.GetLogger()
}
