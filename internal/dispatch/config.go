package dispatch

import "github.com/charmbracelet/log"

// Config holds dispatcher configuration options.
type Config struct {
	// Logger receives dispatch diagnostics. Nil disables logging.
	Logger *log.Logger

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logger:           log.Default(),
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithLogger returns a copy of the config with the logger set.
func (c Config) WithLogger(logger *log.Logger) Config {
	c.Logger = logger
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
