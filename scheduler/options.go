package scheduler

// Option configures a Scheduler via functional arguments, matching the
// configuration shape used across the module's other packages.
type Option func(*Config)

// Config holds the tunables a Scheduler is constructed with.
type Config struct {
	// BudgetMS is the wall-time ceiling per update call, shared across all
	// goals. <= 0 disables budget tracking (each goal-step still processes
	// at least one node per call, per field.Step's own guarantee).
	BudgetMS float64

	// Logger receives a line whenever a build fails to start or a step
	// fails and its build is cancelled.
	Logger Logger
}

// DefaultConfig returns a Config with budget tracking disabled and the
// standard library logger.
func DefaultConfig() Config {
	return Config{
		BudgetMS: 0,
		Logger:   stdLogger{},
	}
}

// WithBudgetMS sets the per-update wall-time budget, clamped to >= 0.
func WithBudgetMS(ms float64) Option {
	return func(c *Config) {
		if ms < 0 {
			ms = 0
		}
		c.BudgetMS = ms
	}
}

// WithLogger overrides the default logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
