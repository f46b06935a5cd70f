package scheduler

import "log"

// Logger is the minimal sink the scheduler writes to when a build fails to
// start or a build step fails. Errors never propagate as panics; per
// spec, "the scheduler logs and continues".
type Logger interface {
	Printf(format string, args ...interface{})
}

// stdLogger adapts the standard library's log package to Logger.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...interface{}) { log.Printf(format, args...) }
