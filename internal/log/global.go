package log

import "sync"

// The package default is what components log through before the CLI shell
// has wired an explicitly configured logger into them.
var (
	mu            sync.Mutex
	defaultLogger *Logger
)

// SetDefaultLogger installs logger as the process-wide default.
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

// DefaultLogger returns the process-wide default, creating a stderr logger
// with DefaultConfig on first use.
func DefaultLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = Default()
	}
	return defaultLogger
}
