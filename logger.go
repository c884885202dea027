package pathroute

import "fmt"

// LoggerEnabled gates the default logger output.
var LoggerEnabled = false

// Logger is the consumer-facing logging interface. Scan diagnostics from
// RouteSet go through it.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defaultLogger struct {
}

func (d *defaultLogger) Debug(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Info(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[INFO] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Error(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[ERROR] "+format+"\n", args...)
	}
}
