package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger is a simple leveled logger that writes to the console.
type Logger struct {
	*log.Logger
}

// NewLogger creates a new Logger.
func NewLogger() *Logger {
	return &Logger{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// Info logs an informational event with key-value fields.
func (l *Logger) Info(event string, args ...interface{}) {
	l.Printf("INFO: %s%s", event, formatFields(args))
}

// Warn logs a warning event.
func (l *Logger) Warn(event string, args ...interface{}) {
	l.Printf("WARN: %s%s", event, formatFields(args))
}

// Error logs an error event.
func (l *Logger) Error(event string, args ...interface{}) {
	l.Printf("ERROR: %s%s", event, formatFields(args))
}

// Debug logs a debug event.
func (l *Logger) Debug(event string, args ...interface{}) {
	l.Printf("DEBUG: %s%s", event, formatFields(args))
}

// formatFields renders alternating key-value args as " k=v". A trailing odd
// argument is appended as-is.
func formatFields(args []interface{}) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 != 0 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}
