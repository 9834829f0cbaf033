// Package logger provides the prefixed loggers used by the command-line
// front-ends.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled lines through separate log.Loggers.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing info and warnings to stdout and
// errors to stderr.
func NewLogger() *Logger {
	return New(os.Stdout, os.Stderr)
}

// New creates a logger on the given writers.
func New(out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		infoLogger:  log.New(out, "[LIFE-INFO] ", flags),
		warnLogger:  log.New(out, "[LIFE-WARN] ", flags),
		errorLogger: log.New(errOut, "[LIFE-ERROR] ", flags),
	}
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Generation logs a completed generation.
func (l *Logger) Generation(gen, population int) {
	l.infoLogger.Printf("[GEN:%d] population=%d", gen, population)
}
