// ABOUTME: Logrus-backed logger implementation with structured fields
// ABOUTME: Adapts sirupsen/logrus to the engine's Logger interface

package logrus

import (
	"io"

	"github.com/sirupsen/logrus"

	"rssminer/core/interfaces"
)

// Logger implements the Logger interface using sirupsen/logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger writing text-formatted lines to stderr
func NewLogger() *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &Logger{log: log}
}

// NewLoggerWithOutput creates a logger writing to the given sink
func NewLoggerWithOutput(w io.Writer) *Logger {
	logger := NewLogger()
	logger.log.SetOutput(w)
	return logger
}

// SetLevel adjusts the minimum level from its name (debug, info, warn, error).
// Unknown names leave the level unchanged.
func (l *Logger) SetLevel(level string) {
	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.log.SetLevel(parsed)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

// interface guard
var _ interfaces.Logger = (*Logger)(nil)
