// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual information and integration with the mUnits
//              error system. Encoding is delegated to zerolog.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: zerolog backend

package log

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	mdwerror "github.com/msto63/munits/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level  Level
	format Format
	output io.Writer
	name   string

	// Fields added to all log entries
	contextFields Fields
	correlationID string

	enableCaller     bool
	callerSkipFrames int

	zl    zerolog.Logger
	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a new logger with default configuration (JSON on stderr)
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
	})
}

// NewNop creates a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{
		Level:  LevelFatal,
		Output: io.Discard,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:            config.Level,
		format:           config.Format,
		output:           config.Output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}

	if logger.output == nil {
		logger.output = os.Stderr
	}

	logger.rebuild()
	return logger
}

// rebuild derives the zerolog logger from the current settings
func (l *Logger) rebuild() {
	ctx := zerolog.New(newWriter(l.format, l.output)).With().Timestamp()

	if l.name != "" {
		ctx = ctx.Str("logger", l.name)
	}
	if l.correlationID != "" {
		ctx = ctx.Str("correlation_id", l.correlationID)
	}
	if len(l.contextFields) > 0 {
		ctx = ctx.Fields(map[string]interface{}(l.contextFields))
	}
	if l.enableCaller {
		// Skip log() and the public level method
		ctx = ctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2 + l.callerSkipFrames)
	}

	l.zl = ctx.Logger()
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a copy writing the given format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.format = format })
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.output = output })
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a copy that adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.contextFields[key] = value })
}

// WithFields returns a copy that adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) {
		for k, v := range fields {
			c.contextFields[k] = v
		}
	})
}

// WithCorrelationID returns a copy carrying the correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = correlationID })
}

// WithCaller returns a copy that records caller information
func (l *Logger) WithCaller(skip int) *Logger {
	return l.derive(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error with its code, severity and details. The level
// follows the error severity.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}
	zl := l.zl
	l.mutex.RUnlock()

	event := zl.WithLevel(level.zerolog())
	if level == LevelAudit {
		event = event.Bool("audit", true)
	}
	if err != nil {
		event = event.Err(err)
	}
	for _, fieldSet := range fields {
		event = event.Fields(map[string]interface{}(fieldSet))
	}
	event.Msg(message)
}

// derive clones the logger, applies change and rebuilds the backend
func (l *Logger) derive(change func(*Logger)) *Logger {
	l.mutex.RLock()
	clone := &Logger{
		level:            l.level,
		format:           l.format,
		output:           l.output,
		name:             l.name,
		correlationID:    l.correlationID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		contextFields:    make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	l.mutex.RUnlock()

	change(clone)
	clone.rebuild()
	return clone
}

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
