package testhelper

import (
	"fmt"
	"sync"
)

// LogEntry represents a log entry with its message and fields
type LogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// TestLogger provides a logger implementation for testing that records
// every message it is given. Safe for concurrent use.
type TestLogger struct {
	mu            sync.RWMutex
	infoMessages  []LogEntry
	errorMessages []LogEntry
	warnMessages  []LogEntry
	debugMessages []LogEntry
}

// NewTestLogger creates a new test logger instance
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// LogInfo implements logger.Logger
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.infoMessages = append(t.infoMessages, LogEntry{Message: msg, Fields: fields})
}

// LogError implements logger.Logger
func (t *TestLogger) LogError(err error, msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.errorMessages = append(t.errorMessages, LogEntry{Message: msg, Fields: fields})
	return err
}

// LogErrorf implements logger.Logger
func (t *TestLogger) LogErrorf(err error, format string, args ...interface{}) error {
	return t.LogError(err, fmt.Sprintf(format, args...))
}

// LogFatal implements logger.Logger. It records the message instead of
// exiting so tests can assert on fatal paths.
func (t *TestLogger) LogFatal(err error, context string) {
	t.LogError(err, "FATAL: "+context)
}

// LogDebug implements logger.Logger
func (t *TestLogger) LogDebug(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.debugMessages = append(t.debugMessages, LogEntry{Message: message, Fields: fields})
}

// LogWarn implements logger.Logger
func (t *TestLogger) LogWarn(message string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.warnMessages = append(t.warnMessages, LogEntry{Message: message, Fields: fields})
}

// InfoMessages returns all info level messages
func (t *TestLogger) InfoMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.infoMessages...)
}

// ErrorMessages returns all error level messages
func (t *TestLogger) ErrorMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.errorMessages...)
}

// WarnMessages returns all warning level messages
func (t *TestLogger) WarnMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.warnMessages...)
}

// DebugMessages returns all debug level messages
func (t *TestLogger) DebugMessages() []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]LogEntry(nil), t.debugMessages...)
}
