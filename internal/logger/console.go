// Package logger provides logging implementations for civicmap sessions.
//
// Loggers record diagnostic events (answers, scores, the archetype match)
// plus leveled free-form messages. They never influence scoring.
// Implementations are thread-safe and support various output destinations
// (console, file).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/civicmap/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs session events to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return NewConsoleLoggerWithColor(writer, logLevel, isTerminal(writer))
}

// NewConsoleLoggerWithColor creates a ConsoleLogger with explicit colour control
func NewConsoleLoggerWithColor(writer io.Writer, logLevel string, useColor bool) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: useColor,
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true for os.Stdout and os.Stderr when they are TTYs.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// NoColor is set by fatih/color when stdout is not a TTY or NO_COLOR is set
		return !color.NoColor
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel formats "[HH:MM:SS] [LEVEL] message" if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := level
	if cl.colorOutput {
		label = levelColor(level).Sprint(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), label, message)
}

func levelColor(level string) *color.Color {
	var c *color.Color
	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		c = color.New(color.Reset)
	}
	// The logger has already decided; don't let fatih/color's TTY check veto it
	c.EnableColor()
	return c
}

// LogAnswer logs one recorded answer at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] session <id>: question <n> -> <label> (<index>)"
func (cl *ConsoleLogger) LogAnswer(sessionID string, question models.Question, option int) {
	cl.LogDebug(formatAnswer(sessionID, question, option))
}

// LogScores logs the score vector and tier map at DEBUG level
func (cl *ConsoleLogger) LogScores(scores models.ScoreVector, tiers models.TierMap) {
	if cl.writer == nil || !cl.shouldLog("debug") {
		return
	}
	var scheme *tierScheme
	if cl.colorOutput {
		scheme = newTierScheme()
	}
	cl.LogDebug("scores: " + formatScores(scores, tiers, scheme))
}

// LogMatch logs the matched archetype (or its absence) at DEBUG level
func (cl *ConsoleLogger) LogMatch(result *models.Result) {
	cl.LogDebug(formatMatch(result))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatAnswer renders an answer event without timestamp/level
func formatAnswer(sessionID string, question models.Question, option int) string {
	label := "?"
	if question.ValidOption(option) {
		label = question.Scale[option]
	}
	return fmt.Sprintf("session %s: question %d -> %s (%d)", shortID(sessionID), question.ID, label, option)
}

// formatMatch renders a match event without timestamp/level
func formatMatch(result *models.Result) string {
	matched, ok := result.Matched()
	if !ok {
		return "no archetype matched"
	}
	if len(result.Candidates) > 1 {
		return fmt.Sprintf("matched archetype: %s (also satisfied: %s)",
			matched.Name, strings.Join(result.Candidates[1:], ", "))
	}
	return fmt.Sprintf("matched archetype: %s", matched.Name)
}

// shortID trims a uuid to its first group for compact log lines
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogAnswer is a no-op implementation.
func (n *NoOpLogger) LogAnswer(sessionID string, question models.Question, option int) {
}

// LogScores is a no-op implementation.
func (n *NoOpLogger) LogScores(scores models.ScoreVector, tiers models.TierMap) {
}

// LogMatch is a no-op implementation.
func (n *NoOpLogger) LogMatch(result *models.Result) {
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}
