package logger

import (
	"github.com/harrison/civicmap/internal/models"
)

// SessionLogger is a scoring.Logger that also accepts leveled messages.
// ConsoleLogger, FileLogger and NoOpLogger all satisfy it.
type SessionLogger interface {
	LogAnswer(sessionID string, question models.Question, option int)
	LogScores(scores models.ScoreVector, tiers models.TierMap)
	LogMatch(result *models.Result)
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// MultiLogger delegates every event to multiple loggers
type MultiLogger struct {
	loggers []SessionLogger
}

// NewMultiLogger creates a MultiLogger, skipping nil entries
func NewMultiLogger(loggers ...SessionLogger) *MultiLogger {
	ml := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			ml.loggers = append(ml.loggers, l)
		}
	}
	return ml
}

// Add appends another logger
func (ml *MultiLogger) Add(l SessionLogger) {
	if l != nil {
		ml.loggers = append(ml.loggers, l)
	}
}

// LogAnswer forwards to all loggers
func (ml *MultiLogger) LogAnswer(sessionID string, question models.Question, option int) {
	for _, l := range ml.loggers {
		l.LogAnswer(sessionID, question, option)
	}
}

// LogScores forwards to all loggers
func (ml *MultiLogger) LogScores(scores models.ScoreVector, tiers models.TierMap) {
	for _, l := range ml.loggers {
		l.LogScores(scores, tiers)
	}
}

// LogMatch forwards to all loggers
func (ml *MultiLogger) LogMatch(result *models.Result) {
	for _, l := range ml.loggers {
		l.LogMatch(result)
	}
}

// LogTrace forwards to all loggers
func (ml *MultiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *MultiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *MultiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *MultiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards to all loggers
func (ml *MultiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}
