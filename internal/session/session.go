// Package session collects one respondent's answers in bank order.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// It advances one question per Submit and signals completion on the last
// question instead of advancing.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/scoring"
)

// ErrSessionComplete is returned by Submit once every question is answered
var ErrSessionComplete = errors.New("session already complete")

// Session tracks the position and answers of one respondent
type Session struct {
	id       string
	engine   *scoring.Engine
	logger   scoring.Logger
	position int
	answers  models.Answers
	done     bool
}

// New starts a session at the first question.
// The logger parameter is optional and can be nil.
func New(engine *scoring.Engine, logger scoring.Logger) *Session {
	return &Session{
		id:      uuid.New().String(),
		engine:  engine,
		logger:  logger,
		answers: models.Answers{},
	}
}

// ID returns the session identifier used to correlate log lines
func (s *Session) ID() string {
	return s.id
}

// Position returns the index of the question awaiting an answer.
// After completion it stays on the last question.
func (s *Session) Position() int {
	return s.position
}

// Total returns the number of questions in the session
func (s *Session) Total() int {
	return s.engine.Len()
}

// Answered returns how many questions have been answered
func (s *Session) Answered() int {
	return len(s.answers)
}

// Done reports whether every question has been answered
func (s *Session) Done() bool {
	return s.done
}

// Current returns the question awaiting an answer
func (s *Session) Current() (models.Question, error) {
	return s.engine.Question(s.position)
}

// Answers returns a copy of the answers collected so far
func (s *Session) Answers() models.Answers {
	return s.answers.Clone()
}

// Submit records optionIndex for the current question.
// It returns the next question index and false, or the current index and
// true when the answer completed the session. An out-of-range option fails
// fast with scoring.ErrOptionOutOfRange and leaves the session unchanged.
func (s *Session) Submit(optionIndex int) (int, bool, error) {
	if s.done {
		return s.position, true, ErrSessionComplete
	}

	next, err := s.engine.SubmitAnswer(s.answers, s.position, optionIndex)
	if err != nil {
		return s.position, false, err
	}
	s.answers = next

	if s.logger != nil {
		if q, qerr := s.engine.Question(s.position); qerr == nil {
			s.logger.LogAnswer(s.id, q, optionIndex)
		}
	}

	if s.position+1 >= s.engine.Len() {
		s.done = true
		return s.position, true, nil
	}

	s.position++
	return s.position, false, nil
}

// Result scores the completed answer set. Before completion it fails with
// scoring.ErrIncompleteAnswers.
func (s *Session) Result() (*models.Result, error) {
	return s.engine.Score(s.answers)
}
