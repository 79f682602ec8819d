package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/scoring"
)

type answerCounter struct {
	sessionIDs []string
	options    []int
}

func (c *answerCounter) LogAnswer(sessionID string, question models.Question, option int) {
	c.sessionIDs = append(c.sessionIDs, sessionID)
	c.options = append(c.options, option)
}

func (c *answerCounter) LogScores(scores models.ScoreVector, tiers models.TierMap) {}

func (c *answerCounter) LogMatch(result *models.Result) {}

func newTestSession(t *testing.T, logger scoring.Logger) *Session {
	t.Helper()
	return New(scoring.NewEngine(bank.Default(), nil), logger)
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, nil)

	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err, "session id should be a uuid")
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, 40, s.Total())
	assert.Equal(t, 0, s.Answered())
	assert.False(t, s.Done())

	q, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)

	other := newTestSession(t, nil)
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestSubmitAdvancesAndCompletes(t *testing.T) {
	counter := &answerCounter{}
	s := newTestSession(t, counter)

	for i := 0; i < s.Total()-1; i++ {
		next, done, err := s.Submit(2)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Equal(t, i+1, next)
	}

	last, done, err := s.Submit(2)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, s.Total()-1, last)
	assert.True(t, s.Done())
	assert.Equal(t, 40, s.Answered())

	assert.Len(t, counter.options, 40)
	for _, id := range counter.sessionIDs {
		assert.Equal(t, s.ID(), id)
	}

	_, _, err = s.Submit(2)
	assert.ErrorIs(t, err, ErrSessionComplete)

	result, err := s.Result()
	require.NoError(t, err)
	require.NotNil(t, result.Archetype)
	assert.Equal(t, "Moderate Centrist", result.Archetype.Name)
}

func TestSubmitInvalidOptionLeavesSessionUnchanged(t *testing.T) {
	s := newTestSession(t, nil)

	_, _, err := s.Submit(3)
	require.NoError(t, err)

	pos, done, err := s.Submit(5)
	assert.ErrorIs(t, err, scoring.ErrOptionOutOfRange)
	assert.False(t, done)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 1, s.Position())
	assert.Equal(t, 1, s.Answered())

	_, _, err = s.Submit(-1)
	assert.ErrorIs(t, err, scoring.ErrOptionOutOfRange)
}

func TestResultBeforeCompletion(t *testing.T) {
	s := newTestSession(t, nil)
	_, _, err := s.Submit(4)
	require.NoError(t, err)

	result, err := s.Result()
	assert.Nil(t, result)
	assert.ErrorIs(t, err, scoring.ErrIncompleteAnswers)
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := newTestSession(t, nil)
	_, _, err := s.Submit(1)
	require.NoError(t, err)

	answers := s.Answers()
	answers[1] = 4

	assert.Equal(t, models.Answers{1: 1}, s.Answers())
}
