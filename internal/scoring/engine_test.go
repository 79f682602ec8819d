package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// recordingLogger captures pipeline events for assertions
type recordingLogger struct {
	answers int
	scores  []models.ScoreVector
	matches []*models.Result
}

func (r *recordingLogger) LogAnswer(sessionID string, question models.Question, option int) {
	r.answers++
}

func (r *recordingLogger) LogScores(scores models.ScoreVector, tiers models.TierMap) {
	r.scores = append(r.scores, scores)
}

func (r *recordingLogger) LogMatch(result *models.Result) {
	r.matches = append(r.matches, result)
}

// fillAnswers answers every question in the bank with option, then applies overrides
func fillAnswers(b *bank.Bank, option int, overrides map[int]int) models.Answers {
	answers := make(models.Answers, b.Len())
	for _, q := range b.Questions() {
		answers[q.ID] = option
	}
	for id, opt := range overrides {
		answers[id] = opt
	}
	return answers
}

func TestEngineQuestion(t *testing.T) {
	engine := NewEngine(bank.Default(), nil)

	q, err := engine.Question(0)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)

	q, err = engine.Question(engine.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, 40, q.ID)

	for _, index := range []int{-1, engine.Len(), 1000} {
		_, err := engine.Question(index)
		require.Error(t, err, "index %d", index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))

		var indexErr *IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, index, indexErr.Index)
		assert.Equal(t, engine.Len(), indexErr.Limit)
	}
}

func TestEngineSubmitAnswerIsPure(t *testing.T) {
	engine := NewEngine(bank.Default(), nil)
	original := models.Answers{1: 0}

	next, err := engine.SubmitAnswer(original, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, models.Answers{1: 0}, original, "input must not be mutated")
	assert.Equal(t, models.Answers{1: 0, 2: 4}, next)

	overwritten, err := engine.SubmitAnswer(next, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, overwritten[1])
	assert.Equal(t, 0, next[1])
}

func TestEngineSubmitAnswerNilInput(t *testing.T) {
	engine := NewEngine(bank.Default(), nil)

	next, err := engine.SubmitAnswer(nil, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, models.Answers{1: 2}, next)
}

func TestEngineSubmitAnswerInvalid(t *testing.T) {
	engine := NewEngine(bank.Default(), nil)

	tests := []struct {
		name          string
		questionIndex int
		optionIndex   int
		wantErr       error
	}{
		{name: "negative question", questionIndex: -1, optionIndex: 0, wantErr: ErrIndexOutOfRange},
		{name: "question past end", questionIndex: 40, optionIndex: 0, wantErr: ErrIndexOutOfRange},
		{name: "negative option", questionIndex: 0, optionIndex: -1, wantErr: ErrOptionOutOfRange},
		{name: "option past scale", questionIndex: 0, optionIndex: 5, wantErr: ErrOptionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := engine.SubmitAnswer(models.Answers{}, tt.questionIndex, tt.optionIndex)
			assert.Nil(t, next)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngineScoreIncomplete(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	answers := fillAnswers(b, 2, nil)
	delete(answers, 7)
	delete(answers, 31)

	result, err := engine.Score(answers)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrIncompleteAnswers)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []int{7, 31}, incomplete.Missing)
	assert.Equal(t, 40, incomplete.Total)
	assert.Contains(t, err.Error(), "7, 31")

	_, err = engine.Score(nil)
	require.ErrorAs(t, err, &incomplete)
	assert.Len(t, incomplete.Missing, 40)
}

func TestEngineScoreRejectsStoredOutOfRange(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	_, err := engine.Score(fillAnswers(b, 2, map[int]int{12: 9}))

	var indexErr *IndexError
	require.ErrorAs(t, err, &indexErr)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
	assert.Equal(t, 12, indexErr.QuestionID)
}

func TestEngineScoreIgnoresUnknownIDs(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	result, err := engine.Score(fillAnswers(b, 2, map[int]int{999: 4}))
	require.NoError(t, err)
	assert.Equal(t, "Moderate Centrist", result.Archetype.Name)
}

func TestEngineScoreAllNeutral(t *testing.T) {
	b := bank.Default()
	logger := &recordingLogger{}
	engine := NewEngine(b, logger)

	result, err := engine.Score(fillAnswers(b, 2, nil))
	require.NoError(t, err)

	for _, axis := range models.AllAxes() {
		assert.Zero(t, result.Scores[axis], "score for %s", axis)
		assert.Equal(t, models.TierMid, result.Tiers[axis], "tier for %s", axis)
	}

	matched, ok := result.Matched()
	require.True(t, ok)
	assert.Equal(t, "Moderate Centrist", matched.Name)
	assert.Equal(t, []string{"Moderate Centrist"}, result.Candidates)

	assert.Len(t, logger.scores, 1)
	assert.Len(t, logger.matches, 1)
}

func TestEngineScoreAllStronglyAgree(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	result, err := engine.Score(fillAnswers(b, 4, nil))
	require.NoError(t, err)

	// Net weight per axis times the +2 centered signal.
	want := map[models.Axis]float64{
		models.EconomicPolicy:      6,  // 1 - 1 + 1 + 1 + 1
		models.CulturalValues:      -2, // 1 - 1 - 1 - 1 + 1
		models.AuthorityGovernance: 6,  // 0.5 + 1 + 1 - 1 + 1 + 1 - 1 + 0.5
		models.SocialSafety:        2,
		models.GlobalLocal:         2,
		models.TechEcoBalance:      2,
		models.ChangeTolerance:     2,
		models.MoralFoundations:    -2,
	}
	for axis, score := range want {
		assert.InDelta(t, score, result.Scores[axis], 1e-9, "score for %s", axis)
	}

	assert.Equal(t, models.TierHigh, result.Tiers[models.EconomicPolicy])
	assert.Equal(t, models.TierHigh, result.Tiers[models.AuthorityGovernance])
	assert.Equal(t, models.TierMid, result.Tiers[models.CulturalValues])

	assert.Nil(t, result.Archetype)
	assert.Empty(t, result.Candidates)
}

func TestEngineScoreSubset(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	// Strongly Agree with 8 and 9, Strongly Disagree with 12; everything else neutral.
	result, err := engine.Score(fillAnswers(b, 2, map[int]int{8: 4, 9: 4, 12: 0}))
	require.NoError(t, err)

	// cultural: 2*-1 + 2*-1; authority: 2*0.5 + 2*1 + -2*-1
	assert.InDelta(t, -4.0, result.Scores[models.CulturalValues], 1e-9)
	assert.InDelta(t, 5.0, result.Scores[models.AuthorityGovernance], 1e-9)
	assert.Equal(t, models.TierLow, result.Tiers[models.CulturalValues])
	assert.Equal(t, models.TierHigh, result.Tiers[models.AuthorityGovernance])
}

func TestEngineScoreTieBreakUsesTableOrder(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	// Cultural low, authority high, global low: both the strong-state
	// nationalist and the isolationist rows hold.
	overrides := map[int]int{
		6: 0, 7: 4, 8: 4, 9: 4, 10: 0,
		11: 4, 12: 0, 13: 4, 14: 4, 15: 0,
		21: 0, 22: 4, 23: 0, 24: 4, 25: 0,
	}
	result, err := engine.Score(fillAnswers(b, 2, overrides))
	require.NoError(t, err)

	assert.InDelta(t, -10.0, result.Scores[models.CulturalValues], 1e-9)
	assert.InDelta(t, 13.0, result.Scores[models.AuthorityGovernance], 1e-9)
	assert.InDelta(t, -10.0, result.Scores[models.GlobalLocal], 1e-9)

	require.NotNil(t, result.Archetype)
	assert.Equal(t, "Traditional Strong-State Nationalist", result.Archetype.Name)
	assert.Equal(t, []string{"Traditional Strong-State Nationalist", "Traditionalist Isolationist"}, result.Candidates)
}

func TestEngineScoreOverlappingArchetypes(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)

	overrides := map[int]int{
		6: 4, 7: 0, 8: 0, 9: 0, 10: 4, // cultural +10, authority -3
		26: 4, 27: 0, 28: 4, // tech +6
		21: 0, 22: 4, // global -4
		36: 4, 37: 0, // moral +4
	}
	result, err := engine.Score(fillAnswers(b, 2, overrides))
	require.NoError(t, err)

	require.NotNil(t, result.Archetype)
	assert.Equal(t, "Techno-Progressive Localist", result.Archetype.Name)
	assert.Equal(t, []string{
		"Techno-Progressive Localist",
		"Moderate Centrist",
		"Cultural Preservationist",
	}, result.Candidates)
}

func TestEngineScoreDeterministic(t *testing.T) {
	b := bank.Default()
	engine := NewEngine(b, nil)
	answers := fillAnswers(b, 1, map[int]int{3: 4, 17: 0, 29: 3, 40: 4})

	first, err := engine.Score(answers)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := engine.Score(answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngineScoreCustomBank(t *testing.T) {
	questions := []models.Question{
		{ID: 10, Text: "four point", Scale: []string{"a", "b", "c", "d"}, Weights: map[models.Axis]float64{
			models.ChangeTolerance: 2,
		}},
		{ID: 20, Text: "three point", Scale: []string{"no", "maybe", "yes"}, Weights: map[models.Axis]float64{
			models.ChangeTolerance: 1,
			models.GlobalLocal:     -1,
		}},
	}
	archetypes := []models.Archetype{
		{Name: "Restless", Conditions: map[models.Axis]models.Tier{models.ChangeTolerance: models.TierHigh}},
	}
	b, err := bank.New(questions, archetypes)
	require.NoError(t, err)
	engine := NewEngine(b, nil)

	result, err := engine.Score(models.Answers{10: 3, 20: 2})
	require.NoError(t, err)

	// 1.5*2 + 1*1
	assert.InDelta(t, 4.0, result.Scores[models.ChangeTolerance], 1e-9)
	assert.InDelta(t, -1.0, result.Scores[models.GlobalLocal], 1e-9)
	require.NotNil(t, result.Archetype)
	assert.Equal(t, "Restless", result.Archetype.Name)
}

func TestNewEngineNilBank(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil, nil) })
}
