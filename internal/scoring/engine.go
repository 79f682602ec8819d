// Package scoring implements the questionnaire scoring pipeline.
//
// The pipeline runs once per completed answer set:
//
//	answers -> Aggregate -> ScoreVector -> Classify -> TierMap -> Match -> Result
//
// Every step is a pure function of its inputs. Engine binds the steps to a
// question bank and archetype table and exposes the three operations the
// presentation layer uses: Question, SubmitAnswer and Score.
package scoring

import (
	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// Logger receives diagnostic events from the pipeline.
// Implementations must not influence scoring.
type Logger interface {
	LogAnswer(sessionID string, question models.Question, option int)
	LogScores(scores models.ScoreVector, tiers models.TierMap)
	LogMatch(result *models.Result)
}

// Engine scores answer sets against one bank. It holds no per-respondent
// state and is safe for concurrent use.
type Engine struct {
	bank   *bank.Bank
	logger Logger
}

// NewEngine creates an Engine over b.
// The logger parameter is optional and can be nil.
func NewEngine(b *bank.Bank, logger Logger) *Engine {
	if b == nil {
		panic("bank cannot be nil")
	}
	return &Engine{bank: b, logger: logger}
}

// Bank returns the bank the engine scores against
func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

// Len returns the number of questions
func (e *Engine) Len() int {
	return e.bank.Len()
}

// Question returns the question at index, failing with ErrIndexOutOfRange
// when index is outside [0, Len()).
func (e *Engine) Question(index int) (models.Question, error) {
	q, ok := e.bank.Question(index)
	if !ok {
		return models.Question{}, &IndexError{Index: index, Limit: e.bank.Len(), Err: ErrIndexOutOfRange}
	}
	return q, nil
}

// SubmitAnswer returns a copy of answers with the response to the question
// at questionIndex set to optionIndex. The input map is never modified.
func (e *Engine) SubmitAnswer(answers models.Answers, questionIndex, optionIndex int) (models.Answers, error) {
	q, err := e.Question(questionIndex)
	if err != nil {
		return nil, err
	}
	if !q.ValidOption(optionIndex) {
		return nil, &IndexError{QuestionID: q.ID, Index: optionIndex, Limit: len(q.Scale), Err: ErrOptionOutOfRange}
	}

	next := answers.Clone()
	next[q.ID] = optionIndex
	return next, nil
}

// Score runs the full pipeline over a complete answer set.
// Every question id in the bank must be present; otherwise Score fails with
// an *IncompleteError rather than treating missing answers as neutral.
// Entries for ids not in the bank are ignored.
func (e *Engine) Score(answers models.Answers) (*models.Result, error) {
	questions := e.bank.Questions()

	var missing []int
	for _, q := range questions {
		option, ok := answers[q.ID]
		if !ok {
			missing = append(missing, q.ID)
			continue
		}
		if !q.ValidOption(option) {
			return nil, &IndexError{QuestionID: q.ID, Index: option, Limit: len(q.Scale), Err: ErrOptionOutOfRange}
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing, Total: len(questions)}
	}

	scores := Aggregate(questions, answers)
	tiers := Classify(scores)
	result := Assemble(scores, tiers, e.bank.Archetypes())

	if e.logger != nil {
		e.logger.LogScores(scores, tiers)
		e.logger.LogMatch(result)
	}

	return result, nil
}
