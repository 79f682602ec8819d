package scoring

import (
	"github.com/harrison/civicmap/internal/models"
)

// CenteredSignal converts a selected option into a signed magnitude
// relative to the scale midpoint. On a five-point scale the options map to
// -2, -1, 0, +1, +2.
func CenteredSignal(q models.Question, option int) float64 {
	return float64(option) - q.Center()
}

// Aggregate folds answers into a score vector in one pass over questions.
// For every question, each declared (axis, weight) pair adds
// CenteredSignal × weight to that axis. Every axis starts at 0.
//
// Aggregate does not check completeness; a question without an answer is
// skipped. Engine.Score performs the completeness check before calling it.
func Aggregate(questions []models.Question, answers models.Answers) models.ScoreVector {
	scores := models.NewScoreVector()

	for _, q := range questions {
		option, ok := answers[q.ID]
		if !ok {
			continue
		}
		signal := CenteredSignal(q, option)
		for axis, weight := range q.Weights {
			scores[axis] += signal * weight
		}
	}

	return scores
}
