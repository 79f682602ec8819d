package scoring

import (
	"github.com/harrison/civicmap/internal/models"
)

// Tier thresholds. Both boundaries are inclusive: -4 is low, 4 is high.
// They do not scale with the number of questions feeding an axis.
const (
	LowThreshold  = -4.0
	HighThreshold = 4.0
)

// ClassifyTier maps a single axis score to its tier
func ClassifyTier(score float64) models.Tier {
	switch {
	case score <= LowThreshold:
		return models.TierLow
	case score >= HighThreshold:
		return models.TierHigh
	default:
		return models.TierMid
	}
}

// Classify maps every axis of the vector to a tier.
// Axes absent from scores are treated as 0 and classify as mid.
func Classify(scores models.ScoreVector) models.TierMap {
	tiers := make(models.TierMap, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		tiers[axis] = ClassifyTier(scores[axis])
	}
	return tiers
}
