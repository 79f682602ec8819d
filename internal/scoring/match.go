package scoring

import (
	"github.com/harrison/civicmap/internal/models"
)

// Match returns the first archetype, in table order, whose conditions are
// all satisfied by tiers. It returns nil when nothing matches; that is a
// valid outcome, not an error.
//
// Table order is the tie-break. Conditions of different archetypes may
// hold at the same time.
func Match(archetypes []models.Archetype, tiers models.TierMap) *models.Archetype {
	for i := range archetypes {
		if archetypes[i].Satisfied(tiers) {
			matched := archetypes[i]
			return &matched
		}
	}
	return nil
}

// Candidates returns the names of every satisfied archetype in table order.
// The first entry, if any, is the one Match returns.
func Candidates(archetypes []models.Archetype, tiers models.TierMap) []string {
	var names []string
	for i := range archetypes {
		if archetypes[i].Satisfied(tiers) {
			names = append(names, archetypes[i].Name)
		}
	}
	return names
}

// Assemble packages scores and tiers into a Result, running the matcher
// against archetypes. The chart projection follows canonical axis order.
func Assemble(scores models.ScoreVector, tiers models.TierMap, archetypes []models.Archetype) *models.Result {
	chart := make([]models.ChartPoint, 0, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		chart = append(chart, models.ChartPoint{
			Axis:     axis,
			Subject:  axis.Label(),
			Score:    scores[axis],
			FullMark: models.ChartFullMark,
		})
	}

	return &models.Result{
		Scores:     scores,
		Tiers:      tiers,
		Chart:      chart,
		Archetype:  Match(archetypes, tiers),
		Candidates: Candidates(archetypes, tiers),
	}
}
