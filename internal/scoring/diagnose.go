package scoring

import (
	"fmt"
	"math"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// FindingKind classifies a table diagnostic
type FindingKind string

const (
	// FindingShadowed marks an archetype that can never be the first match
	FindingShadowed FindingKind = "shadowed"
	// FindingUnreachable marks a condition whose tier no answer set can produce
	FindingUnreachable FindingKind = "unreachable"
	// FindingUncovered marks an axis no question contributes to
	FindingUncovered FindingKind = "uncovered"
)

// Finding is a structural oddity in otherwise valid tables.
// Findings never affect scoring.
type Finding struct {
	Kind    FindingKind
	Subject string // Archetype name or axis name
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// AxisReach returns, per axis, the largest magnitude a score can reach.
// Each question contributes |weight| times its scale center at either end.
func AxisReach(questions []models.Question) map[models.Axis]float64 {
	reach := make(map[models.Axis]float64, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		reach[axis] = 0
	}
	for _, q := range questions {
		center := q.Center()
		for axis, w := range q.Weights {
			reach[axis] += math.Abs(w) * center
		}
	}
	return reach
}

// Diagnose inspects b for archetypes that cannot win, tiers that cannot be
// reached and axes nothing scores. Findings are ordered: uncovered axes,
// then archetypes in table order.
func Diagnose(b *bank.Bank) []Finding {
	var findings []Finding
	reach := AxisReach(b.Questions())

	for _, axis := range models.AllAxes() {
		if reach[axis] == 0 {
			findings = append(findings, Finding{
				Kind:    FindingUncovered,
				Subject: axis.String(),
				Message: fmt.Sprintf("no question contributes to axis %s", axis),
			})
		}
	}

	archetypes := b.Archetypes()
	for i, a := range archetypes {
		for _, axis := range a.ConditionAxes() {
			tier := a.Conditions[axis]
			if reachable(tier, reach[axis]) {
				continue
			}
			findings = append(findings, Finding{
				Kind:    FindingUnreachable,
				Subject: a.Name,
				Message: fmt.Sprintf("%q requires %s %s but scores on that axis stay within ±%s",
					a.Name, axis, tier, formatFloat(reach[axis])),
			})
		}

		for _, earlier := range archetypes[:i] {
			if subsumes(earlier, a) {
				findings = append(findings, Finding{
					Kind:    FindingShadowed,
					Subject: a.Name,
					Message: fmt.Sprintf("%q never matches: %q precedes it and is satisfied whenever it is",
						a.Name, earlier.Name),
				})
				break
			}
		}
	}

	return findings
}

func reachable(tier models.Tier, reach float64) bool {
	switch tier {
	case models.TierLow:
		return -reach <= LowThreshold
	case models.TierHigh:
		return reach >= HighThreshold
	default:
		return true
	}
}

// subsumes reports whether every condition of a also appears in b
func subsumes(a, b models.Archetype) bool {
	for axis, tier := range a.Conditions {
		if b.Conditions[axis] != tier {
			return false
		}
	}
	return true
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
