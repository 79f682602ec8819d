package logger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/civicmap/internal/models"
)

// tierScheme defines consistent colors for tiers.
// Red: low
// Yellow: mid
// Green: high
// Cyan: axis labels
type tierScheme struct {
	low   *color.Color
	mid   *color.Color
	high  *color.Color
	label *color.Color
}

// newTierScheme creates the standard color scheme for score lines.
// Colors are forced on; callers only build a scheme when colour is wanted.
func newTierScheme() *tierScheme {
	s := &tierScheme{
		low:   color.New(color.FgRed),
		mid:   color.New(color.FgYellow),
		high:  color.New(color.FgGreen),
		label: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{s.low, s.mid, s.high, s.label} {
		c.EnableColor()
	}
	return s
}

func (s *tierScheme) tier(t models.Tier) string {
	switch t {
	case models.TierLow:
		return s.low.Sprint(t.String())
	case models.TierHigh:
		return s.high.Sprint(t.String())
	default:
		return s.mid.Sprint(t.String())
	}
}

// formatScore renders a score compactly: integers without decimals, others
// with the shortest exact representation (e.g. 6, -3.5, 0.5).
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatScores renders every axis in canonical order.
// Format: "economic_policy=6 (high), cultural_values=-2 (mid), ..."
// A nil scheme produces plain text.
func formatScores(scores models.ScoreVector, tiers models.TierMap, scheme *tierScheme) string {
	parts := make([]string, 0, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		name := axis.String()
		tier := tiers[axis].String()
		if scheme != nil {
			name = scheme.label.Sprint(name)
			tier = scheme.tier(tiers[axis])
		}
		parts = append(parts, fmt.Sprintf("%s=%s (%s)", name, formatScore(scores[axis]), tier))
	}
	return strings.Join(parts, ", ")
}
