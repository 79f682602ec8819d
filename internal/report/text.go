package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/civicmap/internal/models"
)

func tierColor(t models.Tier) *color.Color {
	var c *color.Color
	switch t {
	case models.TierLow:
		c = color.New(color.FgRed)
	case models.TierHigh:
		c = color.New(color.FgGreen)
	default:
		c = color.New(color.FgYellow)
	}
	c.EnableColor()
	return c
}

// divergingBar draws score on a bar centred at zero. Each side is width
// cells wide and covers [0, ChartFullMark]; larger magnitudes are clamped.
func divergingBar(score float64, width int) string {
	magnitude := math.Min(math.Abs(score), models.ChartFullMark)
	filled := int(math.Round(magnitude / models.ChartFullMark * float64(width)))

	left := strings.Repeat(" ", width)
	right := strings.Repeat(" ", width)
	if score < 0 {
		left = strings.Repeat(" ", width-filled) + strings.Repeat("=", filled)
	} else if score > 0 {
		right = strings.Repeat("=", filled) + strings.Repeat(" ", width-filled)
	}
	return left + "|" + right
}

func renderText(w io.Writer, result *models.Result, opts Options) error {
	var sb strings.Builder

	labelWidth := 0
	for _, axis := range models.AllAxes() {
		if n := len(axis.Label()); n > labelWidth {
			labelWidth = n
		}
	}

	sb.WriteString("Axis scores\n")
	for _, axis := range models.AllAxes() {
		score := result.Scores[axis]
		tier := result.Tiers[axis]

		bar := divergingBar(score, opts.Width)
		tierName := tier.String()
		if opts.Color {
			c := tierColor(tier)
			bar = c.Sprint(bar)
			tierName = c.Sprint(tierName)
		}
		fmt.Fprintf(&sb, "  %-*s %s %6s  %s\n", labelWidth, axis.Label(), bar, formatScore(score), tierName)
	}
	sb.WriteString("\n")

	if matched, ok := result.Matched(); ok {
		name := matched.Name
		if opts.Color {
			c := color.New(color.FgCyan, color.Bold)
			c.EnableColor()
			name = c.Sprint(name)
		}
		fmt.Fprintf(&sb, "Archetype: %s\n", name)
		if matched.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", matched.Description)
		}
		if len(matched.DominantAxes) > 0 {
			labels := make([]string, len(matched.DominantAxes))
			for i, axis := range matched.DominantAxes {
				labels[i] = axis.Label()
			}
			fmt.Fprintf(&sb, "  Dominant axes: %s\n", strings.Join(labels, ", "))
		}
	} else {
		sb.WriteString("No archetype matched\n")
	}

	if opts.ShowCandidates && len(result.Candidates) > 0 {
		sb.WriteString("\nSatisfied archetypes:\n")
		for i, name := range result.Candidates {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, name)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
