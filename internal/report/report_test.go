package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/scoring"
)

// scoreAll answers every question with option and scores the set
func scoreAll(t *testing.T, option int) *models.Result {
	t.Helper()
	b := bank.Default()
	answers := make(models.Answers, b.Len())
	for _, q := range b.Questions() {
		answers[q.ID] = option
	}
	result, err := scoring.NewEngine(b, nil).Score(answers)
	require.NoError(t, err)
	return result
}

func render(t *testing.T, result *models.Result, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, result, opts))
	return buf.String()
}

func TestDivergingBar(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "    |    "},
		{10, "    |===="},
		{-5, "  ==|    "},
		{2.5, "    |=   "},
		{-13, "====|    "},
		{13, "    |===="},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, divergingBar(tt.score, 4))
		})
	}
}

func TestRenderTextMatched(t *testing.T) {
	out := render(t, scoreAll(t, 2), Options{Format: config.FormatText})

	assert.Contains(t, out, "Axis scores")
	assert.Contains(t, out, fmt.Sprintf("economic policy      %s %6s  mid", divergingBar(0, DefaultWidth), "0"))
	assert.Contains(t, out, "Archetype: Moderate Centrist")
	assert.Contains(t, out, "Dominant axes: economic policy, social safety, authority governance")
	assert.NotContains(t, out, "Satisfied archetypes")
	assert.NotContains(t, out, "\x1b[", "no color unless requested")

	assert.Less(t, strings.Index(out, "economic policy"), strings.Index(out, "moral foundations"))
}

func TestRenderTextNoMatch(t *testing.T) {
	out := render(t, scoreAll(t, 4), Options{Width: 10, ShowCandidates: true})

	assert.Contains(t, out, "No archetype matched")
	assert.NotContains(t, out, "Archetype:")
	assert.NotContains(t, out, "Satisfied archetypes", "nothing satisfied, nothing listed")
	assert.Contains(t, out, divergingBar(6, 10)+"      6  high")
}

func TestRenderTextCandidatesAndColor(t *testing.T) {
	out := render(t, scoreAll(t, 2), Options{ShowCandidates: true, Color: true})

	assert.Contains(t, out, "Satisfied archetypes:\n  1. Moderate Centrist\n")
	assert.Contains(t, out, "\x1b[")
}

func TestRenderMarkdown(t *testing.T) {
	out := render(t, scoreAll(t, 2), Options{Format: config.FormatMarkdown, ShowCandidates: true})

	assert.True(t, strings.HasPrefix(out, "# civicmap result\n"))
	assert.Contains(t, out, "| economic policy | 0 | mid |")
	assert.Contains(t, out, "## Archetype: Moderate Centrist")
	assert.Contains(t, out, "**Dominant axes:** economic policy, social safety, authority governance")
	assert.Contains(t, out, "## Satisfied archetypes\n\n1. Moderate Centrist\n")

	none := render(t, scoreAll(t, 4), Options{Format: config.FormatMarkdown})
	assert.Contains(t, none, "## No archetype matched")
	assert.Contains(t, none, "| authority governance | 6 | high |")
}

func TestRenderHTML(t *testing.T) {
	out := render(t, scoreAll(t, 2), Options{Format: config.FormatHTML})

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>civicmap result</title>")
	assert.Contains(t, out, "<h1>civicmap result</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>economic policy</td>")
	assert.Contains(t, out, "<h2>Archetype: Moderate Centrist</h2>")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestRenderJSON(t *testing.T) {
	out := render(t, scoreAll(t, 2), Options{Format: config.FormatJSON, ShowCandidates: true})

	var rep Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	require.Len(t, rep.Axes, 8)
	assert.Equal(t, AxisReport{Axis: "economic_policy", Subject: "economic policy", Score: 0, FullMark: 10, Tier: "mid"}, rep.Axes[0])
	assert.Equal(t, "moral_foundations", rep.Axes[7].Axis)
	require.NotNil(t, rep.Archetype)
	assert.Equal(t, "Moderate Centrist", rep.Archetype.Name)
	assert.Equal(t, []string{"economic_policy", "social_safety", "authority_governance"}, rep.Archetype.DominantAxes)
	assert.Equal(t, []string{"Moderate Centrist"}, rep.Candidates)
}

func TestRenderJSONNoMatch(t *testing.T) {
	out := render(t, scoreAll(t, 4), Options{Format: config.FormatJSON})

	assert.Contains(t, out, `"archetype": null`)
	assert.NotContains(t, out, "candidates")
}

func TestRenderYAML(t *testing.T) {
	out := render(t, scoreAll(t, 4), Options{Format: config.FormatYAML})

	var rep Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Axes, 8)
	assert.Equal(t, 6.0, rep.Axes[0].Score)
	assert.Equal(t, "high", rep.Axes[0].Tier)
	assert.Equal(t, -2.0, rep.Axes[1].Score)
	assert.Nil(t, rep.Archetype)
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, nil, Options{}))
	err := Render(&buf, scoreAll(t, 2), Options{Format: "pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestFromResultCandidates(t *testing.T) {
	result := scoreAll(t, 2)

	assert.Nil(t, FromResult(result, false).Candidates)
	assert.Equal(t, []string{"Moderate Centrist"}, FromResult(result, true).Candidates)
	assert.Empty(t, FromResult(nil, true).Axes)
}
