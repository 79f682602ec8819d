// Package report renders a scoring result for people and for machines.
//
// Text output draws a diverging bar per axis over the chart domain.
// Markdown and HTML produce a shareable summary, and YAML and JSON emit
// the Report struct.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/models"
)

// DefaultWidth is the half-width of the text chart when Options.Width is unset
const DefaultWidth = 20

// Options controls rendering
type Options struct {
	Format         string // One of the config.Format* values; empty means text
	Width          int    // Half-width of the text chart in cells
	ShowCandidates bool   // List every satisfied archetype
	Color          bool   // Emit ANSI colors (text format only)
}

// Report is the serialisable view of a result
type Report struct {
	Axes       []AxisReport     `json:"axes" yaml:"axes"`
	Archetype  *ArchetypeReport `json:"archetype" yaml:"archetype"`
	Candidates []string         `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// AxisReport is one axis of a Report, in chart form
type AxisReport struct {
	Axis     string  `json:"axis" yaml:"axis"`
	Subject  string  `json:"subject" yaml:"subject"`
	Score    float64 `json:"score" yaml:"score"`
	FullMark float64 `json:"full_mark" yaml:"full_mark"`
	Tier     string  `json:"tier" yaml:"tier"`
}

// ArchetypeReport describes the matched archetype
type ArchetypeReport struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	DominantAxes []string `json:"dominant_axes" yaml:"dominant_axes"`
}

// FromResult builds a Report. Candidates are included only when
// showCandidates is set.
func FromResult(result *models.Result, showCandidates bool) Report {
	var rep Report
	if result == nil {
		return rep
	}

	for _, axis := range models.AllAxes() {
		rep.Axes = append(rep.Axes, AxisReport{
			Axis:     axis.String(),
			Subject:  axis.Label(),
			Score:    result.Scores[axis],
			FullMark: models.ChartFullMark,
			Tier:     result.Tiers[axis].String(),
		})
	}

	if matched, ok := result.Matched(); ok {
		dominant := make([]string, 0, len(matched.DominantAxes))
		for _, axis := range matched.DominantAxes {
			dominant = append(dominant, axis.String())
		}
		rep.Archetype = &ArchetypeReport{
			Name:         matched.Name,
			Description:  matched.Description,
			DominantAxes: dominant,
		}
	}

	if showCandidates && len(result.Candidates) > 0 {
		rep.Candidates = append([]string(nil), result.Candidates...)
	}
	return rep
}

// Render writes result to w in the configured format
func Render(w io.Writer, result *models.Result, opts Options) error {
	if result == nil {
		return fmt.Errorf("no result to render")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	switch opts.Format {
	case "", config.FormatText:
		return renderText(w, result, opts)
	case config.FormatMarkdown:
		_, err := io.WriteString(w, renderMarkdown(result, opts.ShowCandidates))
		return err
	case config.FormatHTML:
		return renderHTML(w, result, opts.ShowCandidates)
	case config.FormatYAML:
		return renderYAML(w, FromResult(result, opts.ShowCandidates))
	case config.FormatJSON:
		return renderJSON(w, FromResult(result, opts.ShowCandidates))
	default:
		return fmt.Errorf("unsupported report format: %q", opts.Format)
	}
}

func renderYAML(w io.Writer, rep Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}

func renderJSON(w io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// formatScore renders integers without decimals and others exactly
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
