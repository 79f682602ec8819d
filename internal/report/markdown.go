package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/civicmap/internal/models"
)

func renderMarkdown(result *models.Result, showCandidates bool) string {
	var sb strings.Builder

	sb.WriteString("# civicmap result\n\n")
	sb.WriteString("| Axis | Score | Tier |\n")
	sb.WriteString("| --- | ---: | --- |\n")
	for _, axis := range models.AllAxes() {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", axis.Label(), formatScore(result.Scores[axis]), result.Tiers[axis])
	}
	sb.WriteString("\n")

	if matched, ok := result.Matched(); ok {
		fmt.Fprintf(&sb, "## Archetype: %s\n\n", matched.Name)
		if matched.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", matched.Description)
		}
		if len(matched.DominantAxes) > 0 {
			labels := make([]string, len(matched.DominantAxes))
			for i, axis := range matched.DominantAxes {
				labels[i] = axis.Label()
			}
			fmt.Fprintf(&sb, "**Dominant axes:** %s\n\n", strings.Join(labels, ", "))
		}
	} else {
		sb.WriteString("## No archetype matched\n\n")
		sb.WriteString("No archetype had all of its conditions satisfied.\n\n")
	}

	if showCandidates && len(result.Candidates) > 0 {
		sb.WriteString("## Satisfied archetypes\n\n")
		for i, name := range result.Candidates {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

const htmlTitle = "civicmap result"

func renderHTML(w io.Writer, result *models.Result, showCandidates bool) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(renderMarkdown(result, showCandidates)), &body); err != nil {
		return fmt.Errorf("failed to convert report to html: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(htmlTitle))
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
