package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Numbered details (optional)
	Suggestion string   // Action to take (optional)
	NoColor    bool     // Suppress ANSI codes
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	if !w.NoColor {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		if len(w.Items) == 1 {
			b.WriteString("    Detail:\n")
		} else {
			b.WriteString("    Details:\n")
		}
		for i, item := range w.Items {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !w.NoColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnNoMatch creates the warning shown when no archetype matched
func WarnNoMatch() Warning {
	return Warning{
		Title:      "No archetype matched",
		Message:    "Your axis tiers do not satisfy every condition of any archetype.",
		Suggestion: "The axis scores above still describe your position.",
	}
}

// WarnInvalidTables creates a warning listing table validation problems
func WarnInvalidTables(problems []string) Warning {
	return Warning{
		Title: "Question bank or archetype table is invalid",
		Items: problems,
	}
}
