package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/display"
	"github.com/harrison/civicmap/internal/logger"
	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/parser"
	"github.com/harrison/civicmap/internal/scoring"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [answer-sheet]...",
		Short: "Validate the built-in tables and optional answer sheets",
		Long: `Check the compiled-in question bank and archetype table:
  - Question ids are unique and every question weights at least one axis
  - Every archetype has valid conditions and a unique name
  - Every axis receives weight from some question
  - Every archetype can be the first match and every required tier is reachable

Answer sheets given as arguments are parsed and checked for completeness
without rendering a report.

Exit code: 0 if valid, 1 if errors found (diagnostics only fail with --strict)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			b := bank.Default()
			if err := validateTables(b.Questions(), b.Archetypes(), strict, cmd.OutOrStdout()); err != nil {
				return err
			}
			return validateSheets(args, b, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("strict", false, "Treat diagnostics (shadowed archetypes, unreachable tiers) as errors")

	return cmd
}

// validateTables validates a pair of tables with custom output writer (for testing)
func validateTables(questions []models.Question, archetypes []models.Archetype, strict bool, output io.Writer) error {
	b, err := bank.New(questions, archetypes)
	if err != nil {
		fmt.Fprintf(output, "✗ Validation failed\n")
		var verr *bank.ValidationError
		if errors.As(err, &verr) {
			display.WarnInvalidTables(verr.Problems).Display(output)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(output, "✓ Parsed %d questions successfully\n", len(questions))
	fmt.Fprintf(output, "✓ Parsed %d archetypes successfully\n", len(archetypes))

	findings := scoring.Diagnose(b)
	if len(findings) == 0 {
		fmt.Fprintf(output, "✓ Every archetype is reachable\n")
		fmt.Fprintf(output, "\nTables are valid.\n")
		return nil
	}

	items := make([]string, len(findings))
	for i, f := range findings {
		items[i] = f.String()
	}
	display.Warning{
		Title:      fmt.Sprintf("%d table diagnostic(s)", len(findings)),
		Items:      items,
		Suggestion: "Reorder or adjust the archetype table so every entry can win.",
	}.Display(output)

	if strict {
		return fmt.Errorf("validation failed: %d diagnostic(s) in strict mode", len(findings))
	}
	fmt.Fprintf(output, "\nTables are valid.\n")
	return nil
}

// validateSheets parses each sheet and reports missing answers
func validateSheets(paths []string, b *bank.Bank, output io.Writer) error {
	engine := scoring.NewEngine(b, logger.NewNoOpLogger())
	failed := 0

	for _, path := range paths {
		answers, err := parser.ParseFile(path, b)
		if err == nil {
			_, err = engine.Score(answers)
		}
		if err != nil {
			failed++
			fmt.Fprintf(output, "✗ %s\n", path)
			fmt.Fprintf(output, "  Error: %v\n", err)
			continue
		}
		fmt.Fprintf(output, "✓ %s: %d answers, complete\n", path, len(answers))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d answer sheet(s) invalid", failed, len(paths))
	}
	return nil
}
