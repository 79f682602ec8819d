package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for civicmap
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "civicmap",
		Short: "Political questionnaire scoring and archetype classification",
		Long: `civicmap maps answers to a 40-statement political questionnaire onto
eight ideological axes and names the archetype whose profile fits.

Take the questionnaire interactively, or score an answer sheet written
in YAML or Markdown. Reports can be rendered as text, markdown, html,
yaml or json.

Configuration is loaded from .civicmap/config.yaml (or $CIVICMAP_HOME)
if present. CLI flags override configuration file settings.`,
		Version: Version,
		// main prints the returned error once
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: .civicmap/config.yaml)")
	flags.String("log-level", "", "Console log level: trace, debug, info, warn, error")
	flags.String("log-dir", "", "Directory for per-session log files")
	flags.String("format", "", "Report format: text, markdown, html, yaml, json")
	flags.String("color", "", "Color output: auto, always, never")
	flags.Bool("show-candidates", false, "List every archetype whose conditions are satisfied")

	// Add subcommands
	cmd.AddCommand(NewTakeCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewQuestionsCommand())
	cmd.AddCommand(NewArchetypesCommand())
	cmd.AddCommand(NewTemplateCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
