package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/filelock"
	"github.com/harrison/civicmap/internal/parser"
)

// NewTemplateCommand creates the command that emits a blank answer sheet
func NewTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank answer sheet",
		Long: `Write a blank answer sheet listing every question.

The sheet format follows --sheet, else the extension of --output, else
YAML. Fill it in and pass it to 'civicmap score'.

Examples:
  civicmap template > answers.yaml
  civicmap template -o answers.md
  civicmap template --sheet markdown`,
		Args: cobra.NoArgs,
		RunE: templateCommand,
	}

	cmd.Flags().StringP("output", "o", "", "Write the sheet to a file instead of stdout")
	cmd.Flags().String("sheet", "", "Sheet format: yaml or markdown")
	cmd.Flags().Bool("force", false, "Overwrite the output file if it exists")

	return cmd
}

func templateCommand(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	sheetFlag, _ := cmd.Flags().GetString("sheet")
	force, _ := cmd.Flags().GetBool("force")

	format, err := sheetFormat(sheetFlag, outputPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := parser.WriteTemplate(&buf, format, bank.Default()); err != nil {
		return err
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), outputLockTimeout)
	defer cancel()
	if err := filelock.WriteOutput(ctx, outputPath, buf.Bytes(), force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Answer sheet written to %s (%s)\n", outputPath, format)
	return nil
}

// sheetFormat picks the template format from the flag, then the output extension
func sheetFormat(flag, outputPath string) (parser.Format, error) {
	switch flag {
	case "yaml", "yml":
		return parser.FormatYAML, nil
	case "markdown", "md":
		return parser.FormatMarkdown, nil
	case "":
	default:
		return parser.FormatUnknown, fmt.Errorf("invalid sheet format %q, must be yaml or markdown", flag)
	}

	if outputPath != "" {
		if format := parser.DetectFormat(outputPath); format != parser.FormatUnknown {
			return format, nil
		}
	}
	return parser.FormatYAML, nil
}
