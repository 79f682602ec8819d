package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/display"
	"github.com/harrison/civicmap/internal/filelock"
	"github.com/harrison/civicmap/internal/logger"
	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/parser"
	"github.com/harrison/civicmap/internal/report"
	"github.com/harrison/civicmap/internal/scoring"
	"github.com/harrison/civicmap/internal/watch"
)

// outputLockTimeout bounds how long an output file lock is awaited
const outputLockTimeout = 10 * time.Second

// NewScoreCommand creates the command that scores answer sheets
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <answer-sheet>...",
		Short: "Score one or more completed answer sheets",
		Long: `Parse answer sheets (YAML or Markdown, detected by extension), score
them and render a report for each.

Every question must be answered; incomplete sheets are rejected with the
list of missing question ids. Use 'civicmap template' to generate a blank
sheet.

With several sheets, reports are written in order: text reports get a
header per sheet, yaml reports are separate documents and json reports
are a stream of objects.

With --watch, the sheets are re-scored whenever they are saved until the
command is interrupted.

Examples:
  civicmap score answers.yaml
  civicmap score answers.md --format json
  civicmap score alice.yaml bob.yaml --show-candidates
  civicmap score answers.yaml --format html -o result.html
  civicmap score answers.md --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: scoreCommand,
	}

	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Bool("force", false, "Overwrite the output file if it exists")
	cmd.Flags().BoolP("watch", "w", false, "Re-score sheets whenever they change")

	return cmd
}

type scoredSheet struct {
	path   string
	result *models.Result
}

func scoreCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	watchMode, _ := cmd.Flags().GetBool("watch")
	if watchMode && outputPath != "" {
		return fmt.Errorf("--watch cannot be combined with --output")
	}

	log, closeLog, err := buildLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	b := bank.Default()
	engine := scoring.NewEngine(b, log)
	errOut := cmd.ErrOrStderr()

	var progress *display.ProgressIndicator
	if len(args) > 1 {
		progress = display.NewProgressIndicator(errOut, len(args), useColor(cfg.Color, errOut))
		progress.Start()
	} else if cfg.Format == config.FormatText {
		display.DisplaySingleFile(errOut, args[0])
	}

	sheets := make([]scoredSheet, 0, len(args))
	for _, path := range args {
		if progress != nil {
			progress.Step(path)
		}

		answers, err := parser.ParseFile(path, b)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.LogDebug(fmt.Sprintf("%s: %d answers", path, len(answers)))

		result, err := engine.Score(answers)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		sheets = append(sheets, scoredSheet{path: path, result: result})
	}
	if progress != nil {
		progress.Complete()
	}

	var target io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if outputPath != "" {
		target = &buf
	}

	if err := writeReports(target, sheets, cfg); err != nil {
		return err
	}

	for _, sheet := range sheets {
		warnIfUnmatched(cfg, sheet.result, errOut)
	}

	if watchMode {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sw, err := watch.New(args)
		if err != nil {
			return err
		}
		defer sw.Close()

		fmt.Fprintln(errOut, "Watching for changes (Ctrl+C to stop)...")
		return watchSheets(ctx, sw, b, engine, cfg, cmd.OutOrStdout(), log)
	}

	if outputPath == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), outputLockTimeout)
	defer cancel()
	if err := filelock.WriteOutput(ctx, outputPath, buf.Bytes(), force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
	return nil
}

// writeReports renders every sheet to w, separated per format
func writeReports(w io.Writer, sheets []scoredSheet, cfg *config.Config) error {
	opts := reportOptions(cfg, w)
	multi := len(sheets) > 1

	for i, sheet := range sheets {
		if multi {
			switch cfg.Format {
			case config.FormatText:
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "== %s ==\n", sheet.path)
			case config.FormatMarkdown:
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "<!-- %s -->\n", sheet.path)
			case config.FormatYAML:
				if i > 0 {
					fmt.Fprintln(w, "---")
				}
			}
		}
		if err := report.Render(w, sheet.result, opts); err != nil {
			return fmt.Errorf("%s: %w", sheet.path, err)
		}
	}
	return nil
}

// sheetEvents is the part of watch.SheetWatcher that watchSheets consumes
type sheetEvents interface {
	Events() <-chan watch.Event
	Errors() <-chan error
}

// watchSheets re-scores sheets as change events arrive until ctx is done.
// Sheets that fail to parse or score are reported and skipped.
func watchSheets(ctx context.Context, events sheetEvents, b *bank.Bank, engine *scoring.Engine, cfg *config.Config, out io.Writer, log logger.SessionLogger) error {
	opts := reportOptions(cfg, out)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-events.Errors():
			log.LogWarn(fmt.Sprintf("watch error: %v", err))
		case event := <-events.Events():
			if event.Op == watch.SheetRemoved {
				log.LogWarn(fmt.Sprintf("%s removed, waiting for it to reappear", event.Path))
				continue
			}

			answers, err := parser.ParseFile(event.Path, b)
			var result *models.Result
			if err == nil {
				result, err = engine.Score(answers)
			}
			if err != nil {
				log.LogWarn(fmt.Sprintf("%s: %v", event.Path, err))
				continue
			}

			if cfg.Format == config.FormatText {
				fmt.Fprintf(out, "\n== %s (updated %s) ==\n", event.Path, event.Timestamp.Format("15:04:05"))
			}
			if err := report.Render(out, result, opts); err != nil {
				return fmt.Errorf("%s: %w", event.Path, err)
			}
		}
	}
}
