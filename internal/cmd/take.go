package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/logger"
	"github.com/harrison/civicmap/internal/report"
	"github.com/harrison/civicmap/internal/scoring"
	"github.com/harrison/civicmap/internal/session"
)

// errQuit signals that the respondent left before the last question
var errQuit = errors.New("questionnaire abandoned")

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultMenuReader wraps bufio.Reader
type DefaultMenuReader struct {
	reader *bufio.Reader
}

func (d *DefaultMenuReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// NewTakeCommand creates the interactive questionnaire command
func NewTakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer the questionnaire interactively",
		Long: `Present every statement in order and record one answer per statement.

Enter the number of an option to answer, or 'q' to quit without scoring.
Invalid input re-prompts the same statement. After the last answer, the
result is rendered in the configured format.

Examples:
  civicmap take
  civicmap take --format markdown --show-candidates
  civicmap take --log-dir ./logs --log-level debug`,
		Args: cobra.NoArgs,
		RunE: takeCommand,
	}

	return cmd
}

func takeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := buildLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	reader := &DefaultMenuReader{reader: bufio.NewReader(cmd.InOrStdin())}
	err = runQuestionnaire(cfg, reader, cmd.OutOrStdout(), cmd.ErrOrStderr(), log)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(cmd.OutOrStdout(), "Quit. No answers were scored.")
		return nil
	}
	return err
}

// runQuestionnaire drives one session from reader to a rendered report on out
func runQuestionnaire(cfg *config.Config, reader MenuReader, out, errOut io.Writer, log logger.SessionLogger) error {
	engine := scoring.NewEngine(bank.Default(), log)
	sess := session.New(engine, log)
	log.LogInfo(fmt.Sprintf("session %s started (%d questions)", sess.ID(), sess.Total()))

	colored := useColor(cfg.Color, out)
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	for _, c := range []*color.Color{bold, cyan, red} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	progress := logger.NewProgressBar(sess.Total(), 30, colored)
	progress.SetPrefix("Progress: ")

	for !sess.Done() {
		q, err := sess.Current()
		if err != nil {
			return err
		}

		bold.Fprintf(out, "\nQuestion %d of %d\n", sess.Position()+1, sess.Total())
		fmt.Fprintf(out, "%s\n\n", q.Text)
		for i, label := range q.Scale {
			fmt.Fprintf(out, "  %d) %s\n", i+1, label)
		}

		option, err := readOption(reader, out, cyan, red, len(q.Scale))
		if err != nil {
			return err
		}
		log.LogTrace(fmt.Sprintf("question %d: selected %d of %d", q.ID, option+1, len(q.Scale)))

		if _, _, err := sess.Submit(option); err != nil {
			return err
		}
		progress.Update(sess.Answered())
		fmt.Fprintln(out, progress.Render())
	}

	result, err := sess.Result()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := report.Render(out, result, reportOptions(cfg, out)); err != nil {
		return err
	}
	warnIfUnmatched(cfg, result, errOut)
	return nil
}

// readOption prompts until a valid 1-based choice is entered and returns it
// as a 0-based option index.
func readOption(reader MenuReader, out io.Writer, prompt, problem *color.Color, options int) (int, error) {
	for {
		prompt.Fprintf(out, "\nSelect 1-%d or 'q' to quit: ", options)

		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if err != nil && input == "" {
			if err == io.EOF {
				return 0, fmt.Errorf("input ended before the questionnaire was complete")
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		if strings.EqualFold(input, "q") || strings.EqualFold(input, "quit") {
			return 0, errQuit
		}

		choice, convErr := strconv.Atoi(input)
		if convErr != nil || choice < 1 || choice > options {
			problem.Fprintf(out, "Please enter a number between 1 and %d.\n", options)
			if err != nil {
				return 0, fmt.Errorf("input ended before the questionnaire was complete")
			}
			continue
		}
		return choice - 1, nil
	}
}
