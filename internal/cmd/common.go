package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/display"
	"github.com/harrison/civicmap/internal/logger"
	"github.com/harrison/civicmap/internal/models"
	"github.com/harrison/civicmap/internal/report"
)

// loadConfig reads the config file, applies flag overrides and validates
// the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		cfg, err = config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Build flag pointers for merge (only explicitly set values)
	var logLevelPtr, logDirPtr, formatPtr, colorPtr *string
	var showCandidatesPtr *bool

	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &v
	}
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		formatPtr = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}
	if cmd.Flags().Changed("show-candidates") {
		v, _ := cmd.Flags().GetBool("show-candidates")
		showCandidatesPtr = &v
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, formatPtr, colorPtr, showCandidatesPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// useColor resolves the color mode for a particular writer.
// In auto mode only terminals get color, and NO_COLOR disables it.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// buildLogger creates the console logger on errOut plus a file logger when
// log_dir is configured. The returned close function must be called.
func buildLogger(cfg *config.Config, errOut io.Writer) (*logger.MultiLogger, func(), error) {
	consoleLog := logger.NewConsoleLoggerWithColor(errOut, cfg.LogLevel, useColor(cfg.Color, errOut))
	multiLog := logger.NewMultiLogger(consoleLog)

	if cfg.LogDir == "" {
		return multiLog, func() {}, nil
	}

	fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	multiLog.Add(fileLog)
	consoleLog.LogDebug(fmt.Sprintf("session log: %s", fileLog.Path()))

	return multiLog, func() { fileLog.Close() }, nil
}

// reportOptions maps configuration onto report rendering options
func reportOptions(cfg *config.Config, out io.Writer) report.Options {
	return report.Options{
		Format:         cfg.Format,
		Width:          cfg.ChartWidth,
		ShowCandidates: cfg.ShowCandidates,
		Color:          cfg.Format == config.FormatText && useColor(cfg.Color, out),
	}
}

// warnIfUnmatched prints the no-match warning for human-readable formats
func warnIfUnmatched(cfg *config.Config, result *models.Result, errOut io.Writer) {
	if _, ok := result.Matched(); ok {
		return
	}
	if cfg.Format != config.FormatText && cfg.Format != config.FormatMarkdown {
		return
	}
	warning := display.WarnNoMatch()
	warning.NoColor = !useColor(cfg.Color, errOut)
	warning.Display(errOut)
}
