// Package display provides terminal UI utilities for displaying progress, warnings, and status messages.
//
// # Progress Indicators
//
// Use ProgressIndicator when loading several answer sheets:
//
//	progress := display.NewProgressIndicator(os.Stderr, len(files), true)
//	progress.Start()
//	for _, file := range files {
//	    progress.Step(file)
//	    // ... parse file ...
//	}
//	progress.Complete()
//
// For a single sheet:
//
//	display.DisplaySingleFile(os.Stderr, filename)
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "No archetype matched",
//	    Message:    "Your answers do not fit any single profile",
//	    Suggestion: "Run with --show-candidates ...",
//	}
//	warning.Display(os.Stderr)
//
// The WarnNoMatch and WarnInvalidTables factories build the common cases.
//
// # ANSI Colors
//
// The package uses ANSI escape codes unless NoColor is set:
//   - Cyan (\x1b[36m) for progress steps
//   - Green (\x1b[32m) for success messages
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability.
package display
