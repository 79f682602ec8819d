package display

import (
	"fmt"
	"io"
	"path/filepath"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
type ProgressIndicator struct {
	writer   io.Writer
	total    int
	current  int
	useColor bool
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int, useColor bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer:   w,
		total:    total,
		useColor: useColor,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Loading answer sheets:\n")
}

// Step displays progress for current item: [N/Total] filename (cyan)
func (p *ProgressIndicator) Step(filename string) {
	p.current++
	line := fmt.Sprintf("  [%d/%d] %s", p.current, p.total, filepath.Base(filename))
	if p.useColor {
		line = "\x1b[36m" + line + "\x1b[0m"
	}
	fmt.Fprintln(p.writer, line)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	mark := "✓"
	if p.useColor {
		mark = "\x1b[32m✓\x1b[0m"
	}
	fmt.Fprintf(p.writer, "%s Loaded %d answer sheets\n", mark, p.total)
}

// DisplaySingleFile shows simple loading message for single file
func DisplaySingleFile(w io.Writer, filename string) {
	fmt.Fprintf(w, "Loading answers from %s...\n", filename)
}
