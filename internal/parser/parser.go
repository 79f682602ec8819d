// Package parser reads completed answer sheets from disk.
//
// Two sheet formats are supported: YAML (answers keyed by question id) and
// Markdown (one "## Question N" section per question with a checked task
// list item). Both resolve to models.Answers against a question bank.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// Format represents the format of an answer sheet
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) answer sheet
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) answer sheet
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownQuestion is returned when a sheet answers an id the bank does not have
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrUnknownOption is returned when an answer names no option of its question's scale
	ErrUnknownOption = errors.New("unknown option")
	// ErrDuplicateAnswer is returned when a question is answered more than once
	ErrDuplicateAnswer = errors.New("duplicate answer")
	// ErrMalformedSheet is returned when the sheet structure cannot be read
	ErrMalformedSheet = errors.New("malformed answer sheet")
)

// AnswerError locates a rejected answer within a sheet.
// Line is 0 when the position is unknown.
type AnswerError struct {
	Line       int
	QuestionID int
	Value      string
	Err        error
}

func (e *AnswerError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	if e.QuestionID > 0 {
		fmt.Fprintf(&sb, "question %d: ", e.QuestionID)
	}
	sb.WriteString(e.Err.Error())
	if e.Value != "" {
		fmt.Fprintf(&sb, " %q", e.Value)
	}
	return sb.String()
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// Parser is the interface that all answer sheet parsers must implement
type Parser interface {
	// Parse reads from an io.Reader and returns the recorded answers.
	// Unanswered questions are simply absent from the result.
	Parse(r io.Reader) (models.Answers, error)
}

// DetectFormat automatically detects the sheet format based on file extension
// Supported extensions:
//   - .md, .markdown -> FormatMarkdown
//   - .yaml, .yml -> FormatYAML
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format.
// Answers are resolved against b.
func NewParser(format Format, b *bank.Bank) (Parser, error) {
	if b == nil {
		return nil, fmt.Errorf("parser requires a question bank")
	}
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(b), nil
	case FormatYAML:
		return NewYAMLParser(b), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the sheet format from the extension, opens the file
// and parses it against b.
func ParseFile(path string, b *bank.Bank) (models.Answers, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", path)
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	parser, err := NewParser(format, b)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	answers, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer sheet: %w", err)
	}
	return answers, nil
}

// resolveLabel finds the option whose label matches, ignoring case and
// surrounding whitespace.
func resolveLabel(q models.Question, label string) (int, bool) {
	want := strings.TrimSpace(label)
	for i, option := range q.Scale {
		if strings.EqualFold(option, want) {
			return i, true
		}
	}
	return 0, false
}

// recorder accumulates answers and rejects ids the bank does not know
// and questions answered twice.
type recorder struct {
	bank    *bank.Bank
	answers models.Answers
}

func newRecorder(b *bank.Bank) *recorder {
	return &recorder{bank: b, answers: make(models.Answers)}
}

func (r *recorder) question(line, id int) (models.Question, error) {
	q, ok := r.bank.QuestionByID(id)
	if !ok {
		return models.Question{}, &AnswerError{Line: line, QuestionID: id, Err: ErrUnknownQuestion}
	}
	return q, nil
}

func (r *recorder) record(line, id, option int) error {
	if _, seen := r.answers[id]; seen {
		return &AnswerError{Line: line, QuestionID: id, Err: ErrDuplicateAnswer}
	}
	r.answers[id] = option
	return nil
}
