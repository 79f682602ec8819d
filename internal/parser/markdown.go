package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

var questionHeading = regexp.MustCompile(`^Question\s+(\d+)\b`)

// MarkdownParser reads sheets where each question is a level 2 heading
// followed by a task list, the chosen option checked:
//
//	## Question 1: Government should ...
//	- [ ] Strongly Disagree
//	- [x] Agree
type MarkdownParser struct {
	bank     *bank.Bank
	markdown goldmark.Markdown
}

// NewMarkdownParser creates a Markdown sheet parser bound to b
func NewMarkdownParser(b *bank.Bank) *MarkdownParser {
	return &MarkdownParser{
		bank:     b,
		markdown: goldmark.New(goldmark.WithExtensions(extension.TaskList)),
	}
}

func (p *MarkdownParser) Parse(r io.Reader) (models.Answers, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))
	rec := newRecorder(p.bank)

	var current *models.Question
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			// Any heading ends the current question section
			current = nil
			if node.Level != 2 {
				continue
			}
			match := questionHeading.FindStringSubmatch(strings.TrimSpace(extractText(node, content)))
			if match == nil {
				continue
			}
			id, _ := strconv.Atoi(match[1])
			q, err := rec.question(lineOf(node, content), id)
			if err != nil {
				return nil, err
			}
			current = &q

		case *ast.List:
			if current == nil {
				continue
			}
			if err := p.collectSelection(rec, current, node, content); err != nil {
				return nil, err
			}
		}
	}

	return rec.answers, nil
}

// collectSelection records every checked item in list as an answer to q.
func (p *MarkdownParser) collectSelection(rec *recorder, q *models.Question, list *ast.List, source []byte) error {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		block := item.FirstChild()
		if block == nil {
			continue
		}
		box, ok := block.FirstChild().(*extast.TaskCheckBox)
		if !ok || !box.IsChecked {
			continue
		}

		line := lineOf(block, source)
		label := strings.TrimSpace(extractText(block, source))
		option, found := resolveLabel(*q, label)
		if !found {
			return &AnswerError{Line: line, QuestionID: q.ID, Value: label, Err: ErrUnknownOption}
		}
		if err := rec.record(line, q.ID, option); err != nil {
			return err
		}
	}
	return nil
}

// extractText concatenates every text descendant of n, so emphasis and
// links inside labels are kept.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// lineOf returns the 1-based source line where block node n starts, or 0.
func lineOf(n ast.Node, source []byte) int {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	return bytes.Count(source[:lines.At(0).Start], []byte("\n")) + 1
}
