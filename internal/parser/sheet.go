package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// WriteTemplate writes a blank answer sheet in the given format.
// Every question is present and unanswered.
func WriteTemplate(w io.Writer, format Format, b *bank.Bank) error {
	switch format {
	case FormatYAML:
		return writeYAMLTemplate(w, b)
	case FormatMarkdown:
		return writeMarkdownTemplate(w, b)
	default:
		return fmt.Errorf("unsupported format: %v", format)
	}
}

func scaleLegend(q models.Question) string {
	parts := make([]string, len(q.Scale))
	for i, label := range q.Scale {
		parts[i] = fmt.Sprintf("%d=%s", i, label)
	}
	return strings.Join(parts, ", ")
}

func writeYAMLTemplate(w io.Writer, b *bank.Bank) error {
	answers := &yaml.Node{Kind: yaml.MappingNode}
	for _, q := range b.Questions() {
		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Tag:         "!!int",
			Value:       strconv.Itoa(q.ID),
			HeadComment: fmt.Sprintf("%d. %s\n%s", q.ID, q.Text, scaleLegend(q)),
		}
		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		answers.Content = append(answers.Content, key, value)
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{
				Kind:        yaml.ScalarNode,
				Tag:         "!!str",
				Value:       "answers",
				HeadComment: "civicmap answer sheet\nReplace each null with an option index or its label.",
			},
			answers,
		},
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode answer sheet: %w", err)
	}
	return encoder.Close()
}

func writeMarkdownTemplate(w io.Writer, b *bank.Bank) error {
	var sb strings.Builder
	sb.WriteString("# civicmap answer sheet\n\n")
	sb.WriteString("Check exactly one option per question by changing `[ ]` to `[x]`.\n")

	for _, q := range b.Questions() {
		fmt.Fprintf(&sb, "\n## Question %d: %s\n\n", q.ID, q.Text)
		for _, label := range q.Scale {
			fmt.Fprintf(&sb, "- [ ] %s\n", label)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
