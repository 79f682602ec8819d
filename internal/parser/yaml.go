package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// YAMLParser reads sheets shaped like:
//
//	answers:
//	  1: 3            # option index
//	  2: strongly agree
//	  3: null         # unanswered
type YAMLParser struct {
	bank *bank.Bank
}

// NewYAMLParser creates a YAML sheet parser bound to b
func NewYAMLParser(b *bank.Bank) *YAMLParser {
	return &YAMLParser{bank: b}
}

func (p *YAMLParser) Parse(r io.Reader) (models.Answers, error) {
	var doc yaml.Node

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return make(models.Answers), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedSheet, err)
	}

	// A sheet holding only comments decodes to an empty document
	if len(doc.Content) == 0 {
		return make(models.Answers), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrMalformedSheet, root.Line)
	}

	rec := newRecorder(p.bank)
	answersNode := findMapValue(root, "answers")
	if answersNode == nil || isNull(answersNode) {
		return rec.answers, nil
	}
	if answersNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: answers must be a mapping of question id to option", ErrMalformedSheet, answersNode.Line)
	}

	for i := 0; i+1 < len(answersNode.Content); i += 2 {
		key := answersNode.Content[i]
		value := answersNode.Content[i+1]

		id, err := strconv.Atoi(key.Value)
		if err != nil || key.Kind != yaml.ScalarNode {
			return nil, &AnswerError{Line: key.Line, Value: key.Value, Err: fmt.Errorf("%w: question id must be an integer", ErrMalformedSheet)}
		}

		q, err := rec.question(key.Line, id)
		if err != nil {
			return nil, err
		}

		if isNull(value) {
			continue
		}

		option, err := resolveValue(q, value)
		if err != nil {
			return nil, err
		}
		if err := rec.record(key.Line, id, option); err != nil {
			return nil, err
		}
	}

	return rec.answers, nil
}

// resolveValue maps an integer node to an option index and a string node
// to the option carrying that label.
func resolveValue(q models.Question, value *yaml.Node) (int, error) {
	if value.Kind != yaml.ScalarNode {
		return 0, &AnswerError{Line: value.Line, QuestionID: q.ID, Err: fmt.Errorf("%w: answer must be an option index or label", ErrMalformedSheet)}
	}

	switch value.Tag {
	case "!!int":
		option, err := strconv.Atoi(value.Value)
		if err != nil || !q.ValidOption(option) {
			return 0, &AnswerError{Line: value.Line, QuestionID: q.ID, Value: value.Value, Err: ErrUnknownOption}
		}
		return option, nil
	case "!!str":
		option, ok := resolveLabel(q, value.Value)
		if !ok {
			return 0, &AnswerError{Line: value.Line, QuestionID: q.ID, Value: value.Value, Err: ErrUnknownOption}
		}
		return option, nil
	default:
		return 0, &AnswerError{Line: value.Line, QuestionID: q.ID, Value: value.Value, Err: ErrUnknownOption}
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func findMapValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}
