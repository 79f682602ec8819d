// Package bank holds the compiled-in question bank and archetype table.
//
// Both tables are static: they are built once, validated, and never mutated.
// Accessors hand out copies so callers cannot alter the shared tables.
package bank

import (
	"fmt"
	"strings"

	"github.com/harrison/civicmap/internal/models"
)

// Bank is an ordered question bank paired with an ordered archetype table
type Bank struct {
	questions  []models.Question
	archetypes []models.Archetype
	byID       map[int]int // question id -> position in questions
}

// ValidationError collects every problem found in a pair of tables
type ValidationError struct {
	Problems []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid tables: %d problem(s)", len(e.Problems)))
	for _, p := range e.Problems {
		sb.WriteString("\n  - ")
		sb.WriteString(p)
	}
	return sb.String()
}

// New builds a Bank from the given tables after validating them.
// The tables are copied; later changes to the arguments have no effect.
func New(questions []models.Question, archetypes []models.Archetype) (*Bank, error) {
	if err := Validate(questions, archetypes); err != nil {
		return nil, err
	}

	b := &Bank{
		questions:  make([]models.Question, len(questions)),
		archetypes: make([]models.Archetype, len(archetypes)),
		byID:       make(map[int]int, len(questions)),
	}
	for i, q := range questions {
		b.questions[i] = cloneQuestion(q)
		b.byID[q.ID] = i
	}
	for i, a := range archetypes {
		b.archetypes[i] = cloneArchetype(a)
	}
	return b, nil
}

// Default returns a Bank over the built-in tables.
// It panics if the built-in tables are invalid, which is a build defect.
func Default() *Bank {
	b, err := New(questions, archetypes)
	if err != nil {
		panic(fmt.Sprintf("built-in tables: %v", err))
	}
	return b
}

// Validate checks both tables and reports every problem at once.
// Question ids must be unique; every question and archetype must pass its
// own Validate.
func Validate(questions []models.Question, archetypes []models.Archetype) error {
	var problems []string

	if len(questions) == 0 {
		problems = append(problems, "question bank is empty")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("question at index %d (id %d): %v", i, q.ID, err))
		}
		if seen[q.ID] {
			problems = append(problems, fmt.Sprintf("question at index %d: duplicate id %d", i, q.ID))
		}
		seen[q.ID] = true
	}

	names := make(map[string]bool, len(archetypes))
	for i, a := range archetypes {
		if err := a.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("archetype at index %d (%q): %v", i, a.Name, err))
		}
		if a.Name != "" && names[a.Name] {
			problems = append(problems, fmt.Sprintf("archetype at index %d: duplicate name %q", i, a.Name))
		}
		names[a.Name] = true
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Len returns the number of questions in the bank
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns a copy of the question at index, or false when index is
// outside [0, Len()).
func (b *Bank) Question(index int) (models.Question, bool) {
	if index < 0 || index >= len(b.questions) {
		return models.Question{}, false
	}
	return cloneQuestion(b.questions[index]), true
}

// QuestionByID returns a copy of the question with the given id
func (b *Bank) QuestionByID(id int) (models.Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return cloneQuestion(b.questions[i]), true
}

// Questions returns a copy of every question in bank order
func (b *Bank) Questions() []models.Question {
	out := make([]models.Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Archetypes returns a copy of the archetype table in table order
func (b *Bank) Archetypes() []models.Archetype {
	out := make([]models.Archetype, len(b.archetypes))
	for i, a := range b.archetypes {
		out[i] = cloneArchetype(a)
	}
	return out
}

func cloneQuestion(q models.Question) models.Question {
	weights := make(map[models.Axis]float64, len(q.Weights))
	for axis, w := range q.Weights {
		weights[axis] = w
	}
	q.Weights = weights
	q.Scale = append([]string(nil), q.Scale...)
	return q
}

func cloneArchetype(a models.Archetype) models.Archetype {
	conditions := make(map[models.Axis]models.Tier, len(a.Conditions))
	for axis, tier := range a.Conditions {
		conditions[axis] = tier
	}
	a.Conditions = conditions
	a.DominantAxes = append([]models.Axis(nil), a.DominantAxes...)
	return a
}
