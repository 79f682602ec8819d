package models

import (
	"errors"
	"fmt"
)

// LikertFive is the five-point agreement scale used by every question in
// the built-in bank.
var LikertFive = []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}

// Question is a single questionnaire item
type Question struct {
	ID      int              // Unique question identifier
	Text    string           // Prompt shown to the respondent
	Weights map[Axis]float64 // Polarity coefficient per contributing axis
	Scale   []string         // Option labels in selection order
}

// Validate checks if the question has all required fields
func (q *Question) Validate() error {
	if q.ID <= 0 {
		return errors.New("question id must be positive")
	}
	if q.Text == "" {
		return errors.New("question text is required")
	}
	if len(q.Weights) == 0 {
		return errors.New("question must contribute to at least one axis")
	}
	for axis, weight := range q.Weights {
		if !axis.Valid() {
			return fmt.Errorf("question references invalid axis %d", int(axis))
		}
		if weight == 0 {
			return fmt.Errorf("question has zero weight for axis %s", axis)
		}
	}
	if len(q.Scale) < 2 {
		return fmt.Errorf("question scale needs at least 2 options, got %d", len(q.Scale))
	}
	return nil
}

// Center returns the midpoint of the scale, (len-1)/2.
// For a five-point scale this is 2; for an even-length scale it is fractional.
func (q *Question) Center() float64 {
	return float64(len(q.Scale)-1) / 2
}

// ValidOption reports whether option is an index into the question's scale
func (q *Question) ValidOption(option int) bool {
	return option >= 0 && option < len(q.Scale)
}

// Axes returns the axes the question contributes to, in canonical order
func (q *Question) Axes() []Axis {
	var axes []Axis
	for _, axis := range AllAxes() {
		if _, ok := q.Weights[axis]; ok {
			axes = append(axes, axis)
		}
	}
	return axes
}

// Answers maps a question id to the selected 0-based option index
type Answers map[int]int

// Clone returns an independent copy of the answers
func (a Answers) Clone() Answers {
	out := make(Answers, len(a)+1)
	for id, option := range a {
		out[id] = option
	}
	return out
}
