package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned for a question index outside the bank
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrOptionOutOfRange is returned for an option index outside a question's scale
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrIncompleteAnswers is returned when scoring an answer set that misses questions
	ErrIncompleteAnswers = errors.New("incomplete answer set")
)

// IndexError reports an index that violates the caller contract.
// Err is ErrIndexOutOfRange or ErrOptionOutOfRange.
type IndexError struct {
	QuestionID int   // Question the option belongs to (0 for question index errors)
	Index      int   // Offending index
	Limit      int   // Valid range is [0, Limit)
	Err        error // Underlying sentinel
}

// Error implements the error interface for IndexError.
func (e *IndexError) Error() string {
	if e.QuestionID != 0 {
		return fmt.Sprintf("question %d: %v: %d not in [0, %d)", e.QuestionID, e.Err, e.Index, e.Limit)
	}
	return fmt.Sprintf("%v: %d not in [0, %d)", e.Err, e.Index, e.Limit)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *IndexError) Unwrap() error {
	return e.Err
}

// IncompleteError lists the question ids missing from an answer set,
// in bank order.
type IncompleteError struct {
	Missing []int
	Total   int
}

// Error implements the error interface for IncompleteError.
func (e *IncompleteError) Error() string {
	ids := make([]string, len(e.Missing))
	for i, id := range e.Missing {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("%v: %d of %d questions unanswered (ids: %s)",
		ErrIncompleteAnswers, len(e.Missing), e.Total, strings.Join(ids, ", "))
}

// Unwrap returns ErrIncompleteAnswers.
func (e *IncompleteError) Unwrap() error {
	return ErrIncompleteAnswers
}
