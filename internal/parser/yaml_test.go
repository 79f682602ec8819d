package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

func TestYAMLParserAnswers(t *testing.T) {
	sheet := `answers:
  1: 0
  2: strongly agree
  3: "  Neutral "
  4: null
  5:
`
	answers, err := NewYAMLParser(bank.Default()).Parse(strings.NewReader(sheet))
	require.NoError(t, err)

	assert.Equal(t, models.Answers{1: 0, 2: 4, 3: 2}, answers)
}

func TestYAMLParserEmptyInput(t *testing.T) {
	p := NewYAMLParser(bank.Default())

	for name, sheet := range map[string]string{
		"empty file":     "",
		"no answers key": "session: test\n",
		"null answers":   "answers:\n",
		"comments only":  "# nothing yet\n",
	} {
		t.Run(name, func(t *testing.T) {
			answers, err := p.Parse(strings.NewReader(sheet))
			require.NoError(t, err)
			assert.NotNil(t, answers)
			assert.Empty(t, answers)
		})
	}
}

func TestYAMLParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr error
		wantMsg string
	}{
		{name: "unknown question", sheet: "answers:\n  41: 1\n", wantErr: ErrUnknownQuestion, wantMsg: "line 2: question 41"},
		{name: "unknown label", sheet: "answers:\n  1: maybe\n", wantErr: ErrUnknownOption, wantMsg: `"maybe"`},
		{name: "index too high", sheet: "answers:\n  1: 5\n", wantErr: ErrUnknownOption},
		{name: "negative index", sheet: "answers:\n  1: -1\n", wantErr: ErrUnknownOption},
		{name: "float value", sheet: "answers:\n  1: 2.5\n", wantErr: ErrUnknownOption},
		{name: "list value", sheet: "answers:\n  1: [1, 2]\n", wantErr: ErrMalformedSheet},
		{name: "non integer id", sheet: "answers:\n  first: 1\n", wantErr: ErrMalformedSheet},
		{name: "duplicate id", sheet: "answers:\n  1: 1\n  1: 2\n", wantErr: ErrDuplicateAnswer},
		{name: "answers is a list", sheet: "answers:\n  - 1\n", wantErr: ErrMalformedSheet},
		{name: "top level list", sheet: "- 1\n", wantErr: ErrMalformedSheet},
		{name: "invalid yaml", sheet: "answers: [unclosed\n", wantErr: ErrMalformedSheet},
	}

	p := NewYAMLParser(bank.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(strings.NewReader(tt.sheet))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
