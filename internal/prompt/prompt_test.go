package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Prompter{In: strings.NewReader(input), Out: out}, out
}

func TestSelectIndexes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected []int
		wantErr  error
		wantVal  bool
	}{
		{
			name:     "single selection",
			input:    "2\n",
			n:        3,
			expected: []int{1},
		},
		{
			name:     "multiple selections preserve order",
			input:    "1 3\n",
			n:        3,
			expected: []int{0, 2},
		},
		{
			name:     "duplicates collapse",
			input:    "2 2 1\n",
			n:        3,
			expected: []int{1, 0},
		},
		{
			name:     "all selects everything",
			input:    "all\n",
			n:        3,
			expected: []int{0, 1, 2},
		},
		{
			name:    "empty line aborts",
			input:   "\n",
			n:       3,
			wantErr: gherrors.ErrAborted,
		},
		{
			name:    "q aborts",
			input:   "q\n",
			n:       3,
			wantErr: gherrors.ErrAborted,
		},
		{
			name:    "EOF aborts",
			input:   "",
			n:       3,
			wantErr: gherrors.ErrAborted,
		},
		{
			name:    "non-numeric input is a validation error",
			input:   "1 two\n",
			n:       3,
			wantVal: true,
		},
		{
			name:    "zero is out of range",
			input:   "0\n",
			n:       3,
			wantVal: true,
		},
		{
			name:    "beyond list length is out of range",
			input:   "4\n",
			n:       3,
			wantVal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			selection, err := p.SelectIndexes(tt.n)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, selection)
				return
			}
			if tt.wantVal {
				var validationErr *gherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Nil(t, selection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, selection)
		})
	}
}

func TestSelectIndexes_PromptText(t *testing.T) {
	p, out := newTestPrompter("1\n")
	_, err := p.SelectIndexes(2)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Select repositories to delete")
}

func TestConfirmPhrase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"exact phrase confirms", "DELETE\n", false},
		{"surrounding whitespace is trimmed", "  DELETE  \n", false},
		{"lowercase aborts", "delete\n", true},
		{"partial phrase aborts", "DEL\n", true},
		{"empty input aborts", "\n", true},
		{"yes aborts", "yes\n", true},
		{"EOF aborts", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			err := p.ConfirmPhrase(DeletePhrase)

			if tt.wantErr {
				assert.ErrorIs(t, err, gherrors.ErrAborted)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfirmPhrase_PromptText(t *testing.T) {
	p, out := newTestPrompter("DELETE\n")
	require.NoError(t, p.ConfirmPhrase(DeletePhrase))
	assert.Contains(t, out.String(), "Type DELETE to confirm")
}

func TestSelectThenConfirm_SharedReader(t *testing.T) {
	// Two consecutive prompts must not lose buffered input
	p, _ := newTestPrompter("1 3\nDELETE\n")

	selection, err := p.SelectIndexes(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, selection)

	require.NoError(t, p.ConfirmPhrase(DeletePhrase))
}

func TestIsInteractive_CIEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, IsInteractive())
}
