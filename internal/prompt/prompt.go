// Package prompt provides the interactive selection and confirmation gate
// used before destructive operations
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

// DeletePhrase is the exact literal an operator must type before any
// destructive call is issued
const DeletePhrase = "DELETE"

// Prompter reads operator input line by line. In and Out default to
// stdin/stdout; tests inject their own reader and writer.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// buffered reader over In, created once so consecutive prompts do
	// not lose buffered input
	br *bufio.Reader
}

// New creates a Prompter bound to stdin/stdout
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout}
}

func (p *Prompter) reader() *bufio.Reader {
	if p.br == nil {
		in := p.In
		if in == nil {
			in = os.Stdin
		}
		p.br = bufio.NewReader(in)
	}
	return p.br
}

func (p *Prompter) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader().ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", gherrors.ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SelectIndexes prompts for a whitespace-separated list of 1-based item
// numbers and returns them as 0-based indexes in first-mention order,
// duplicates collapsed. "all" selects every item; an empty line or "q"
// aborts with ErrAborted and no side effects.
func (p *Prompter) SelectIndexes(n int) ([]int, error) {
	fmt.Fprintf(p.out(), "Select repositories to delete (numbers separated by spaces, 'all', or 'q' to quit): ")

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(line) {
	case "", "q", "quit":
		return nil, gherrors.ErrAborted
	case "all":
		selection := make([]int, n)
		for i := range selection {
			selection[i] = i
		}
		return selection, nil
	}

	seen := make(map[int]bool)
	var selection []int
	for _, field := range strings.Fields(line) {
		num, err := strconv.Atoi(field)
		if err != nil {
			return nil, gherrors.NewValidationError("selection",
				fmt.Sprintf("not a number: %q", field))
		}
		if num < 1 || num > n {
			return nil, gherrors.NewValidationError("selection",
				fmt.Sprintf("%d is out of range (1-%d)", num, n))
		}
		idx := num - 1
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selection = append(selection, idx)
	}

	if len(selection) == 0 {
		return nil, gherrors.ErrAborted
	}

	return selection, nil
}

// ConfirmPhrase requires the operator to type the exact literal phrase.
// Any other input aborts with ErrAborted and no side effects.
func (p *Prompter) ConfirmPhrase(phrase string) error {
	fmt.Fprintf(p.out(), "Type %s to confirm: ", phrase)

	line, err := p.readLine()
	if err != nil {
		return err
	}

	if line != phrase {
		return gherrors.ErrAborted
	}
	return nil
}
