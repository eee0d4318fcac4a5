//file: internal/cli/prompt.go

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes for interactive output.
const (
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorReset  = "\033[0m"
)

// Prompter defines the interface for user interaction, allowing for
// mock implementations in tests.
type Prompter interface {
	Ask(question string) (string, error)
	AskWithDefault(question, defaultVal string) (string, error)
	Confirm(question string) (bool, error)
}

// StdinPrompter is the standard implementation of Prompter.
type StdinPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter that reads from standard input.
func NewPrompter() *StdinPrompter {
	return &StdinPrompter{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewPrompterFrom creates a prompter over arbitrary streams, used by
// tests.
func NewPrompterFrom(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{reader: bufio.NewReader(in), out: out}
}

// Ask poses a question and returns the trimmed answer.
func (p *StdinPrompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s%s%s ", ColorYellow, question, ColorReset)
	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// AskWithDefault poses a question with a default value used when the
// answer is empty.
func (p *StdinPrompter) AskWithDefault(question, defaultVal string) (string, error) {
	input, err := p.Ask(fmt.Sprintf("%s [%s]:", question, defaultVal))
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultVal, nil
	}
	return input, nil
}

// Confirm asks a yes/no question; anything but y/yes is no.
func (p *StdinPrompter) Confirm(question string) (bool, error) {
	input, err := p.Ask(fmt.Sprintf("%s (y/N):", question))
	if err != nil {
		return false, err
	}
	input = strings.ToLower(input)
	return input == "y" || input == "yes", nil
}
