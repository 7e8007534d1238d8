package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidChoice is returned when menu input is outside the offered range.
var ErrInvalidChoice = errors.New("invalid choice")

type Prompter interface {
	YesNo(msg string, defaultYes bool) (bool, error)
	// Menu prints numbered options and returns the chosen 1-based index.
	Menu(label string, options []string) (int, error)
}

type cliPrompter struct {
	in             *bufio.Reader
	out            io.Writer
	nonInteractive bool
}

// NewCLIPrompter reads choices from stdin. In non-interactive mode every
// prompt takes its default.
func NewCLIPrompter(nonInteractive bool) Prompter {
	return &cliPrompter{
		in:             bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		nonInteractive: nonInteractive,
	}
}

// NewPrompter is the injectable variant used by tests.
func NewPrompter(in io.Reader, out io.Writer, nonInteractive bool) Prompter {
	return &cliPrompter{
		in:             bufio.NewReader(in),
		out:            out,
		nonInteractive: nonInteractive,
	}
}

func (p *cliPrompter) YesNo(msg string, defaultYes bool) (bool, error) {
	if p.nonInteractive {
		return defaultYes, nil
	}

	fmt.Fprintf(p.out, "%s [y/n]: ", msg)
	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y"), nil
}

func (p *cliPrompter) Menu(label string, options []string) (int, error) {
	if p.nonInteractive {
		return 1, nil
	}

	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(p.out, "Choice [1-%d]: ", len(options))

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return 0, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(options) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, strings.TrimSpace(input))
	}
	return choice, nil
}
