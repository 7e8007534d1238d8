// Package runner wraps execution of external toolchain commands so that
// higher layers can be exercised without spawning real processes.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"pulsedeploy/internal/logger"
)

// Command describes a single external command invocation.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Env   []string // appended to the inherited environment
	Stdin io.Reader
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands. Every command runs at most once;
// there is no retry layer.
type Runner interface {
	// LookPath reports where a tool lives on PATH, or an error if absent.
	LookPath(name string) (string, error)
	// Run executes the command, streaming output to the terminal.
	Run(ctx context.Context, cmd Command) error
	// Output executes the command and captures combined stdout.
	Output(ctx context.Context, cmd Command) (string, error)
}

type execRunner struct {
	log *logger.Logger
}

// New returns a Runner backed by os/exec.
func New(log *logger.Logger) Runner {
	return &execRunner{log: log}
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(ctx context.Context, c Command) error {
	r.log.Debug("exec: %s", c)
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *execRunner) Output(ctx context.Context, c Command) (string, error) {
	r.log.Debug("exec: %s", c)
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdin = c.Stdin
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}
