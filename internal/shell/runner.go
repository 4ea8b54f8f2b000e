package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result represents the outcome of a command execution
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner is the interface for executing local commands.
// Managers depend on this interface so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (*Result, error)
}

// ExitError is returned when a command runs but exits non-zero
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// NotFoundError is returned when the binary itself cannot be located
type NotFoundError struct {
	Binary string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s - is it installed and on your PATH?", e.Binary)
}

// ExecRunner executes commands on the local machine via os/exec
type ExecRunner struct {
	// Echo prints each command line before executing it
	Echo bool
}

// NewRunner creates an ExecRunner
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes a command and captures its output.
// dir may be empty to run in the current working directory.
// A non-zero exit returns the populated Result together with an *ExitError.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (*Result, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, &NotFoundError{Binary: name}
	}

	if r.Echo {
		fmt.Printf("→ %s\n", commandLine(name, args))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{
				Command:  commandLine(name, args),
				ExitCode: result.ExitCode,
				Stderr:   result.Stderr,
			}
		}
		return nil, fmt.Errorf("failed to run %q: %w", commandLine(name, args), err)
	}

	return result, nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
