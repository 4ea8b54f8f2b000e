package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter resolves a template variable to a value
type Prompter interface {
	Resolve(v Variable) (string, error)
}

// StaticPrompter resolves variables from a fixed map (the --set flags),
// falling back to defaults. Missing values with no default are an error.
type StaticPrompter struct {
	Values map[string]string
}

// Resolve returns the preset value or the variable's default
func (p *StaticPrompter) Resolve(v Variable) (string, error) {
	if value, ok := p.Values[v.Name]; ok {
		return value, nil
	}
	if v.Default != "" {
		return v.Default, nil
	}
	return "", fmt.Errorf("no value for variable %q (use --set %s=...)", v.Name, v.Name)
}

// TerminalPrompter asks the user interactively. Values preset via --set
// are used without prompting; secret variables are read without echo.
type TerminalPrompter struct {
	Values map[string]string
	In     io.Reader
	Out    io.Writer

	// reader wraps In exactly once; a fresh bufio.Reader per prompt
	// would discard lines buffered ahead of the one it returns
	reader *bufio.Reader
}

// NewTerminalPrompter creates a prompter on stdin/stdout
func NewTerminalPrompter(presets map[string]string) *TerminalPrompter {
	return &TerminalPrompter{Values: presets, In: os.Stdin, Out: os.Stdout}
}

// Resolve prompts for the variable unless a preset value exists
func (p *TerminalPrompter) Resolve(v Variable) (string, error) {
	if value, ok := p.Values[v.Name]; ok {
		return value, nil
	}

	label := v.Description
	if label == "" {
		label = v.Name
	}

	if v.Secret {
		return p.readSecret(label)
	}

	if v.Default != "" {
		fmt.Fprintf(p.Out, "  %s [%s]: ", label, v.Default)
	} else {
		fmt.Fprintf(p.Out, "  %s: ", label)
	}

	line, err := p.readLine()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		if v.Default != "" {
			return v.Default, nil
		}
		return "", fmt.Errorf("variable %q requires a value", v.Name)
	}

	return value, nil
}

func (p *TerminalPrompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader.ReadString('\n')
}

// readSecret reads without echo when stdin is a terminal
func (p *TerminalPrompter) readSecret(label string) (string, error) {
	fmt.Fprintf(p.Out, "  %s (hidden): ", label)

	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("failed to read secret input: %w", err)
		}
		value := strings.TrimSpace(string(data))
		if value == "" {
			return "", fmt.Errorf("secret value must not be empty")
		}
		return value, nil
	}

	// Piped input: fall back to a plain line read
	line, err := p.readLine()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read secret input: %w", err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("secret value must not be empty")
	}
	return value, nil
}
