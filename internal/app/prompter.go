// SPDX-License-Identifier: MIT

package app

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Prompter asks the user for input.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Ask shows label and returns the entered line without surrounding
	// whitespace. io.EOF signals the user closed the input.
	Ask(ctx context.Context, label string) (string, error)

	// Confirm asks a yes/no question and reports whether the user said yes.
	Confirm(ctx context.Context, question string) (bool, error)
}

// TerminalPrompter reads answers line by line from an input stream.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter returns a Prompter reading in and echoing labels to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter.
func (p *TerminalPrompter) Ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Confirm implements Prompter. Only "y" and "yes" count as approval.
func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
