package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/theme"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// formatError styles err for stderr with the default theme.
func formatError(err error) string {
	th := theme.Default()
	label := theme.ToLipgloss(th.Style(theme.Error)).Bold(true).Render("error:")

	ce, ok := err.(*commandError)
	if !ok {
		return label + " " + err.Error()
	}

	muted := theme.ToLipgloss(th.Style(theme.Muted))
	hint := theme.ToLipgloss(th.Style(theme.Info))
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s failed to %s: %s", label, ce.operation, ce.context),
		muted.Render(fmt.Sprintf("  %v", ce.cause)),
		hint.Render("  "+ce.suggestion),
	)
}
