package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/highlight"
)

type renderOptions struct {
	highlight bool
	rule      string
}

func bindRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "Highlight numbers, strings, booleans and URLs")
	cmd.Flags().StringVar(&opts.rule, "rule", "", "Draw a titled rule before the output")
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [markup...]",
		Short: "Render markup from arguments or stdin",
		Long:  "Render markup from arguments, joined by spaces, or from stdin when no arguments or '-' are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args)
		},
	}
	bindRenderFlags(cmd, opts)

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, args []string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return newCommandError("render", "reading stdin", err, "Pass markup as arguments instead.")
	}

	if opts.rule != "" {
		if err := app.console.Rule(opts.rule); err != nil {
			return err
		}
	}

	t := app.console.Text(input)
	if opts.highlight {
		t = highlight.Repr(app.theme).Highlight(t)
	}
	app.log.Debug("rendering", "runes", t.Len(), "width", app.console.Width())
	return app.console.PrintRenderable(t)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
