package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	width       int
	height      int
	colorSystem string
	direction   string
	justify     string
	overflow    string
	theme       string
	noMarkup    bool
	logLevel    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	renderOpts := &renderOptions{}

	cmd := &cobra.Command{
		Use:           "prism [markup...]",
		Short:         "prism renders markup as styled terminal text",
		Long:          "prism renders markup such as \"[bold red]hello[/]\" as styled terminal text.\nWith no subcommand it behaves like 'prism render'.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, renderOpts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	pf.IntVarP(&flags.width, "width", "w", 0, "Render width in cells (0 detects the terminal)")
	pf.IntVar(&flags.height, "height", 0, "Maximum lines per render (0 is unbounded)")
	pf.StringVar(&flags.colorSystem, "color-system", "", "Color system: auto, none, standard, 256, truecolor or windows")
	pf.StringVar(&flags.direction, "direction", "", "Paragraph direction: auto, ltr or rtl")
	pf.StringVar(&flags.justify, "justify", "", "Justification: default, left, center or right")
	pf.StringVar(&flags.overflow, "overflow", "", "Overflow: wrap or visible")
	pf.StringVar(&flags.theme, "theme", "", "Built-in theme: default, monokai or night_owl")
	pf.BoolVar(&flags.noMarkup, "no-markup", false, "Print input literally without parsing markup")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level written to stderr")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	bindRenderFlags(cmd, renderOpts)

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDetectCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
