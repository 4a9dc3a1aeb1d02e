package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termgraph",
		Short: "Draw boxes and connecting edges as text",
		Long: `termgraph renders labelled boxes joined by right-angled edges onto a
character grid, using Unicode box-drawing or plain ASCII glyphs.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newExampleCmd())

	rootCmd.PersistentFlags().String("config", "", "TOML settings file")
	rootCmd.PersistentFlags().String("script", "", "JSON scene script (default: built-in sample)")
	rootCmd.PersistentFlags().Int("width", 0, "canvas width, overrides the config")
	rootCmd.PersistentFlags().Int("height", 0, "canvas height, overrides the config")
	rootCmd.PersistentFlags().String("fill", "", "background glyph, overrides the config")
	rootCmd.PersistentFlags().Bool("ascii", false, "use ASCII glyphs")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("trace", false, "log anchor, route and render events to stderr")
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
