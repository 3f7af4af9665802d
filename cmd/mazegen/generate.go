package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/ui"
)

var (
	flagColor   bool
	flagNoColor bool
	flagSummary bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated layout",
	Long: `Generate one layout and print it, one grid row per line.

Legend: # closed, . open floor, + room center, , hallway, S start, G goal.
Colors are used when stdout is a terminal unless --no-color is given.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagColor, "color", false, "Force colored output")
	generateCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	generateCmd.Flags().BoolVar(&flagSummary, "summary", true, "Print a summary line after the layout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	gen, stop, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	defer stop()

	result, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	palette, err := presets.LoadPalette()
	if err != nil {
		return err
	}

	colorize := flagColor || (!flagNoColor && term.IsTerminal(int(os.Stdout.Fd())))
	out := cmd.OutOrStdout()
	if err := ui.WriteASCII(out, result.Grid, palette, colorize); err != nil {
		return err
	}
	if flagSummary {
		fmt.Fprintf(out, "layout %s seed %d: %s\n", result.ID, result.Seed, result.Summary)
	}
	return nil
}
