package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse layouts interactively",
	Long: `Open a terminal viewer. Arrow keys walk the layout, r rolls a new one
and q quits. With a fixed --seed every roll yields the same layout.`,
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	gen, stop, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	defer stop()

	palette, err := presets.LoadPalette()
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	viewer := ui.NewViewer(screen, ui.NewRenderer(screen, palette), gen.Generate)
	return viewer.Run(ctx)
}
