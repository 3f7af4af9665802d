package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := presets.LoadRegistry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range registry.All() {
			fmt.Fprintf(out, "%-8s %3dx%-3d rooms=%-2d sizes=%d-%d hallway=%s descent=%s  %s\n",
				p.ID, p.Height, p.Width, p.Rooms, p.MinRoomSize, p.MaxRoomSize,
				p.HallwayKind, p.Descent, p.Description)
		}
		fmt.Fprintf(out, "%d presets\n", registry.Count())
		return nil
	},
}
