package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/genform/internal/tui/components"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the negative-prompt presets and their shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := components.DefaultNegativePromptKeyMap()
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(writer, "KEY\tLABEL\tTEXT")
			for i, preset := range components.Presets() {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", keys.Presets[i].Help().Key, components.PresetLabel(preset), preset)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\n", keys.QualityPreset.Help().Key, "quality", components.QualityPreset())

			return writer.Flush()
		},
	}

	return cmd
}
