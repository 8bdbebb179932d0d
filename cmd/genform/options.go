package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	"github.com/alexisbeaulieu97/genform/internal/config"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

type optionsOptions struct {
	jsonOutput bool
}

func newOptionsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the aspect ratios and resolutions the form offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootFlags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.jsonOutput {
				return renderOptionsJSON(cmd, cfg.Catalog())
			}
			return renderOptionsTable(cmd, cfg.Catalog())
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderOptionsTable(cmd *cobra.Command, c catalog.Catalog) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ASPECT RATIO\tNAME\tRATIO")
	for _, a := range c.AspectRatios {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", a.ID, a.Name, a.Ratio())
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "RESOLUTION\tNAME\tSIZE\tTIER")
	for _, r := range c.Resolutions {
		fmt.Fprintf(writer, "%s\t%s\t%d×%d\t%s\n", r.ID, r.Name, r.Width, r.Height, tierLabel(r.ID))
	}

	return writer.Flush()
}

func tierLabel(id string) string {
	switch {
	case catalog.IsPremium(id):
		return ui.PremiumBadge().Text() + " premium"
	case catalog.IsRecommended(id):
		return ui.RecommendedBadge().Text() + " recommended"
	default:
		return "-"
	}
}

func renderOptionsJSON(cmd *cobra.Command, c catalog.Catalog) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}
