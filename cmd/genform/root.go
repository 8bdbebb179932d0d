package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath     string
	aspectRatio    string
	resolution     string
	negativePrompt string
	output         string
	logFile        string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "genform",
		Short: "Build an image-generation request in a terminal form",
		Long: `genform opens a form for choosing an aspect ratio, a resolution and an
optional negative prompt, then writes the resulting request to stdout.

When stdin or stdout is not a terminal the form is skipped and the request is
built from flags and the config file instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a genform config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.Flags().StringVar(&flags.aspectRatio, "aspect-ratio", "", "Initial aspect ratio id")
	cmd.Flags().StringVar(&flags.resolution, "resolution", "", "Initial resolution id")
	cmd.Flags().StringVar(&flags.negativePrompt, "negative-prompt", "", "Initial negative prompt")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output format: yaml or json")

	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
