package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the file extensions eligible for cleaning",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			extensions := buildFormats(cfg).Extensions()
			if jsonOutput {
				return writeJSON(cmd, map[string][]string{"extensions": extensions})
			}
			out := cmd.OutOrStdout()
			for _, ext := range extensions {
				fmt.Fprintln(out, ext)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the list as JSON")
	return cmd
}
