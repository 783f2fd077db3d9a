package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"matclean/internal/installer"
)

func newInstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the file-manager scripts-menu entry",
		Long: `Install a small shim script into the configured Nautilus scripts directory so
"Clean Metadata" appears in the file manager's Scripts context menu. The
command fails when the external cleaning tool is not installed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			target, err := installer.Install(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", target)
			return nil
		},
	}
}

func newUninstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the file-manager scripts-menu entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			removed, err := installer.Uninstall(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if removed == "" {
				fmt.Fprintln(out, "Nothing to remove")
				return nil
			}
			fmt.Fprintf(out, "Removed %s\n", removed)
			return nil
		},
	}
}
