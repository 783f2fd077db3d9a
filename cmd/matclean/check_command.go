package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"matclean/internal/deps"
	"matclean/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify external tools and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			statuses := preflight.CheckSystemDeps(cfg)
			checks := preflight.RunAll(cmd.Context(), cfg)

			if jsonOutput {
				return writeJSON(cmd, checkReport{Dependencies: statuses, Checks: checks})
			}

			out := cmd.OutOrStdout()

			depRows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				depRows = append(depRows, []string{
					status.Name,
					availability(status),
					dependencyDetail(status),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Dependency", "Status", "Detail"},
				depRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			checkRows := make([][]string, 0, len(checks))
			for _, check := range checks {
				state := "FAIL"
				if check.Passed {
					state = "OK"
				}
				checkRows = append(checkRows, []string{check.Name, state, check.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				checkRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			for _, status := range statuses {
				if !status.Available && !status.Optional {
					return fmt.Errorf("required dependency %s is missing", status.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}

type checkReport struct {
	Dependencies []deps.Status      `json:"dependencies"`
	Checks       []preflight.Result `json:"checks"`
}

func availability(status deps.Status) string {
	switch {
	case status.Available:
		return "OK"
	case status.Optional:
		return "missing (optional)"
	default:
		return "MISSING"
	}
}

func dependencyDetail(status deps.Status) string {
	if status.Available {
		return status.Description
	}
	detail := status.Detail
	if status.InstallHint != "" {
		detail = fmt.Sprintf("%s (install with: %s)", detail, status.InstallHint)
	}
	return detail
}
