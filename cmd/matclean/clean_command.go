package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"matclean/internal/cleaner"
	"matclean/internal/logging"
	"matclean/internal/notifications"
	"matclean/internal/selection"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var noNotify bool

	cmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Remove metadata from the selected files",
		Long: `Clean metadata from the given files by running the external scrubbing tool
on each one. Cleaned copies are written next to the originals as
<name>.cleaned<ext>; the originals are never modified.

Paths may be plain filesystem paths or file:// URIs. With no arguments the
selection is read from NAUTILUS_SCRIPT_SELECTED_FILE_PATHS, which is how the
file-manager script shim invokes matclean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			raw := args
			if len(raw) == 0 {
				raw = selection.FromEnvironment()
			}
			paths, badEntries := selection.Resolve(raw)
			for _, entryErr := range badEntries {
				logger.Warn("selection entry ignored", logging.Error(entryErr))
			}
			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files selected")
				return nil
			}

			tool, err := buildTool(cfg)
			if err != nil {
				return fmt.Errorf("configure cleaning tool: %w", err)
			}
			orchestrator, err := cleaner.New(tool, buildRules(cfg),
				cleaner.WithLogger(logger),
				cleaner.WithWorkers(cfg.Cleaner.Workers))
			if err != nil {
				return fmt.Errorf("configure orchestrator: %w", err)
			}

			notifier := notifications.NewService(cfg)
			if noNotify {
				notifier = notifications.NewNoop()
			}

			runCtx := cmd.Context()
			results, summary, err := orchestrator.Clean(runCtx, paths)
			if err != nil {
				message := fmt.Sprintf("Cannot clean metadata: %v", err)
				if notifyErr := notifier.NotifyFatal(runCtx, "Metadata Cleaning Failed", message); notifyErr != nil {
					logger.Warn("fatal notification failed", logging.Error(notifyErr))
				}
				return err
			}

			title, message := cleaner.Describe(results, summary)
			if notifyErr := notifier.NotifySummary(runCtx, summary, title, message); notifyErr != nil {
				logger.Warn("summary notification failed", logging.Error(notifyErr))
			}

			if jsonOutput {
				if err := writeJSON(cmd, cleanReport{Results: results, Summary: summary}); err != nil {
					return err
				}
			} else {
				printCleanReport(cmd, results, summary)
			}

			if summary.Failed > 0 {
				logger.Error("run finished with failures", slog.Int("failed", summary.Failed))
				return fmt.Errorf("%d file(s) failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Skip desktop and push notifications")
	return cmd
}

type cleanReport struct {
	Results []cleaner.Result `json:"results"`
	Summary cleaner.Summary  `json:"summary"`
}

func printCleanReport(cmd *cobra.Command, results []cleaner.Result, summary cleaner.Summary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		detail := result.CleanedPath
		if detail == "" {
			detail = result.Reason
		}
		rows = append(rows, []string{result.Path, outcomeCell(result.Outcome, colorize), detail})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"File", "Outcome", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "%d processed: %d cleaned, %d skipped, %d failed\n",
		summary.Processed, summary.Succeeded, summary.Skipped, summary.Failed)
}

func outcomeCell(outcome cleaner.Outcome, colorize bool) string {
	label := string(outcome)
	if !colorize {
		return label
	}
	switch outcome {
	case cleaner.OutcomeSuccess:
		return ansiGreen + label + ansiReset
	case cleaner.OutcomeFailed:
		return ansiRed + label + ansiReset
	default:
		return ansiYellow + label + ansiReset
	}
}
