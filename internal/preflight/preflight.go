package preflight

import (
	"context"

	"matclean/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Directory checks only run for directories that are configured.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	if cfg.Paths.ScriptsDir != "" {
		results = append(results, CheckDirectoryAccess("Scripts directory", cfg.Paths.ScriptsDir))
	}

	results = append(results, CheckTool(ctx, cfg))

	return results
}
