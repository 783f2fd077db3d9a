package cleaner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Outcome is the per-file disposition.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result captures what happened to a single selected file.
type Result struct {
	Path        string  `json:"path"`
	Outcome     Outcome `json:"outcome"`
	CleanedPath string  `json:"cleaned_path,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// Summary aggregates the per-file outcomes of one run.
type Summary struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Summarize counts outcomes. Processed is the full selection size, including
// skipped files.
func Summarize(results []Result) Summary {
	summary := Summary{Processed: len(results)}
	for _, result := range results {
		switch result.Outcome {
		case OutcomeSuccess:
			summary.Succeeded++
		case OutcomeFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}
	}
	return summary
}

// Describe renders the notification title and message for a finished run. The
// tiers mirror the feedback users expect: full success, partial success,
// nothing eligible, and complete failure.
func Describe(results []Result, summary Summary) (string, string) {
	switch {
	case summary.Processed == 0:
		return "No Files Cleaned", "Nothing to process"
	case summary.Succeeded > 0 && summary.Failed == 0 && summary.Skipped == 0:
		if summary.Succeeded == 1 {
			for _, result := range results {
				if result.Outcome == OutcomeSuccess {
					return "Metadata Cleaned", fmt.Sprintf("Created: %s", filepath.Base(result.CleanedPath))
				}
			}
		}
		return "Metadata Cleaned", fmt.Sprintf("%d files cleaned successfully", summary.Succeeded)
	case summary.Succeeded > 0:
		parts := []string{fmt.Sprintf("%d cleaned", summary.Succeeded)}
		if summary.Skipped > 0 {
			parts = append(parts, fmt.Sprintf("%d skipped", summary.Skipped))
		}
		if summary.Failed > 0 {
			parts = append(parts, fmt.Sprintf("%d failed", summary.Failed))
		}
		return "Metadata Cleaning Complete", strings.Join(parts, ", ")
	case summary.Failed == 0:
		return "No Files Cleaned", fmt.Sprintf("%d file(s) skipped", summary.Skipped)
	default:
		return "Metadata Cleaning Failed", fmt.Sprintf("Could not clean %d file(s). Check file permissions.", summary.Failed)
	}
}
