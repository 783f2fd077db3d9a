package cleaner

import (
	"strings"
	"testing"
)

func TestSummarizeCounts(t *testing.T) {
	results := []Result{
		{Path: "/a.jpg", Outcome: OutcomeSuccess, CleanedPath: "/a.cleaned.jpg"},
		{Path: "/b.txt", Outcome: OutcomeSkipped, Reason: "extension not supported"},
		{Path: "/c.pdf", Outcome: OutcomeFailed, Reason: "timeout"},
	}
	summary := Summarize(results)
	if summary.Processed != 3 || summary.Succeeded != 1 || summary.Skipped != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestDescribeTiers(t *testing.T) {
	cases := []struct {
		name        string
		results     []Result
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "empty selection",
			results:     nil,
			wantTitle:   "No Files Cleaned",
			wantMessage: "Nothing to process",
		},
		{
			name: "single success names artifact",
			results: []Result{
				{Path: "/p/a.jpg", Outcome: OutcomeSuccess, CleanedPath: "/p/a.cleaned.jpg"},
			},
			wantTitle:   "Metadata Cleaned",
			wantMessage: "Created: a.cleaned.jpg",
		},
		{
			name: "multiple successes",
			results: []Result{
				{Outcome: OutcomeSuccess, CleanedPath: "/p/a.cleaned.jpg"},
				{Outcome: OutcomeSuccess, CleanedPath: "/p/b.cleaned.pdf"},
			},
			wantTitle:   "Metadata Cleaned",
			wantMessage: "2 files cleaned successfully",
		},
		{
			name: "partial success",
			results: []Result{
				{Outcome: OutcomeSuccess, CleanedPath: "/p/a.cleaned.jpg"},
				{Outcome: OutcomeSkipped, Reason: "extension not supported"},
				{Outcome: OutcomeFailed, Reason: "timeout"},
			},
			wantTitle:   "Metadata Cleaning Complete",
			wantMessage: "1 cleaned, 1 skipped, 1 failed",
		},
		{
			name: "all skipped",
			results: []Result{
				{Outcome: OutcomeSkipped, Reason: "extension not supported"},
				{Outcome: OutcomeSkipped, Reason: "format refused by tool"},
			},
			wantTitle:   "No Files Cleaned",
			wantMessage: "2 file(s) skipped",
		},
		{
			name: "all failed",
			results: []Result{
				{Outcome: OutcomeFailed, Reason: "exit code 2"},
			},
			wantTitle: "Metadata Cleaning Failed",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, message := Describe(tc.results, Summarize(tc.results))
			if title != tc.wantTitle {
				t.Fatalf("title: got %q want %q", title, tc.wantTitle)
			}
			if tc.wantMessage != "" && message != tc.wantMessage {
				t.Fatalf("message: got %q want %q", message, tc.wantMessage)
			}
			if tc.wantMessage == "" && !strings.Contains(message, "1 file(s)") {
				t.Fatalf("unexpected message: %q", message)
			}
		})
	}
}
