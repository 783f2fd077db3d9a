// Package cleaner orchestrates metadata cleaning across a file selection.
//
// Given the selected paths, it verifies the external tool is available, runs
// the eligibility rules, invokes the tool per eligible file with an
// independent timeout, and aggregates per-file results into a summary for the
// notification service. Results always come back in input order, one per
// selected path, and a failure on one file never stops the others. The
// original files are never written to.
package cleaner
