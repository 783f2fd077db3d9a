// Package eligibility decides which selected files may be handed to the
// external cleaning tool.
//
// A file is eligible when it exists as a regular file, its path resolves
// without escaping into a protected system directory, and its extension is on
// the supported-format allow-list. Everything else is skipped with a reason the
// summary can report.
package eligibility

import (
	"os"
	"path/filepath"
	"strings"

	"matclean/internal/mat2"
)

// Reason classifies why a file was skipped.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonRelativePath    Reason = "path is not absolute"
	ReasonMissing         Reason = "file does not exist"
	ReasonNotRegular      Reason = "not a regular file"
	ReasonUnresolvable    Reason = "path does not resolve"
	ReasonProtectedPath   Reason = "inside a protected system directory"
	ReasonUnsupported     Reason = "extension not supported"
	ReasonCleanedArtifact Reason = "already a cleaned copy"
)

// Decision is the per-file eligibility outcome.
type Decision struct {
	Path     string
	Resolved string
	Eligible bool
	Reason   Reason
}

// Rules evaluates selected paths against an immutable configuration.
type Rules struct {
	formats     FormatSet
	protected   []string
	skipCleaned bool
}

// NewRules builds eligibility rules. Protected prefixes are cleaned; the
// formats set is used as provided.
func NewRules(formats FormatSet, protectedPrefixes []string, skipCleaned bool) *Rules {
	prefixes := make([]string, 0, len(protectedPrefixes))
	for _, prefix := range protectedPrefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		prefixes = append(prefixes, filepath.Clean(prefix))
	}
	return &Rules{
		formats:     formats,
		protected:   prefixes,
		skipCleaned: skipCleaned,
	}
}

// Formats exposes the allow-list backing these rules.
func (r *Rules) Formats() FormatSet {
	return r.formats
}

// Evaluate decides whether a single path may be processed. The checks run in a
// fixed order so a path failing several of them reports a stable reason.
func (r *Rules) Evaluate(path string) Decision {
	decision := Decision{Path: path}

	if !filepath.IsAbs(path) {
		decision.Reason = ReasonRelativePath
		return decision
	}

	info, err := os.Stat(path)
	if err != nil {
		decision.Reason = ReasonMissing
		return decision
	}
	if !info.Mode().IsRegular() {
		decision.Reason = ReasonNotRegular
		return decision
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		decision.Reason = ReasonUnresolvable
		return decision
	}
	decision.Resolved = resolved

	for _, prefix := range r.protected {
		if resolved == prefix || strings.HasPrefix(resolved, prefix+string(os.PathSeparator)) {
			decision.Reason = ReasonProtectedPath
			return decision
		}
	}

	if _, ok := r.formats.Match(path); !ok {
		decision.Reason = ReasonUnsupported
		return decision
	}

	if r.skipCleaned && mat2.IsCleanedArtifact(path) {
		decision.Reason = ReasonCleanedArtifact
		return decision
	}

	decision.Eligible = true
	return decision
}
