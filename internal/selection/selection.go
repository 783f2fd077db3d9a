// Package selection resolves the file selection handed over by the host file
// manager into absolute filesystem paths.
//
// The selection arrives either as command-line arguments (plain paths or
// file:// URIs) or, when matclean runs as a Nautilus script with no arguments,
// through the NAUTILUS_SCRIPT_SELECTED_FILE_PATHS environment variable.
package selection

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// EnvSelectedPaths is the newline-separated selection Nautilus exports to scripts.
const EnvSelectedPaths = "NAUTILUS_SCRIPT_SELECTED_FILE_PATHS"

// Resolve converts raw selection entries into absolute paths, preserving
// order. Entries that cannot be interpreted are returned as errors keyed by the
// offending input; a partially bad selection still yields the good paths.
func Resolve(raw []string) ([]string, []error) {
	paths := make([]string, 0, len(raw))
	var errs []error
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		path, err := resolveEntry(entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errs
}

// FromEnvironment reads the Nautilus script selection variable and splits it
// into entries. An unset or empty variable yields an empty selection.
func FromEnvironment() []string {
	value := os.Getenv(EnvSelectedPaths)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	lines := strings.Split(value, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

func resolveEntry(entry string) (string, error) {
	if strings.Contains(entry, "://") {
		parsed, err := url.Parse(entry)
		if err != nil {
			return "", fmt.Errorf("selection entry %q: %w", entry, err)
		}
		if parsed.Scheme != "file" {
			return "", fmt.Errorf("selection entry %q: unsupported scheme %q", entry, parsed.Scheme)
		}
		if parsed.Path == "" {
			return "", fmt.Errorf("selection entry %q: empty path", entry)
		}
		return filepath.Clean(parsed.Path), nil
	}

	abs, err := filepath.Abs(entry)
	if err != nil {
		return "", fmt.Errorf("selection entry %q: %w", entry, err)
	}
	return abs, nil
}
