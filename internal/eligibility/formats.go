package eligibility

import (
	"path/filepath"
	"sort"
	"strings"
)

// defaultExtensions mirrors the formats mat2 declares support for. The list is
// maintained by hand against the tool's documentation; keep it in sync when
// upgrading mat2.
var defaultExtensions = []string{
	// Images
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp",
	".heic", ".ppm", ".svg", ".svgz",
	// Documents
	".pdf", ".odt", ".ods", ".odp", ".odg", ".odf", ".odi", ".odc",
	".docx", ".xlsx", ".pptx", ".epub", ".ncx",
	// Audio
	".mp3", ".mp1", ".mp2", ".mpga", ".mpega", ".flac", ".ogg", ".oga",
	".opus", ".spx", ".wav", ".aif", ".aiff", ".aifc",
	// Video
	".mp4", ".mpg4", ".m4v", ".avi", ".wmv",
	// Archives
	".zip", ".tar", ".tar.gz", ".tar.bz2", ".tar.xz", ".torrent",
	// Web
	".html", ".htm", ".shtml", ".xhtml", ".xht", ".css",
	// Text
	".txt", ".text",
}

// FormatSet is an immutable extension allow-list. Lookup is case-insensitive
// and understands compound suffixes such as .tar.gz.
type FormatSet struct {
	exts map[string]struct{}
}

// DefaultFormats returns the built-in mat2 allow-list.
func DefaultFormats() FormatSet {
	return NewFormatSet(defaultExtensions)
}

// NewFormatSet builds a set from the given extensions. Entries are lowercased
// and get a leading dot when missing.
func NewFormatSet(extensions []string) FormatSet {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = canonicalExt(ext)
		if ext == "" {
			continue
		}
		exts[ext] = struct{}{}
	}
	return FormatSet{exts: exts}
}

// With returns a copy of the set that also contains the given extensions.
func (s FormatSet) With(extensions ...string) FormatSet {
	merged := make([]string, 0, len(s.exts)+len(extensions))
	for ext := range s.exts {
		merged = append(merged, ext)
	}
	merged = append(merged, extensions...)
	return NewFormatSet(merged)
}

// Without returns a copy of the set with the given extensions removed.
func (s FormatSet) Without(extensions ...string) FormatSet {
	out := make(map[string]struct{}, len(s.exts))
	for ext := range s.exts {
		out[ext] = struct{}{}
	}
	for _, ext := range extensions {
		delete(out, canonicalExt(ext))
	}
	return FormatSet{exts: out}
}

// Match reports the matched extension for path, preferring compound suffixes
// (a.tar.gz matches .tar.gz, not .gz).
func (s FormatSet) Match(path string) (string, bool) {
	base := strings.ToLower(filepath.Base(path))
	last := filepath.Ext(base)
	if last == "" {
		return "", false
	}
	stem := strings.TrimSuffix(base, last)
	if prev := filepath.Ext(stem); prev != "" {
		compound := prev + last
		if _, ok := s.exts[compound]; ok {
			return compound, true
		}
	}
	if _, ok := s.exts[last]; ok {
		return last, true
	}
	return "", false
}

// Extensions returns the sorted contents of the set.
func (s FormatSet) Extensions() []string {
	out := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of extensions in the set.
func (s FormatSet) Len() int {
	return len(s.exts)
}

func canonicalExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
