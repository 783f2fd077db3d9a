package mat2

import (
	"path/filepath"
	"strings"
)

const cleanedMarker = ".cleaned"

// ArtifactPath returns the output path mat2 produces for the given input:
// the same directory and stem with a .cleaned marker before the extension,
// e.g. /pics/a.jpg -> /pics/a.cleaned.jpg.
func ArtifactPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+cleanedMarker+ext)
}

// IsCleanedArtifact reports whether path already carries the .cleaned marker,
// i.e. it looks like the output of a previous run.
func IsCleanedArtifact(path string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.HasSuffix(stem, cleanedMarker)
}
