package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Stub tool scripts for exercising each subprocess outcome. Each one answers
// the --version probe; the file path is always the last argument.
const (
	// SucceedingToolScript copies the input next to itself under the
	// expected cleaned name and exits 0.
	SucceedingToolScript = `#!/bin/sh
case "$1" in --version) echo "mat2 0.13.4"; exit 0;; esac
for last; do :; done
dir=$(dirname "$last")
base=$(basename "$last")
stem="${base%.*}"
ext="${base##*.}"
if [ "$stem" = "$base" ]; then
  cp "$last" "$dir/$base.cleaned"
else
  cp "$last" "$dir/$stem.cleaned.$ext"
fi
exit 0
`

	// RefusingToolScript mimics the tool declining an input format.
	RefusingToolScript = `#!/bin/sh
case "$1" in --version) echo "mat2 0.13.4"; exit 0;; esac
exit 1
`

	// FailingToolScript reports a hard failure on stderr.
	FailingToolScript = `#!/bin/sh
case "$1" in --version) echo "mat2 0.13.4"; exit 0;; esac
echo "cannot process file" >&2
exit 2
`

	// SilentSuccessToolScript exits 0 without producing an artifact.
	SilentSuccessToolScript = `#!/bin/sh
case "$1" in --version) echo "mat2 0.13.4"; exit 0;; esac
exit 0
`

	// HangingToolScript sleeps past any reasonable test timeout.
	HangingToolScript = `#!/bin/sh
case "$1" in --version) echo "mat2 0.13.4"; exit 0;; esac
sleep 30
`
)

// SampleFile creates a small regular file for cleaning tests and returns its path.
func SampleFile(t testing.TB, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("sample content\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
