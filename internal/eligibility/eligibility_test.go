package eligibility

import (
	"os"
	"path/filepath"
	"testing"
)

// resolveDir strips temp-dir symlinks so prefix comparisons see the same
// resolved path Evaluate computes.
func resolveDir(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	return resolved
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestEvaluateEligibleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.jpg")

	rules := NewRules(DefaultFormats(), nil, false)
	decision := rules.Evaluate(path)
	if !decision.Eligible {
		t.Fatalf("expected eligible, got reason %q", decision.Reason)
	}
	if decision.Resolved == "" {
		t.Fatal("expected resolved path to be recorded")
	}
}

func TestEvaluateRejectsRelativePath(t *testing.T) {
	rules := NewRules(DefaultFormats(), nil, false)
	if d := rules.Evaluate("photo.jpg"); d.Eligible || d.Reason != ReasonRelativePath {
		t.Fatalf("expected relative path rejection, got %+v", d)
	}
}

func TestEvaluateRejectsMissingAndNonRegular(t *testing.T) {
	dir := t.TempDir()
	rules := NewRules(DefaultFormats(), nil, false)

	if d := rules.Evaluate(filepath.Join(dir, "absent.jpg")); d.Reason != ReasonMissing {
		t.Fatalf("expected missing reason, got %+v", d)
	}
	if d := rules.Evaluate(dir); d.Reason != ReasonNotRegular {
		t.Fatalf("expected non-regular reason, got %+v", d)
	}
}

func TestEvaluateRejectsProtectedPrefix(t *testing.T) {
	dir := resolveDir(t, t.TempDir())
	path := writeFile(t, dir, "photo.jpg")

	rules := NewRules(DefaultFormats(), []string{dir}, false)
	if d := rules.Evaluate(path); d.Eligible || d.Reason != ReasonProtectedPath {
		t.Fatalf("expected protected path rejection, got %+v", d)
	}
}

func TestEvaluateRejectsSymlinkIntoProtectedSpace(t *testing.T) {
	protected := resolveDir(t, t.TempDir())
	target := writeFile(t, protected, "secret.jpg")

	work := t.TempDir()
	link := filepath.Join(work, "innocent.jpg")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	rules := NewRules(DefaultFormats(), []string{protected}, false)
	if d := rules.Evaluate(link); d.Eligible || d.Reason != ReasonProtectedPath {
		t.Fatalf("expected symlink escape to be rejected, got %+v", d)
	}
}

func TestEvaluateRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.go")

	rules := NewRules(DefaultFormats(), nil, false)
	if d := rules.Evaluate(path); d.Eligible || d.Reason != ReasonUnsupported {
		t.Fatalf("expected unsupported rejection, got %+v", d)
	}
}

func TestEvaluateCleanedArtifactGuard(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.cleaned.jpg")

	permissive := NewRules(DefaultFormats(), nil, false)
	if d := permissive.Evaluate(path); !d.Eligible {
		t.Fatalf("expected cleaned artifact to be processed by default, got %+v", d)
	}

	guarded := NewRules(DefaultFormats(), nil, true)
	if d := guarded.Evaluate(path); d.Eligible || d.Reason != ReasonCleanedArtifact {
		t.Fatalf("expected cleaned artifact guard to reject, got %+v", d)
	}
}
