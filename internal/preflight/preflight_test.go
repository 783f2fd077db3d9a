package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"matclean/internal/config"
)

func writeStubTool(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckTool_OK(t *testing.T) {
	bin := writeStubTool(t, "mat2", "#!/bin/sh\necho 'mat2 0.13.4'\n")
	t.Setenv("PATH", bin)

	cfg := config.Default()
	result := CheckTool(context.Background(), &cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result.Detail != "mat2 0.13.4" {
		t.Fatalf("expected version detail, got %q", result.Detail)
	}
}

func TestCheckTool_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := config.Default()
	result := CheckTool(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure for missing tool")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_MinimalConfig(t *testing.T) {
	bin := writeStubTool(t, "mat2", "#!/bin/sh\necho 'mat2 0.13.4'\n")
	t.Setenv("PATH", bin)

	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Paths.ScriptsDir = t.TempDir()

	results := RunAll(context.Background(), &cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
}

func TestCheckSystemDeps_IncludesNotifiersWhenDesktopEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Desktop = true

	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[0].Name != "mat2" || statuses[0].Optional {
		t.Fatalf("expected mat2 as required first entry, got %+v", statuses[0])
	}
	for _, s := range statuses[1:] {
		if !s.Optional {
			t.Errorf("expected %s to be optional", s.Name)
		}
	}
}

func TestCheckSystemDeps_ToolOnlyWhenDesktopDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Desktop = false

	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
}
