package deps

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present", "#!/bin/sh\nexit 0\n")

	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary", InstallHint: "sudo apt install missing"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[1].InstallHint != "sudo apt install missing" {
		t.Fatalf("unexpected install hint: %q", results[1].InstallHint)
	}
}

func TestCheckBinariesUnconfiguredCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Blank", Command: "   "}})
	if results[0].Available {
		t.Fatal("expected unconfigured command to be unavailable")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", results[0].Detail)
	}
}

func TestProbeVersion(t *testing.T) {
	binDir := t.TempDir()
	tool := writeStub(t, binDir, "tool", "#!/bin/sh\necho 'tool 0.13.5'\necho 'extra line'\nexit 0\n")

	version, err := ProbeVersion(context.Background(), tool, 2*time.Second)
	if err != nil {
		t.Fatalf("ProbeVersion: %v", err)
	}
	if version != "tool 0.13.5" {
		t.Fatalf("unexpected version line: %q", version)
	}
}

func TestProbeVersionFailure(t *testing.T) {
	binDir := t.TempDir()
	tool := writeStub(t, binDir, "tool", "#!/bin/sh\necho 'broken install' >&2\nexit 3\n")

	if _, err := ProbeVersion(context.Background(), tool, 2*time.Second); err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestProbeVersionTimeout(t *testing.T) {
	binDir := t.TempDir()
	tool := writeStub(t, binDir, "tool", "#!/bin/sh\nsleep 5\n")

	start := time.Now()
	_, err := ProbeVersion(context.Background(), tool, 100*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("probe did not respect timeout, took %s", elapsed)
	}
}
