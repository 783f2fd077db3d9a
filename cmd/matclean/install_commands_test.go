package main

import (
	"os"
	"path/filepath"
	"testing"

	"matclean/internal/installer"
	"matclean/internal/testsupport"
)

func TestInstallAndUninstall(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedTool(""))
	configPath := writeTestConfig(t, cfg)

	out, _, err := runCLI(t, []string{"install"}, configPath)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	requireContains(t, out, "Installed")

	shim := filepath.Join(cfg.Paths.ScriptsDir, installer.ScriptName)
	if _, err := os.Stat(shim); err != nil {
		t.Fatalf("expected shim at %s: %v", shim, err)
	}

	out, _, err = runCLI(t, []string{"uninstall"}, configPath)
	if err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	requireContains(t, out, "Removed")

	if _, err := os.Stat(shim); !os.IsNotExist(err) {
		t.Fatal("shim still present after uninstall")
	}
}
