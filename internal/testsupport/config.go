package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"matclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Desktop notifications are off so tests never spawn notify-send.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ScriptsDir = filepath.Join(base, "scripts")
	cfgVal.Notifications.Desktop = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWorkers sets the orchestrator parallelism on the test config.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cleaner.Workers = n
	}
}

// WithFileTimeout sets the per-file subprocess deadline in seconds.
func WithFileTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cleaner.FileTimeout = seconds
	}
}

// WithStubbedTool writes a stub cleaning tool with the given script body and
// points PATH at it. An empty body stubs a tool that claims a version and
// produces the expected artifact for every input.
func WithStubbedTool(script string) ConfigOption {
	return func(b *configBuilder) {
		if script == "" {
			script = SucceedingToolScript
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, b.cfg.Cleaner.ToolBinary)
		if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
			b.t.Fatalf("write stub tool: %v", err)
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
