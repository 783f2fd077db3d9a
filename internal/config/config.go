package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir     string `toml:"log_dir"`
	ScriptsDir string `toml:"scripts_dir"`
}

// Cleaner contains configuration for the metadata cleaning orchestrator.
type Cleaner struct {
	ToolBinary         string   `toml:"tool_binary"`
	FileTimeout        int      `toml:"file_timeout"`
	VersionTimeout     int      `toml:"version_timeout"`
	Workers            int      `toml:"workers"`
	SkipCleaned        bool     `toml:"skip_cleaned"`
	ProtectedPrefixes  []string `toml:"protected_prefixes"`
	ExtraExtensions    []string `toml:"extra_extensions"`
	DisabledExtensions []string `toml:"disabled_extensions"`
}

// Notifications contains configuration for desktop and ntfy push feedback.
type Notifications struct {
	Desktop          bool   `toml:"desktop"`
	NotifySendBinary string `toml:"notify_send_binary"`
	ZenityBinary     string `toml:"zenity_binary"`
	NtfyTopic        string `toml:"ntfy_topic"`
	RequestTimeout   int    `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for matclean.
//
// Configuration sections by subsystem:
//   - Paths: log directory and the file manager scripts directory
//   - Cleaner: external tool, timeouts, eligibility rules, parallelism
//   - Notifications: desktop helper binaries and ntfy push settings
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Cleaner       Cleaner       `toml:"cleaner"`
	Notifications Notifications `toml:"notifications"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/matclean/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized. Absence of a config file is not an error; the
// defaults are used and the boolean result reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("matclean.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories matclean writes to.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
		}
	}
	return nil
}

// ToolBinary returns the external cleaning tool executable name.
func (c *Config) ToolBinary() string {
	return c.Cleaner.ToolBinary
}

// FileTimeout returns the per-file subprocess deadline.
func (c *Config) FileTimeout() time.Duration {
	return time.Duration(c.Cleaner.FileTimeout) * time.Second
}

// VersionTimeout returns the deadline for the tool availability probe.
func (c *Config) VersionTimeout() time.Duration {
	return time.Duration(c.Cleaner.VersionTimeout) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
