package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleaner(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCleaner() error {
	if c.Cleaner.ToolBinary == "" {
		return errors.New("cleaner.tool_binary must be set")
	}
	if c.Cleaner.FileTimeout <= 0 {
		return errors.New("cleaner.file_timeout must be positive")
	}
	if c.Cleaner.VersionTimeout <= 0 {
		return errors.New("cleaner.version_timeout must be positive")
	}
	if c.Cleaner.Workers <= 0 {
		return errors.New("cleaner.workers must be positive")
	}
	for _, prefix := range c.Cleaner.ProtectedPrefixes {
		if !filepath.IsAbs(prefix) {
			return fmt.Errorf("cleaner.protected_prefixes entry %q must be absolute", prefix)
		}
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
