package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCleaner()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScriptsDir) == "" {
		c.Paths.ScriptsDir = defaultScriptsDir
	}
	if c.Paths.ScriptsDir, err = expandPath(c.Paths.ScriptsDir); err != nil {
		return fmt.Errorf("paths.scripts_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCleaner() {
	c.Cleaner.ToolBinary = strings.TrimSpace(c.Cleaner.ToolBinary)
	if c.Cleaner.ToolBinary == "" {
		c.Cleaner.ToolBinary = defaultToolBinary
	}
	if c.Cleaner.FileTimeout == 0 {
		c.Cleaner.FileTimeout = defaultFileTimeout
	}
	if c.Cleaner.VersionTimeout == 0 {
		c.Cleaner.VersionTimeout = defaultVersionTimeout
	}
	if c.Cleaner.Workers == 0 {
		c.Cleaner.Workers = defaultWorkers
	}
	if len(c.Cleaner.ProtectedPrefixes) == 0 {
		c.Cleaner.ProtectedPrefixes = defaultProtectedPrefixes()
	}
	prefixes := make([]string, 0, len(c.Cleaner.ProtectedPrefixes))
	for _, prefix := range c.Cleaner.ProtectedPrefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		prefixes = append(prefixes, filepath.Clean(prefix))
	}
	c.Cleaner.ProtectedPrefixes = prefixes
	c.Cleaner.ExtraExtensions = normalizeExtensions(c.Cleaner.ExtraExtensions)
	c.Cleaner.DisabledExtensions = normalizeExtensions(c.Cleaner.DisabledExtensions)
}

func (c *Config) normalizeNotifications() {
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("MATCLEAN_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = value
		}
	}
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	c.Notifications.NotifySendBinary = strings.TrimSpace(c.Notifications.NotifySendBinary)
	if c.Notifications.NotifySendBinary == "" {
		c.Notifications.NotifySendBinary = defaultNotifySendBinary
	}
	c.Notifications.ZenityBinary = strings.TrimSpace(c.Notifications.ZenityBinary)
	if c.Notifications.ZenityBinary == "" {
		c.Notifications.ZenityBinary = defaultZenityBinary
	}
	if c.Notifications.RequestTimeout == 0 {
		c.Notifications.RequestTimeout = defaultNtfyTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		if !strings.HasPrefix(value, ".") {
			value = "." + value
		}
		out = append(out, value)
	}
	return out
}
