package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"matclean/internal/config"
	"matclean/internal/eligibility"
	"matclean/internal/mat2"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// buildFormats applies the config's extension adjustments to the default set.
func buildFormats(cfg *config.Config) eligibility.FormatSet {
	formats := eligibility.DefaultFormats()
	if len(cfg.Cleaner.ExtraExtensions) > 0 {
		formats = formats.With(cfg.Cleaner.ExtraExtensions...)
	}
	if len(cfg.Cleaner.DisabledExtensions) > 0 {
		formats = formats.Without(cfg.Cleaner.DisabledExtensions...)
	}
	return formats
}

func buildRules(cfg *config.Config) *eligibility.Rules {
	return eligibility.NewRules(buildFormats(cfg), cfg.Cleaner.ProtectedPrefixes, cfg.Cleaner.SkipCleaned)
}

func buildTool(cfg *config.Config) (*mat2.CLI, error) {
	return mat2.New(cfg.ToolBinary(), cfg.FileTimeout(), cfg.VersionTimeout())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
