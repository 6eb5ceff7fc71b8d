package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"docreorg/internal/config"
	"docreorg/internal/layout"
	"docreorg/internal/logging"
)

type globalFlags struct {
	config  string
	source  string
	dest    string
	preset  string
	mapping string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Apply(config.Overrides{
			SourceDir:   c.flags.source,
			DestDir:     c.flags.dest,
			Preset:      c.flags.preset,
			MappingFile: c.flags.mapping,
		}); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// mapping resolves the layout selected by the config: a mapping file when one
// is set, the named preset otherwise.
func (c *commandContext) mapping() (layout.Mapping, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	if cfg.Mapping.File != "" {
		m, err := layout.LoadFile(cfg.Mapping.File)
		if err != nil {
			return nil, "", err
		}
		return m, cfg.Mapping.File, nil
	}
	m, err := layout.Preset(cfg.Mapping.Preset)
	if err != nil {
		return nil, "", err
	}
	return m, fmt.Sprintf("preset %s", cfg.Mapping.Preset), nil
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
