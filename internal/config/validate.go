package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"docreorg/internal/faults"
	"docreorg/internal/layout"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMapping(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validatePaths()
}

func (c *Config) validateMapping() error {
	if c.Mapping.File != "" {
		return nil
	}
	for _, name := range layout.PresetNames() {
		if c.Mapping.Preset == name {
			return nil
		}
	}
	return invalid(fmt.Sprintf("mapping.preset %q is not one of: %s", c.Mapping.Preset, strings.Join(layout.PresetNames(), ", ")))
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid(fmt.Sprintf("logging.format %q must be console or json", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid(fmt.Sprintf("logging.level %q must be debug, info, warn, or error", c.Logging.Level))
	}
	return nil
}

func (c *Config) validatePaths() error {
	state := filepath.Clean(c.Paths.StateDir)
	for _, root := range []string{c.Paths.SourceDir, c.DestRoot()} {
		if state == filepath.Clean(root) {
			return invalid("paths.state_dir must not be a documentation root")
		}
	}
	return nil
}

func invalid(message string) error {
	return faults.Wrap(faults.ErrConfiguration, "config", "validate", message, nil)
}
