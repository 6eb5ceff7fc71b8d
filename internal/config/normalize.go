package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envSourceDir = "DOCREORG_SOURCE_DIR"
	envDestDir   = "DOCREORG_DEST_DIR"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMapping(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envSourceDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.SourceDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv(envDestDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.DestDir = strings.TrimSpace(value)
	}
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.SourceDir = strings.TrimSpace(c.Paths.SourceDir)
	if c.Paths.SourceDir == "" {
		c.Paths.SourceDir = defaultSourceDir
	}
	if c.Paths.SourceDir, err = expandPath(c.Paths.SourceDir); err != nil {
		return fmt.Errorf("paths.source_dir: %w", err)
	}
	if c.Paths.DestDir, err = expandPath(strings.TrimSpace(c.Paths.DestDir)); err != nil {
		return fmt.Errorf("paths.dest_dir: %w", err)
	}
	c.Paths.StateDir = strings.TrimSpace(c.Paths.StateDir)
	if c.Paths.StateDir == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMapping() error {
	c.Mapping.Preset = strings.ToLower(strings.TrimSpace(c.Mapping.Preset))
	if c.Mapping.Preset == "" {
		c.Mapping.Preset = defaultPreset
	}
	var err error
	if c.Mapping.File, err = expandPath(strings.TrimSpace(c.Mapping.File)); err != nil {
		return fmt.Errorf("mapping.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "text":
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
