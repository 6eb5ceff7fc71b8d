package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"docreorg/internal/faults"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the directory roots a run works against.
type Paths struct {
	SourceDir string `toml:"source_dir"`
	DestDir   string `toml:"dest_dir"`
	StateDir  string `toml:"state_dir"`
}

// Mapping selects the layout table applied by a run.
type Mapping struct {
	Preset string `toml:"preset"`
	File   string `toml:"file"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for docreorg.
//
// Configuration sections:
//   - Paths: legacy source root, destination root, and state directory
//   - Mapping: built-in preset or mapping file
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Mapping Mapping `toml:"mapping"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/docreorg/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized. A missing file is not an error; defaults apply.
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
			return nil, "", false, faults.Wrap(faults.ErrConfiguration, "config", "parse config", resolvedPath, err)
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

	projectPath, err := filepath.Abs("docreorg.toml")
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

// Overrides carries command-line values that take precedence over the file
// and the environment. Empty fields are ignored.
type Overrides struct {
	SourceDir   string
	DestDir     string
	Preset      string
	MappingFile string
}

// Apply merges overrides into the config, re-normalizes, and re-validates.
func (c *Config) Apply(o Overrides) error {
	if v := strings.TrimSpace(o.SourceDir); v != "" {
		c.Paths.SourceDir = v
	}
	if v := strings.TrimSpace(o.DestDir); v != "" {
		c.Paths.DestDir = v
	}
	if v := strings.TrimSpace(o.Preset); v != "" {
		c.Mapping.Preset = v
		c.Mapping.File = ""
	}
	if v := strings.TrimSpace(o.MappingFile); v != "" {
		c.Mapping.File = v
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMapping(); err != nil {
		return err
	}
	return c.Validate()
}

// DestRoot returns the destination root. An unset dest_dir means groups are
// created inside the source root.
func (c *Config) DestRoot() string {
	if c.Paths.DestDir == "" {
		return c.Paths.SourceDir
	}
	return c.Paths.DestDir
}

// LockPath returns the advisory lock file guarding mutating runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, lockFileName)
}

// EnsureDirectories creates the state directory used for the run lock.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return faults.Wrap(faults.ErrIO, "config", "ensure directories", fmt.Sprintf("create directory %q", c.Paths.StateDir), err)
	}
	return nil
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
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
