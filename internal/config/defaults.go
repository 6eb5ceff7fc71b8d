package config

const (
	defaultSourceDir = "docs/workshop"
	defaultStateDir  = "~/.local/state/docreorg"
	defaultPreset    = "restructure"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	lockFileName = "docreorg.lock"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			StateDir:  defaultStateDir,
		},
		Mapping: Mapping{
			Preset: defaultPreset,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
