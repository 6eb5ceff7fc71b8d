package preflight

import (
	"docreorg/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks for the configured roots.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{CheckDirectoryAccess("Source directory", cfg.Paths.SourceDir)}
	if dest := cfg.DestRoot(); dest != cfg.Paths.SourceDir {
		results = append(results, CheckWritableParent("Destination directory", dest))
	}
	results = append(results, CheckWritableParent("State directory", cfg.Paths.StateDir))
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
