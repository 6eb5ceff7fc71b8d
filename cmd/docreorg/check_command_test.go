package main

import (
	"errors"
	"path/filepath"
	"testing"

	"docreorg/internal/faults"
)

func TestCheckPassesForConfiguredTree(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "shared sources: yes")
	requireContains(t, out, "Source directory:")
	requireContains(t, out, "[OK]")
}

func TestCheckFailsForMissingSource(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--source", filepath.Join(env.baseDir, "missing"), "check"}, env.configPath)
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	requireContains(t, out, "[ERROR]")
}
