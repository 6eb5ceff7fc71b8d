package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docreorg/internal/faults"
	"docreorg/internal/reorganizer"
	"docreorg/internal/runlock"
)

func TestRootCommandRunsReorganization(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md", "installation.md")

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Moved: "+filepath.Join(env.sourceDir, "intro.md"))
	requireContains(t, out, "Warning: "+filepath.Join(env.sourceDir, "rag-concepts.md")+" not found!")
	requireExists(t, filepath.Join(env.sourceDir, "10-introduction", "1-overview.mdx"))
	requireExists(t, filepath.Join(env.sourceDir, "70-production-deployment", "_category_.json"))
	if _, err := os.Stat(filepath.Join(env.sourceDir, "intro.md")); !os.IsNotExist(err) {
		t.Fatalf("expected intro.md to be moved, stat err = %v", err)
	}
}

func TestRunHonoursDestOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md")
	dest := filepath.Join(env.baseDir, "site", "docs")

	if _, _, err := runCLI(t, []string{"--dest", dest}, env.configPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	requireExists(t, filepath.Join(dest, "10-introduction", "1-overview.mdx"))
	if _, err := os.Stat(filepath.Join(env.sourceDir, "10-introduction")); !os.IsNotExist(err) {
		t.Fatalf("expected no groups under the source root, stat err = %v", err)
	}
}

func TestPlanLeavesTreeUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md")

	out, _, err := runCLI(t, []string{"plan"}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, "[dry-run] ") {
			t.Fatalf("expected dry-run prefix on %q", line)
		}
	}
	requireExists(t, filepath.Join(env.sourceDir, "intro.md"))
	if _, err := os.Stat(filepath.Join(env.sourceDir, "10-introduction")); !os.IsNotExist(err) {
		t.Fatalf("plan created a group directory, stat err = %v", err)
	}
	if _, err := os.Stat(env.stateDir); !os.IsNotExist(err) {
		t.Fatalf("plan should not take the run lock, stat err = %v", err)
	}
}

func TestRunJSONReport(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "setup-mongodb.md")

	out, _, err := runCLI(t, []string{"--json"}, env.configPath)
	if err != nil {
		t.Fatalf("run --json: %v", err)
	}
	if strings.Contains(out, "Moved:") {
		t.Fatalf("trace leaked into JSON output: %q", out)
	}
	var report reorganizer.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.DryRun || report.SourceRoot != env.sourceDir {
		t.Fatalf("unexpected report header %+v", report)
	}
	if report.Count(reorganizer.ActionMoved) != 1 || report.Count(reorganizer.ActionDescriptor) != 7 {
		t.Fatalf("unexpected report counts %+v", report.Groups())
	}
}

func TestRunSummaryTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md")

	out, _, err := runCLI(t, []string{"--dry-run", "--summary"}, env.configPath)
	if err != nil {
		t.Fatalf("run --summary: %v", err)
	}
	requireContains(t, out, "[dry-run] Moved:")
	requireContains(t, out, "10-introduction")
	requireContains(t, out, "70-production-deployment")
}

func TestRunRefusesWhenLocked(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md")

	lock, err := runlock.Acquire(filepath.Join(env.stateDir, "docreorg.lock"))
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer lock.Release()

	_, _, err = runCLI(t, nil, env.configPath)
	if !errors.Is(err, faults.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if code := faults.ExitCode(err); code != faults.ExitLocked {
		t.Fatalf("expected exit code %d, got %d", faults.ExitLocked, code)
	}
	requireExists(t, filepath.Join(env.sourceDir, "intro.md"))
}

func TestRunRejectsUnknownPreset(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"--preset", "bogus"}, env.configPath)
	if err == nil {
		t.Fatal("expected unknown preset to fail")
	}
	if code := faults.ExitCode(err); code != faults.ExitInvalid {
		t.Fatalf("expected exit code %d, got %d (%v)", faults.ExitInvalid, code, err)
	}
}

func TestRunIOFailureExitCode(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "intro.md")
	if err := os.WriteFile(filepath.Join(env.sourceDir, "20-mongodb-atlas"), []byte("in the way"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	out, _, err := runCLI(t, nil, env.configPath)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if code := faults.ExitCode(err); code != faults.ExitFailure {
		t.Fatalf("expected exit code %d, got %d", faults.ExitFailure, code)
	}
	requireContains(t, out, "Moved: ")
}
