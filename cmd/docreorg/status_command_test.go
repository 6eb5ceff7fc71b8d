package main

import (
	"encoding/json"
	"testing"

	"docreorg/internal/reorganizer"
)

func TestStatusAfterRun(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "10-Introduction/01-introduction.md")

	if _, _, err := runCLI(t, []string{"--preset", "restructure"}, env.configPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	out, _, err := runCLI(t, []string{"--preset", "restructure", "status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	var groups []reorganizer.GroupStatus
	if err := json.Unmarshal([]byte(out), &groups); err != nil {
		t.Fatalf("decode status: %v\n%s", err, out)
	}
	if len(groups) != 7 {
		t.Fatalf("expected 7 groups, got %d", len(groups))
	}
	counts := map[reorganizer.PageState]int{}
	for _, g := range groups {
		if !g.DescriptorCurrent {
			t.Fatalf("expected current descriptor for %s", g.Name)
		}
		for _, p := range g.Pages {
			counts[p.State]++
		}
	}
	if counts[reorganizer.PageAuthored] != 1 || counts[reorganizer.PagePlaceholder] != 12 || counts[reorganizer.PageAbsent] != 9 {
		t.Fatalf("unexpected page states %v", counts)
	}

	out, _, err = runCLI(t, []string{"--preset", "restructure", "status"}, env.configPath)
	if err != nil {
		t.Fatalf("status table: %v", err)
	}
	requireContains(t, out, "60-advanced-techniques")
	requireContains(t, out, "current")
}
