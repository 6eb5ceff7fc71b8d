package layout

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"docreorg/internal/faults"
)

// DescriptorFile is the per-group sidebar descriptor a run always rewrites. No
// rule may target it.
const DescriptorFile = "_category_.json"

// Rule is a single instruction within a group. It is either a Relocate or a
// Synthesize.
type Rule interface {
	// Destination returns the file name relative to the group directory.
	Destination() string
	isRule()
}

// Relocate moves Source (relative to the source root) to Dest.
type Relocate struct {
	Source string
	Dest   string
}

func (r Relocate) Destination() string { return r.Dest }
func (Relocate) isRule() {}

// Synthesize creates a placeholder at Dest unless a file is already there.
type Synthesize struct {
	Dest string
}

func (s Synthesize) Destination() string { return s.Dest }
func (Synthesize) isRule() {}

// Group is one target section directory and its rules, in processing order.
type Group struct {
	Name  string
	Rules []Rule
}

// Mapping is the ordered set of groups processed by a run.
type Mapping []Group

// SharedSource records a legacy path referenced by more than one Relocate rule.
type SharedSource struct {
	Source string
	Groups []string
}

// Validate checks group names and rule paths.
func (m Mapping) Validate() error {
	if len(m) == 0 {
		return invalid("mapping has no groups")
	}
	seen := make(map[string]struct{}, len(m))
	for i, group := range m {
		name := group.Name
		if err := checkGroupName(name); err != nil {
			return invalid(fmt.Sprintf("group %d: %v", i+1, err))
		}
		if _, ok := seen[name]; ok {
			return invalid(fmt.Sprintf("duplicate group %q", name))
		}
		seen[name] = struct{}{}

		dests := make(map[string]struct{}, len(group.Rules))
		for j, rule := range group.Rules {
			where := fmt.Sprintf("group %q rule %d", name, j+1)
			switch r := rule.(type) {
			case Relocate:
				if err := checkRelative(r.Source); err != nil {
					return invalid(fmt.Sprintf("%s: source: %v", where, err))
				}
			case Synthesize:
			default:
				return invalid(fmt.Sprintf("%s: unsupported rule type %T", where, rule))
			}
			dest := rule.Destination()
			if err := checkRelative(dest); err != nil {
				return invalid(fmt.Sprintf("%s: dest: %v", where, err))
			}
			key := path.Clean(filepath.ToSlash(dest))
			if key == DescriptorFile {
				return invalid(fmt.Sprintf("%s: dest %q is reserved for the group descriptor", where, dest))
			}
			if _, ok := dests[key]; ok {
				return invalid(fmt.Sprintf("%s: duplicate destination %q", where, dest))
			}
			dests[key] = struct{}{}
		}
	}
	return nil
}

// SharedSources lists the sources referenced by more than one Relocate rule, in
// order of first appearance. Groups lists every referencing group, including
// repeats.
func (m Mapping) SharedSources() []SharedSource {
	refs := map[string][]string{}
	var order []string
	for _, group := range m {
		for _, rule := range group.Rules {
			r, ok := rule.(Relocate)
			if !ok {
				continue
			}
			key := path.Clean(filepath.ToSlash(r.Source))
			if _, seen := refs[key]; !seen {
				order = append(order, key)
			}
			refs[key] = append(refs[key], group.Name)
		}
	}
	var shared []SharedSource
	for _, key := range order {
		if groups := refs[key]; len(groups) > 1 {
			shared = append(shared, SharedSource{Source: key, Groups: groups})
		}
	}
	return shared
}

// RuleCount returns the total number of rules across all groups.
func (m Mapping) RuleCount() int {
	total := 0
	for _, group := range m {
		total += len(group.Rules)
	}
	return total
}

func checkGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("name %q has surrounding whitespace", name)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("name %q must be a single directory name", name)
	}
	return nil
}

func checkRelative(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path is empty")
	}
	slashed := filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(slashed, "/") {
		return fmt.Errorf("path %q must be relative", p)
	}
	cleaned := path.Clean(slashed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path %q escapes its root", p)
	}
	return nil
}

func invalid(message string) error {
	return faults.Wrap(faults.ErrValidation, "layout", "validate mapping", message, nil)
}
