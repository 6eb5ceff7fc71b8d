package layout

import (
	"fmt"
	"sort"
	"strings"

	"docreorg/internal/faults"
)

const (
	// PresetRestructure files section folders into their final names and stands
	// in placeholders for pages that do not exist yet.
	PresetRestructure = "restructure"
	// PresetOrganize distributes the flat legacy workshop files into sections.
	PresetOrganize = "organize"
)

var presets = map[string]func() Mapping{
	PresetRestructure: Restructure,
	PresetOrganize:    Organize,
}

// Preset returns the built-in mapping registered under name.
func Preset(name string) (Mapping, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	build, ok := presets[key]
	if !ok {
		return nil, faults.Wrap(
			faults.ErrValidation,
			"layout",
			"resolve preset",
			fmt.Sprintf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", ")),
			nil,
		)
	}
	return build(), nil
}

// PresetNames lists the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Restructure is the layout that renames the numbered section folders and
// fills gaps with placeholders.
func Restructure() Mapping {
	return Mapping{
		{Name: "10-introduction", Rules: []Rule{
			Relocate{Source: "10-Introduction/01-introduction.md", Dest: "1-overview.mdx"},
			Relocate{Source: "installation.md", Dest: "2-prerequisites.mdx"},
		}},
		{Name: "20-mongodb-atlas", Rules: []Rule{
			Relocate{Source: "20-mongodb-atlas/3-create-cluster.mdx", Dest: "3-create-cluster.mdx"},
			Synthesize{Dest: "1-what-is-mongodb.mdx"},
			Synthesize{Dest: "2-create-account.mdx"},
		}},
		{Name: "30-rag-concepts", Rules: []Rule{
			Relocate{Source: "30-RAG-Concepts/1-rag-concepts.md", Dest: "1-introduction.mdx"},
			Relocate{Source: "30-RAG-Concepts/2-how-rag-works.mdx", Dest: "2-how-rag-works.mdx"},
		}},
		{Name: "40-mongodb-rag", Rules: []Rule{
			Relocate{Source: "40-MongoDB-RAG/1-Introduction.md", Dest: "1-introduction.mdx"},
			Synthesize{Dest: "2-setup-mongodb.mdx"},
			Relocate{Source: "40-MongoDB-RAG/3-create-embeddings.mdx", Dest: "3-create-embeddings.mdx"},
		}},
		{Name: "50-build-rag-app", Rules: []Rule{
			Relocate{Source: "50-build-rag-app/1-introduction.mdx", Dest: "1-introduction.mdx"},
			Synthesize{Dest: "2-ingest-documents.mdx"},
			Relocate{Source: "50-build-rag-app/3-perform-vector-search.mdx", Dest: "3-perform-vector-search.mdx"},
			Synthesize{Dest: "4-integrate-llm.mdx"},
		}},
		{Name: "60-advanced-techniques", Rules: []Rule{
			Synthesize{Dest: "1-introduction.mdx"},
			Synthesize{Dest: "2-hybrid-search.mdx"},
			Synthesize{Dest: "3-metadata-filtering.mdx"},
			Synthesize{Dest: "4-query-expansion.mdx"},
		}},
		{Name: "70-production-deployment", Rules: []Rule{
			Relocate{Source: "70-production-deployment/1-introduction.mdx", Dest: "1-introduction.mdx"},
			Synthesize{Dest: "2-scaling.mdx"},
			Synthesize{Dest: "3-monitoring.mdx"},
			Synthesize{Dest: "4-cost-optimization.mdx"},
		}},
	}
}

// Organize is the first-pass layout that sorts the flat legacy pages into
// sections. Several legacy pages feed more than one section; see
// Mapping.SharedSources.
func Organize() Mapping {
	return Mapping{
		{Name: "10-introduction", Rules: []Rule{
			Relocate{Source: "intro.md", Dest: "1-overview.mdx"},
			Relocate{Source: "installation.md", Dest: "2-prerequisites.mdx"},
		}},
		{Name: "20-mongodb-atlas", Rules: []Rule{
			Relocate{Source: "setup-mongodb.md", Dest: "1-what-is-mongodb.mdx"},
			Relocate{Source: "20-mongodb-atlas/1-what-is-mongodb.mdx", Dest: "2-create-account.mdx"},
			Relocate{Source: "20-mongodb-atlas/2-create-account.mdx", Dest: "3-create-cluster.mdx"},
		}},
		{Name: "30-rag-concepts", Rules: []Rule{
			Relocate{Source: "rag-concepts.md", Dest: "1-intro.mdx"},
			Relocate{Source: "understanding-hybrid-search.md", Dest: "2-how-rag-works.mdx"},
		}},
		{Name: "40-mongodb-rag", Rules: []Rule{
			Relocate{Source: "create-rag-app.md", Dest: "1-introduction.mdx"},
			Relocate{Source: "setup-mongodb.md", Dest: "2-setup-mongodb.mdx"},
			Relocate{Source: "create-embeddings.md", Dest: "3-create-embeddings.mdx"},
		}},
		{Name: "50-build-rag-app", Rules: []Rule{
			Relocate{Source: "build-rag-app.md", Dest: "1-introduction.mdx"},
			Relocate{Source: "create-embeddings.md", Dest: "2-ingest-documents.mdx"},
			Relocate{Source: "advanced-techniques.md", Dest: "3-perform-vector-search.mdx"},
		}},
		{Name: "60-advanced-techniques", Rules: []Rule{
			Relocate{Source: "advanced-techniques.md", Dest: "1-introduction.mdx"},
			Relocate{Source: "understanding-hybrid-search.md", Dest: "2-hybrid-search.mdx"},
		}},
		{Name: "70-production-deployment", Rules: []Rule{
			Relocate{Source: "production-deployment.md", Dest: "1-introduction.mdx"},
		}},
	}
}
