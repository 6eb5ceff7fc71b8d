package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"docreorg/internal/faults"
)

// fileMapping is the on-disk TOML shape:
//
//	[[group]]
//	name = "10-introduction"
//
//	[[group.rule]]
//	source = "intro.md"
//	dest = "1-overview.mdx"
//
// A rule without a source is a placeholder.
type fileMapping struct {
	Groups []fileGroup `toml:"group"`
}

type fileGroup struct {
	Name  string     `toml:"name"`
	Rules []fileRule `toml:"rule"`
}

type fileRule struct {
	Source string `toml:"source,omitempty"`
	Dest   string `toml:"dest"`
}

// LoadFile reads and validates a TOML mapping file.
func LoadFile(path string) (Mapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "layout", "open mapping", path, err)
	}
	defer file.Close()

	mapping, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	return mapping, nil
}

// Decode parses a TOML mapping and validates it. Unknown keys are rejected so
// a misspelled "source" does not silently turn a move into a placeholder.
func Decode(r io.Reader) (Mapping, error) {
	var raw fileMapping
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, faults.Wrap(faults.ErrValidation, "layout", "parse mapping", strict.String(), nil)
		}
		return nil, faults.Wrap(faults.ErrValidation, "layout", "parse mapping", "", err)
	}

	mapping := make(Mapping, 0, len(raw.Groups))
	for _, g := range raw.Groups {
		group := Group{Name: g.Name, Rules: make([]Rule, 0, len(g.Rules))}
		for _, r := range g.Rules {
			if strings.TrimSpace(r.Source) == "" {
				group.Rules = append(group.Rules, Synthesize{Dest: r.Dest})
				continue
			}
			group.Rules = append(group.Rules, Relocate{Source: r.Source, Dest: r.Dest})
		}
		mapping = append(mapping, group)
	}
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	return mapping, nil
}

// Encode writes m in the format accepted by Decode.
func Encode(w io.Writer, m Mapping) error {
	raw := fileMapping{Groups: make([]fileGroup, 0, len(m))}
	for _, group := range m {
		g := fileGroup{Name: group.Name, Rules: make([]fileRule, 0, len(group.Rules))}
		for _, rule := range group.Rules {
			fr := fileRule{Dest: rule.Destination()}
			if r, ok := rule.(Relocate); ok {
				fr.Source = r.Source
			}
			g.Rules = append(g.Rules, fr)
		}
		raw.Groups = append(raw.Groups, g)
	}
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(raw); err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
