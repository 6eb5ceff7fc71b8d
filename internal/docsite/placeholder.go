package docsite

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"docreorg/internal/textutil"
)

// PlaceholderBody is the page body written for content that has not been
// authored yet.
const PlaceholderBody = "Coming soon..."

// FrontMatter is the header block of a placeholder page.
type FrontMatter struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// NewFrontMatter derives the id and title for a destination file name.
func NewFrontMatter(dest string) FrontMatter {
	id := textutil.StripExt(dest)
	return FrontMatter{ID: id, Title: textutil.Humanize(id)}
}

// Placeholder renders the placeholder page for dest.
func Placeholder(dest string) ([]byte, error) {
	header, err := yaml.Marshal(NewFrontMatter(dest))
	if err != nil {
		return nil, fmt.Errorf("encode front matter for %s: %w", dest, err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(PlaceholderBody)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// parseFrontMatter decodes the front matter block at the top of page and
// returns the remaining body. It reports false when the page does not start
// with a "---" delimited block.
func parseFrontMatter(page []byte) (FrontMatter, []byte, bool, error) {
	header, body, ok := splitFrontMatter(page)
	if !ok {
		return FrontMatter{}, nil, false, nil
	}
	var fm FrontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return FrontMatter{}, body, true, fmt.Errorf("decode front matter: %w", err)
	}
	return fm, body, true, nil
}

// IsPlaceholder reports whether page is still the stand-in written by
// Placeholder: valid front matter with an id, and a body that is only
// PlaceholderBody once surrounding whitespace is ignored.
func IsPlaceholder(page []byte) bool {
	fm, body, ok, err := parseFrontMatter(page)
	if !ok || err != nil || fm.ID == "" {
		return false
	}
	return string(bytes.TrimSpace(body)) == PlaceholderBody
}

func splitFrontMatter(page []byte) (header, body []byte, ok bool) {
	const delim = "---\n"
	if !bytes.HasPrefix(page, []byte(delim)) {
		return nil, nil, false
	}
	rest := page[len(delim):]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return nil, nil, false
	}
	return rest[:end+1], rest[end+1+len(delim):], true
}
