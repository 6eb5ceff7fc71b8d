package docsite

import (
	"bytes"
	"encoding/json"

	"docreorg/internal/layout"
	"docreorg/internal/textutil"
)

// CategoryFile is the descriptor file name written into every group directory.
// Mapping validation reserves the same name.
const CategoryFile = layout.DescriptorFile

// Category controls how a directory appears in the generated sidebar.
type Category struct {
	Label       string `json:"label"`
	Collapsible bool   `json:"collapsible"`
	Collapsed   bool   `json:"collapsed"`
}

// NewCategory derives the descriptor for a group directory name.
func NewCategory(group string) Category {
	return Category{
		Label:       textutil.Humanize(group),
		Collapsible: true,
		Collapsed:   true,
	}
}

// Marshal renders the descriptor as JSON indented with two spaces.
func (c Category) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
