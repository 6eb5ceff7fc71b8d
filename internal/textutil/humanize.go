package textutil

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize replaces hyphens with spaces and title-cases every word. Letters
// after the first in each word are lowercased, and numeric prefixes are kept
// as-is ("40-MongoDB-RAG" becomes "40 Mongodb Rag").
func Humanize(slug string) string {
	spaced := strings.ReplaceAll(strings.TrimSpace(slug), "-", " ")
	return cases.Title(language.Und).String(spaced)
}

// StripExt returns the base name of path without its final extension.
func StripExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
