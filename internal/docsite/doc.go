// Package docsite renders the files the static-site generator reads next to
// the documentation pages: placeholder pages with YAML front matter and the
// per-directory _category_.json navigation descriptor.
package docsite
