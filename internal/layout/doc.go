// Package layout describes where documentation files go.
//
// A Mapping is an ordered list of groups, one per target section directory.
// Each group carries typed rules: Relocate moves an existing legacy file into
// the section and Synthesize stands in a placeholder page. The built-in
// presets reproduce the two historical workshop layouts, and LoadFile reads
// the same shape from TOML so callers can supply their own table.
//
// Validation rejects malformed tables up front. Sources shared by several
// Relocate rules are allowed but reported by SharedSources: only the first
// move can succeed and later references will find nothing.
package layout
