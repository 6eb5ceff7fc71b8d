// Package reorganizer applies a layout.Mapping to a documentation tree.
//
// A run walks the mapping in order. For every group it ensures the section
// directory, relocates or synthesizes each page, and rewrites the section's
// category descriptor. Relocation is destructive to the source; placeholder
// creation never clobbers an existing page; descriptors are always
// overwritten. Those three rules make repeated runs converge on the same tree
// without tracking any state between runs.
//
// A missing source is reported and skipped. Filesystem failures abort the run
// with an error marked faults.ErrIO and nothing already applied is rolled back.
// Every action is written as one human-readable line to the trace writer and
// recorded in the returned Report.
package reorganizer
