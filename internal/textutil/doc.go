// Package textutil derives human-readable labels from the slug-style names used
// for documentation groups and pages.
//
// Group directories and page files are named like "10-introduction" or
// "2-hybrid-search.mdx". Humanize turns those into navigation labels and page
// titles ("10 Introduction", "2 Hybrid Search") the same way for every caller,
// so descriptors and placeholders never disagree about a name.
package textutil
