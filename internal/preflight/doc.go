// Package preflight provides readiness checks for the filesystem roots a run
// works against.
//
// The CLI "docreorg check" command runs them before any files are touched so
// an unreadable source tree or an unwritable destination is reported up front
// instead of halfway through a run, where nothing is rolled back.
package preflight
