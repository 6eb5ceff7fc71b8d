// Package faults defines the error markers shared by every docreorg package.
//
// Errors are tagged with one of the exported sentinels through Wrap so the CLI
// can classify failures with errors.Is and choose an exit status without
// string matching. Missing sources are not errors and never pass through here.
package faults
