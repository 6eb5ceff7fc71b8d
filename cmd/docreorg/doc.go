// Package main hosts the docreorg CLI entrypoint and command graph.
//
// Running docreorg with no subcommand applies the configured mapping to the
// documentation tree. The remaining commands inspect the mapping, report
// progress on placeholders, run preflight checks, and scaffold configuration.
// Configuration resolution, mapping selection, and logger setup live in
// commandContext so subcommands only render results.
package main
