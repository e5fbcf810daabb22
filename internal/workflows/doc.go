// Package workflows implements the operations behind envseal commands.
//
// Each workflow takes an Options struct and returns a Result struct, so the
// CLI layer owns all terminal output and the workflow owns all logic. The
// secret key arrives as an explicit field on the options; workflows never
// consult process environment variables for it.
//
// Processing is sequential per invocation: variables within one file are
// handled one at a time, in file order, because each one pays a deliberate
// memory-hard key derivation and deterministic ordering keeps rewritten
// files diffable. Concurrent runs against the same file are not
// coordinated here; last writer wins on the full-file overwrite.
package workflows
