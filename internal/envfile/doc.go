// Package envfile provides a key-value abstraction over line-oriented env
// files, plus discovery and atomic persistence.
//
// The package separates pure text transforms from OS-facing I/O. ParseLines,
// ExtractVariables, UpdateLine, and Render operate on in-memory line
// sequences only; ReadFile and WriteFileAtomic are the storage collaborator.
// The encryption workflow reads the file fresh per run, mutates lines in
// memory, and writes back atomically only when something changed.
//
// Comment lines, blank lines, and key ordering are preserved verbatim
// across a rewrite. Malformed lines (no '=', or an invalid key) stay in the
// file but are excluded from the variable map.
package envfile
