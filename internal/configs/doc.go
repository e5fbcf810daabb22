// Package configs handles the optional per-project envseal configuration.
//
// Configuration lives in .envseal.toml at the project root. Everything has
// a sensible default, so the file only exists when a project wants to
// override one:
//
//	files = [".env", ".env.production"]
//	strict_duplicates = true
//	audit = true
//
// The secret key is deliberately NOT configurable here: it is passed
// explicitly to every operation (flag, key file, or prompt), never read
// from ambient state.
package configs
