// Package utils provides small helpers shared between commands: secret key
// sourcing (key file, piped stdin, or hidden TTY prompt) and terminal
// detection.
package utils
