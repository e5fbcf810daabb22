package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// A Style renders semantically tagged CLI text. With color available the
// tag is a terminal color; without it, some styles fall back to a plain
// text decoration (backticks for commands, quotes for user values) so the
// distinction survives logs and NO_COLOR terminals.
type Style struct {
	color *color.Color
	plain string // fmt template applied without color; "" means bare text
}

// Sprint renders the arguments in this style.
func (s Style) Sprint(a ...interface{}) string {
	return s.render(fmt.Sprint(a...))
}

// Sprintf renders the format string in this style.
func (s Style) Sprintf(format string, a ...interface{}) string {
	return s.render(fmt.Sprintf(format, a...))
}

func (s Style) render(text string) string {
	if colorDisabled() {
		if s.plain == "" {
			return text
		}
		return fmt.Sprintf(s.plain, text)
	}
	return s.color.Sprint(text)
}

// colorDisabled honors NO_COLOR (https://no-color.org/) on top of
// fatih/color's own terminal detection (TTY, TERM=dumb).
func colorDisabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Code marks runnable commands, like `envseal keygen`.
	Code = Style{color.New(color.FgYellow), "`%s`"}

	// Path marks file and directory paths.
	Path = Style{color.New(color.FgYellow), ""}

	// Success, Warning and Info mark result indicators and hints.
	Success = Style{color.New(color.FgGreen), ""}
	Warning = Style{color.New(color.FgYellow), ""}
	Info    = Style{color.New(color.FgCyan), ""}

	// Highlight marks user-supplied values such as variable names.
	Highlight = Style{color.New(color.FgCyan), "'%s'"}

	// Muted marks secondary detail like skip counts.
	Muted = Style{color.New(color.FgHiBlack), "(%s)"}
)

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
