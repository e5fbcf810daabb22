// Package ui styles CLI output by meaning rather than by color name.
//
// Each Style pairs a terminal color with a plain-text fallback, so output
// stays readable when NO_COLOR is set or the terminal cannot render color:
//
//	ui.Code.Sprint("envseal keygen")   // yellow, or `backticks`
//	ui.Highlight.Sprint("DB_PASSWORD") // cyan, or 'quotes'
//	ui.Muted.Sprint("3 skipped")       // gray, or (parentheses)
//
// Indicator styles (Success, Warning, Info) and Path render bare text
// without color, since ✓/⚠/→ and file paths carry their own meaning.
package ui
