package envfile

import (
	"fmt"
	"regexp"
	"strings"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// keyPattern is the identifier pattern env variable keys must match.
var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Warning describes a non-fatal problem found while parsing an env file.
// Malformed lines are preserved verbatim in the line sequence but excluded
// from the variable map.
type Warning struct {
	Line int
	Text string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Text)
}

// VariableMap holds key to raw value mappings extracted from an env file,
// preserving the order keys first appear in.
type VariableMap struct {
	keys   []string
	values map[string]string
}

// Get returns the raw value for key and whether the key exists.
func (m *VariableMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the raw value for key, ErrVariableNotFound when the key is
// absent, and ErrEmptyValue when it is present but empty.
func (m *VariableMap) Value(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", eserrors.ErrVariableNotFound, key)
	}
	if v == "" {
		return "", fmt.Errorf("%w: %s", eserrors.ErrEmptyValue, key)
	}
	return v, nil
}

// Keys returns the variable names in file order.
func (m *VariableMap) Keys() []string {
	return m.keys
}

// Len returns the number of distinct keys.
func (m *VariableMap) Len() int {
	return len(m.keys)
}

func (m *VariableMap) set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// ParseLines splits raw env file content into lines. Both \n and \r\n line
// endings are accepted; the \r is stripped so rewrites normalize to \n.
func ParseLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ExtractVariables builds a VariableMap from parsed lines. Blank and
// #-comment lines are skipped. Lines without =, or with a key failing the
// identifier pattern, produce a Warning and are skipped without failing the
// parse. On duplicate keys the later value wins, with a Warning.
func ExtractVariables(lines []string) (*VariableMap, []Warning) {
	vars, warnings, _ := extract(lines, false)
	return vars, warnings
}

// ExtractVariablesStrict is ExtractVariables with duplicate keys promoted
// from a warning to ErrDuplicateKey. Last-occurrence-wins is convenient but
// easy to ship by accident; strict mode exists for projects that want to
// reject it outright.
func ExtractVariablesStrict(lines []string) (*VariableMap, []Warning, error) {
	return extract(lines, true)
}

func extract(lines []string, strict bool) (*VariableMap, []Warning, error) {
	vars := &VariableMap{values: make(map[string]string)}
	var warnings []Warning

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		idx := strings.Index(trimmed, "=")
		if idx < 0 {
			warnings = append(warnings, Warning{Line: i + 1, Text: "no '=' separator, line skipped"})
			continue
		}

		// The key is taken verbatim: "KEY =value" must fail the identifier
		// pattern rather than alias KEY, or a later UpdateLine("KEY", ...)
		// would append a second line and strand the original in plaintext.
		key := trimmed[:idx]
		value := trimmed[idx+1:]

		if !keyPattern.MatchString(key) {
			warnings = append(warnings, Warning{Line: i + 1, Text: fmt.Sprintf("invalid key %q, line skipped", key)})
			continue
		}

		if _, exists := vars.Get(key); exists {
			if strict {
				return nil, warnings, fmt.Errorf("%w: %s (line %d)", eserrors.ErrDuplicateKey, key, i+1)
			}
			warnings = append(warnings, Warning{Line: i + 1, Text: fmt.Sprintf("duplicate key %q, later value wins", key)})
		}

		vars.set(key, value)
	}

	return vars, warnings, nil
}

// UpdateLine returns lines with every line whose trimmed form starts with
// "key=" replaced by "key=newValue". All occurrences are replaced because
// extraction is last-occurrence-wins: rewriting only one duplicate would
// leave the effective value behind in plaintext. If no such line exists the
// pair is appended as a new line.
func UpdateLine(lines []string, key, newValue string) []string {
	updated := make([]string, len(lines))
	copy(updated, lines)

	newLine := key + "=" + newValue
	replaced := false
	for i, line := range updated {
		if strings.HasPrefix(strings.TrimSpace(line), key+"=") {
			updated[i] = newLine
			replaced = true
		}
	}
	if replaced {
		return updated
	}

	// Key absent: append, keeping any trailing empty element (which
	// represents the file's final newline) at the end.
	if n := len(updated); n > 0 && updated[n-1] == "" {
		updated = append(updated[:n-1], newLine, "")
		return updated
	}
	return append(updated, newLine)
}

// Render joins lines back into file content, guaranteeing a trailing
// newline.
func Render(lines []string) string {
	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}
