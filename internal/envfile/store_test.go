package envfile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	eserrors "github.com/envseal/envseal/internal/errors"
)

func TestParseLines_LineEndings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"unix", "A=1\nB=2", []string{"A=1", "B=2"}},
		{"windows", "A=1\r\nB=2\r\n", []string{"A=1", "B=2", ""}},
		{"mixed", "A=1\r\nB=2\nC=3", []string{"A=1", "B=2", "C=3"}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLines(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLines(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractVariables_Basic(t *testing.T) {
	lines := ParseLines("# database\nDB_HOST=localhost\n\nDB_PASSWORD=hunter2\nAPP_ENV=dev\n")

	vars, warnings := ExtractVariables(lines)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if vars.Len() != 3 {
		t.Fatalf("expected 3 variables, got %d", vars.Len())
	}

	wantOrder := []string{"DB_HOST", "DB_PASSWORD", "APP_ENV"}
	if !reflect.DeepEqual(vars.Keys(), wantOrder) {
		t.Errorf("key order = %v, want %v", vars.Keys(), wantOrder)
	}

	if v, ok := vars.Get("DB_PASSWORD"); !ok || v != "hunter2" {
		t.Errorf("DB_PASSWORD = %q, %v", v, ok)
	}
}

func TestExtractVariables_ValuePreservesEquals(t *testing.T) {
	vars, _ := ExtractVariables([]string{"URL=postgres://u:p@host?sslmode=disable"})
	if v, _ := vars.Get("URL"); v != "postgres://u:p@host?sslmode=disable" {
		t.Errorf("split must happen at the first '=' only, got %q", v)
	}
}

func TestExtractVariables_SkipsMalformedLines(t *testing.T) {
	lines := []string{
		"VALID=1",
		"no separator here",
		"9BAD_KEY=2",
		"BAD-KEY=3",
		"_OK=4",
	}

	vars, warnings := ExtractVariables(lines)
	if vars.Len() != 2 {
		t.Errorf("expected 2 variables, got %d (%v)", vars.Len(), vars.Keys())
	}
	if _, ok := vars.Get("_OK"); !ok {
		t.Error("underscore-led key should be accepted")
	}
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestExtractVariables_RejectsWhitespaceAroundKey(t *testing.T) {
	// A key with trailing whitespace must not alias the bare identifier:
	// extraction surfacing DB_PASSWORD while UpdateLine only matches
	// "DB_PASSWORD=" would append a second line and keep the original
	// value in plaintext.
	lines := []string{"DB_PASSWORD =hunter2", " SPACED = x"}

	vars, warnings := ExtractVariables(lines)
	if vars.Len() != 0 {
		t.Errorf("spaced keys must be rejected, got: %v", vars.Keys())
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 invalid-key warnings, got: %v", warnings)
	}

	updated := UpdateLine(lines, "DB_PASSWORD", "ENC2:fake")
	if updated[0] != "DB_PASSWORD =hunter2" {
		t.Errorf("UpdateLine must not match the spaced key, got %q", updated[0])
	}
}

func TestVariableMap_Value(t *testing.T) {
	vars, _ := ExtractVariables([]string{"A=1", "EMPTY="})

	if v, err := vars.Value("A"); err != nil || v != "1" {
		t.Errorf("Value(A) = %q, %v", v, err)
	}
	if _, err := vars.Value("EMPTY"); !errors.Is(err, eserrors.ErrEmptyValue) {
		t.Errorf("expected ErrEmptyValue, got: %v", err)
	}
	if _, err := vars.Value("MISSING"); !errors.Is(err, eserrors.ErrVariableNotFound) {
		t.Errorf("expected ErrVariableNotFound, got: %v", err)
	}
}

func TestExtractVariables_DuplicateLastWins(t *testing.T) {
	lines := []string{"KEY=first", "KEY=second"}

	vars, warnings := ExtractVariables(lines)
	if v, _ := vars.Get("KEY"); v != "second" {
		t.Errorf("duplicate key: got %q, want later value", v)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Text, "duplicate") {
		t.Errorf("expected one duplicate warning, got: %v", warnings)
	}
	if vars.Len() != 1 {
		t.Errorf("duplicate key counted twice: %v", vars.Keys())
	}
}

func TestExtractVariablesStrict_RejectsDuplicates(t *testing.T) {
	_, _, err := ExtractVariablesStrict([]string{"KEY=first", "KEY=second"})
	if !errors.Is(err, eserrors.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got: %v", err)
	}

	vars, _, err := ExtractVariablesStrict([]string{"A=1", "B=2"})
	if err != nil {
		t.Fatalf("strict parse of clean file failed: %v", err)
	}
	if vars.Len() != 2 {
		t.Errorf("expected 2 variables, got %d", vars.Len())
	}
}

func TestUpdateLine_ReplacesInPlace(t *testing.T) {
	lines := []string{"# comment", "A=1", "", "B=2", ""}

	updated := UpdateLine(lines, "B", "ENC2:xxxx")
	want := []string{"# comment", "A=1", "", "B=ENC2:xxxx", ""}
	if !reflect.DeepEqual(updated, want) {
		t.Errorf("UpdateLine = %v, want %v", updated, want)
	}

	// Original slice untouched.
	if lines[3] != "B=2" {
		t.Error("UpdateLine mutated its input")
	}
}

func TestUpdateLine_ReplacesIndentedLine(t *testing.T) {
	updated := UpdateLine([]string{"  A=1"}, "A", "new")
	if updated[0] != "A=new" {
		t.Errorf("indented line not replaced, got %q", updated[0])
	}
}

func TestUpdateLine_DoesNotMatchPrefixKeys(t *testing.T) {
	updated := UpdateLine([]string{"DB_PASS_OLD=x", "DB_PASS=y"}, "DB_PASS", "new")
	if updated[0] != "DB_PASS_OLD=x" {
		t.Error("UpdateLine replaced a different key with a shared prefix")
	}
	if updated[1] != "DB_PASS=new" {
		t.Errorf("target line not replaced, got %q", updated[1])
	}
}

func TestUpdateLine_ReplacesAllDuplicates(t *testing.T) {
	// Extraction is last-wins, so every occurrence must be rewritten or
	// the effective value would survive in plaintext.
	updated := UpdateLine([]string{"A=1", "B=2", "A=3"}, "A", "ENC2:fake")
	want := []string{"A=ENC2:fake", "B=2", "A=ENC2:fake"}
	if !reflect.DeepEqual(updated, want) {
		t.Errorf("UpdateLine = %v, want %v", updated, want)
	}
}

func TestUpdateLine_AppendsWhenMissing(t *testing.T) {
	// File ending with a newline keeps the trailing empty element last.
	updated := UpdateLine([]string{"A=1", ""}, "B", "2")
	want := []string{"A=1", "B=2", ""}
	if !reflect.DeepEqual(updated, want) {
		t.Errorf("UpdateLine = %v, want %v", updated, want)
	}

	// File without a trailing newline appends directly.
	updated = UpdateLine([]string{"A=1"}, "B", "2")
	want = []string{"A=1", "B=2"}
	if !reflect.DeepEqual(updated, want) {
		t.Errorf("UpdateLine = %v, want %v", updated, want)
	}
}

func TestUpdateLine_Idempotent(t *testing.T) {
	lines := []string{"A=1"}
	once := UpdateLine(lines, "A", "same")
	twice := UpdateLine(once, "A", "same")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second update changed the lines: %v vs %v", once, twice)
	}
}

func TestRender(t *testing.T) {
	if got := Render([]string{"A=1", "B=2"}); got != "A=1\nB=2\n" {
		t.Errorf("Render = %q", got)
	}
	if got := Render([]string{"A=1", "B=2", ""}); got != "A=1\nB=2\n" {
		t.Errorf("Render with trailing empty = %q", got)
	}
}

func TestParseRenderPreservesStructure(t *testing.T) {
	raw := "# header comment\n\nA=1\n# inline note\nB=2\n"
	lines := ParseLines(raw)
	if got := Render(lines); got != raw {
		t.Errorf("parse/render round trip changed content:\n got %q\nwant %q", got, raw)
	}
}
