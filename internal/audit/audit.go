package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry for one envseal run.
type Entry struct {
	Timestamp string `json:"ts"`  // RFC3339 with microseconds.
	RunID     string `json:"run"` // Unique ID for this invocation.
	Operation string `json:"op"`  // encrypt, rotate, decrypt, status.

	// Optional fields depending on operation.
	Files            []string `json:"files,omitempty"`
	Variables        []string `json:"variables,omitempty"` // Explicitly requested names.
	NewlyEncrypted   int      `json:"newly_encrypted,omitempty"`
	Rotated          int      `json:"rotated,omitempty"`
	SkippedEncrypted int      `json:"skipped_encrypted,omitempty"`
	SkippedEmpty     int      `json:"skipped_empty,omitempty"`
	NotFound         int      `json:"not_found,omitempty"`
	DryRun           bool     `json:"dry_run,omitempty"`
}

// NewEntry creates an entry for an operation with a fresh run ID.
func NewEntry(op string) Entry {
	return Entry{
		RunID:     uuid.NewString(),
		Operation: op,
	}
}

// Log appends an entry to <root>/.envseal/audit.jsonl.
// Logging is best-effort: operations must not fail because the audit log
// could not be written, so failures are silently dropped.
func Log(root string, entry Entry) {
	if root == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	stateDir := filepath.Join(root, ".envseal")
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return
	}

	logPath := filepath.Join(stateDir, "audit.jsonl")

	// #nosec G306 -- audit log contains no secret material, only names and counts.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries parses the audit log under root for display. Malformed lines
// are silently skipped to tolerate partial writes. A missing log file
// yields an empty slice.
func ReadEntries(root string) ([]Entry, error) {
	logPath := filepath.Join(root, ".envseal", "audit.jsonl")

	f, err := os.Open(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}
