// Package audit provides audit trail logging for envseal operations.
//
// Every run that touches a secrets file (encrypt, rotate, decrypt) is
// recorded in a project-level log, so teams can see when values were
// protected or rotated and with what outcome.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	.envseal/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - A unique run ID
//   - Operation name
//   - Files touched and per-variable outcome counts
//
// No secret material is ever logged: only variable names and counts.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
