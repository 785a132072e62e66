// Package group tracks field validity by group. Manager implements
// field.Aggregator: fields push updates fire-and-forget, callers query
// Verify, Count and AllValid, and an optional listener receives batched
// group summaries. A background reaper drops fields that stopped reporting.
package group
