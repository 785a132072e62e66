package validation

import (
	"errors"
	"fmt"
	"sort"
)

// Result carries the outcome of a single validation step. A failed result
// always has a non-empty, user-facing Message.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result with the supplied message.
func Fail(message string) Result {
	return Result{Message: message}
}

// Failf formats a failing result.
func Failf(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Err adapts a failed result to an error so it can be handed to prompt
// validators. Passing results return nil.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if r.Message == "" {
		return errors.New("invalid")
	}
	return errors.New(r.Message)
}

// Issue represents a failed validation with optional location metadata.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Group   string `json:"group,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Report aggregates issues across several fields.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// NewReport returns an empty, valid report.
func NewReport() *Report {
	return &Report{Valid: true}
}

// Add records res against field when it failed.
func (r *Report) Add(field string, res Result) {
	if r == nil || res.Valid {
		return
	}
	r.Append(Issue{Field: field, Message: res.Message})
}

// Append records an issue and marks the report invalid.
func (r *Report) Append(issue Issue) {
	if r == nil {
		return
	}
	r.Valid = false
	r.Issues = append(r.Issues, issue)
}

// Messages returns issue messages keyed by field. Later issues for the same
// field win.
func (r *Report) Messages() map[string]string {
	if r == nil || len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = issue.Message
	}
	return out
}

// Sort orders issues by field then message for deterministic output.
func (r *Report) Sort() {
	if r == nil {
		return
	}
	sort.SliceStable(r.Issues, func(i, j int) bool {
		if r.Issues[i].Field == r.Issues[j].Field {
			return r.Issues[i].Message < r.Issues[j].Message
		}
		return r.Issues[i].Field < r.Issues[j].Field
	})
}
