// Package infer picks a field type for form fields that do not name one,
// using name, format and bound hints. Rules are ordered by priority and can
// be extended by callers.
package infer
