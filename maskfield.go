// Package maskfield formats and validates masked text inputs such as phone
// numbers, dates, card numbers and currency amounts.
//
// The root package is a thin entry point over the pkg/ packages: fieldtype
// holds the type catalogue, field the per-input state machine, group the
// aggregate validity of related fields and formspec the form definitions.
package maskfield

import (
	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/fieldtype"
	"github.com/goliatone/go-maskfield/pkg/formspec"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// Field aliases field.Field for callers that only import the root package.
type Field = field.Field

// Type aliases fieldtype.Type.
type Type = fieldtype.Type

// Result aliases validation.Result.
type Result = validation.Result

// Outcome is a value after the full focus-loss sequence.
type Outcome struct {
	Text     string `json:"text"`
	Template string `json:"template"`
	Result   Result `json:"result"`
	// Finalized is false when live validation stopped the sequence and Text
	// is the value as typed.
	Finalized bool `json:"finalized"`
}

// NewField creates a field from a textual type spec such as "phone" or
// "age(18,65)".
func NewField(spec string, opts ...field.Option) (*Field, error) {
	t, err := fieldtype.Parse(spec)
	if err != nil {
		return nil, err
	}
	return field.New(t, opts...), nil
}

// Format returns the display text of raw while it is being typed.
func Format(spec, raw string) (string, error) {
	t, err := fieldtype.Parse(spec)
	if err != nil {
		return "", err
	}
	text, _ := field.DisplayText(t, raw, "")
	return text, nil
}

// Finalize runs raw through focus gain, typing and focus loss.
func Finalize(spec, raw string) (Outcome, error) {
	f, err := NewField(spec)
	if err != nil {
		return Outcome{}, err
	}
	defer f.Close()

	f.SetFocus(true)
	f.SetText(raw)
	change := f.SetFocus(false)
	snap := change.Snapshot
	return Outcome{
		Text:      snap.Text,
		Template:  snap.Template,
		Result:    Result{Valid: snap.State.Valid(), Message: snap.State.Message()},
		Finalized: snap.Finalized,
	}, nil
}

// Validate reports whether raw is acceptable once the user leaves the field.
func Validate(spec, raw string) (Result, error) {
	out, err := Finalize(spec, raw)
	if err != nil {
		return Result{}, err
	}
	return out.Result, nil
}

// ValidateLive checks raw as a partially typed value.
func ValidateLive(spec, raw string) (Result, error) {
	t, err := fieldtype.Parse(spec)
	if err != nil {
		return Result{}, err
	}
	text, _ := field.DisplayText(t, raw, "")
	return t.ValidateLive(text), nil
}

// LoadForm reads a JSON, YAML or TOML form definition.
func LoadForm(path string, opts ...formspec.Option) (formspec.Form, error) {
	return formspec.LoadFile(path, opts...)
}

// EvaluateFile loads a form and evaluates values against it.
func EvaluateFile(path string, values map[string]string, opts ...formspec.Option) (formspec.Evaluation, error) {
	form, err := formspec.LoadFile(path, opts...)
	if err != nil {
		return formspec.Evaluation{}, err
	}
	return formspec.Evaluate(form, values), nil
}
