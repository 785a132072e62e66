package formspec

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
)

// Violation is a lint finding.
type Violation struct {
	File     string `json:"file"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s -> %s", v.File, v.Location, v.Message)
}

// Lint checks forms for blank or duplicate names, unknown types, bad
// template overrides and seed values that fail validation. Violations are
// sorted by file, location and message.
func Lint(forms ...Form) []Violation {
	var out []Violation
	for _, form := range forms {
		out = append(out, lintForm(form)...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].File == out[j].File {
			if out[i].Location == out[j].Location {
				return out[i].Message < out[j].Message
			}
			return out[i].Location < out[j].Location
		}
		return out[i].File < out[j].File
	})
	return out
}

func lintForm(form Form) []Violation {
	var out []Violation
	add := func(location, format string, args ...any) {
		out = append(out, Violation{
			File:     form.Source,
			Location: location,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	seen := make(map[string]int, len(form.Fields))
	for idx, spec := range form.Fields {
		location := fmt.Sprintf("form %s field %s", form.ID, spec.Name)
		if spec.Name == "" {
			add(fmt.Sprintf("form %s field #%d", form.ID, idx), "field name is empty")
			continue
		}
		if prev, dup := seen[spec.Name]; dup {
			add(location, "duplicate field name (first at #%d)", prev)
		} else {
			seen[spec.Name] = idx
		}

		t, err := spec.FieldType()
		if err != nil {
			add(location, "%v", err)
			continue
		}
		if res := t.ValidateConfiguration(); !res.Valid {
			add(location, "type %s: %s", t, res.Message)
		}
		if spec.Template != "" {
			if res := mask.ValidateConfiguration(spec.Template, t.Placeholders()); !res.Valid {
				add(location, "template %q: %s", spec.Template, res.Message)
			}
		}
		if spec.Value != "" {
			f, text, state := settle(spec, form, nil)
			f.Close()
			if !state.Valid() {
				add(location, "value %q: %s", text, state.Message())
			}
		}
	}
	return out
}

// settle drives a field through focus, the value and focus loss, returning
// the field with its final text and state. Callers close the field.
func settle(spec Field, form Form, agg field.Aggregator) (*field.Field, string, field.State) {
	t, _ := spec.FieldType()
	opts := []field.Option{
		field.WithID(spec.Name),
		field.WithRequired(spec.Required),
		field.WithTemplate(spec.Template),
	}
	if agg != nil {
		opts = append(opts, field.WithGroup(groupFor(spec, form), agg))
	}
	f := field.New(t, opts...)
	f.SetFocus(true)
	f.SetText(spec.Value)
	change := f.SetFocus(false)
	return f, change.Snapshot.Text, change.Snapshot.State
}

func groupFor(spec Field, form Form) string {
	if g := spec.GroupName(form); g != "" {
		return g
	}
	return form.ID
}
