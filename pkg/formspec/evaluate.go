package formspec

import (
	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/group"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// Evaluation is the outcome of submitting values to a form.
type Evaluation struct {
	FormID string             `json:"form"`
	Valid  bool               `json:"valid"`
	Values map[string]string  `json:"values"`
	Report *validation.Report `json:"report"`
	Groups []group.Status     `json:"groups"`
}

// Evaluate runs every field of form through focus, its submitted value and
// focus loss, then collects the final texts, issues and group summaries.
// Fields missing from values are treated as left empty.
func Evaluate(form Form, values map[string]string) Evaluation {
	mgr := group.New()
	defer func() { _ = mgr.Stop() }()

	var fields []*field.Field
	defer func() {
		for _, f := range fields {
			f.Close()
		}
	}()

	eval := Evaluation{
		FormID: form.ID,
		Values: make(map[string]string, len(form.Fields)),
		Report: validation.NewReport(),
	}

	for _, spec := range form.Fields {
		grp := groupFor(spec, form)
		if _, err := spec.FieldType(); err != nil {
			eval.Report.Append(validation.Issue{Field: spec.Name, Group: grp, Message: err.Error()})
			mgr.Update(grp, spec.Name, false)
			continue
		}

		spec.Value = values[spec.Name]
		f, text, state := settle(spec, form, mgr)
		fields = append(fields, f)
		eval.Values[spec.Name] = text
		if !state.Valid() {
			eval.Report.Append(validation.Issue{
				Field:   spec.Name,
				Group:   grp,
				Value:   text,
				Message: state.Message(),
			})
		}
	}

	eval.Report.Sort()
	eval.Valid = eval.Report.Valid && mgr.AllValid()
	eval.Groups = mgr.Snapshot()
	return eval
}
