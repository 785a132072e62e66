package formspec_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/formspec"
	"github.com/goliatone/go-maskfield/pkg/group"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

func loadContact(t *testing.T) formspec.Form {
	t.Helper()
	form, err := formspec.LoadFile(filepath.Join(testdataRoot(), "forms", "contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return form
}

func TestEvaluate_CollectsIssuesAndGroups(t *testing.T) {
	eval := formspec.Evaluate(loadContact(t), map[string]string{
		"full_name": "mary-jane o'connor",
		"phone":     "5551234567",
		"age":       "70",
		"state":     "ny",
		"zip":       "9021",
	})

	if eval.Valid {
		t.Fatalf("expected invalid evaluation")
	}
	wantValues := map[string]string{
		"full_name": "Mary-Jane O'Connor",
		"phone":     "(555) 123-4567",
		"age":       "70",
		"state":     "NY",
		"zip":       "9021",
	}
	if diff := cmp.Diff(wantValues, eval.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantReport := &validation.Report{
		Valid: false,
		Issues: []validation.Issue{
			{Field: "age", Group: "contact", Value: "70", Message: "Age cannot exceed 65"},
			{Field: "zip", Group: "address", Value: "9021", Message: "Incomplete Zip Code"},
		},
	}
	if diff := cmp.Diff(wantReport, eval.Report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}

	wantGroups := []group.Status{
		{Group: "address", Fields: 2, Invalid: 1},
		{Group: "contact", Fields: 3, Invalid: 1},
	}
	if diff := cmp.Diff(wantGroups, eval.Groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_Valid(t *testing.T) {
	eval := formspec.Evaluate(loadContact(t), map[string]string{
		"full_name": "Ada Lovelace",
		"phone":     "(555) 123-4567",
		"age":       "36",
	})
	if !eval.Valid {
		t.Fatalf("expected valid evaluation, got %+v", eval.Report.Issues)
	}
	if eval.Values["state"] != "" || eval.Values["zip"] != "" {
		t.Fatalf("optional fields should stay empty: %+v", eval.Values)
	}
}

func TestEvaluate_RequiredEntry(t *testing.T) {
	form, err := formspec.LoadFile(filepath.Join(testdataRoot(), "forms", "survey.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	eval := formspec.Evaluate(form, map[string]string{"satisfaction": "12.5"})
	if eval.Values["satisfaction"] != "12.50%" {
		t.Fatalf("percent = %q", eval.Values["satisfaction"])
	}
	if got := eval.Report.Messages()["visit_date"]; got != "Required Entry" {
		t.Fatalf("visit_date message = %q", got)
	}
}
