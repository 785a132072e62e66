package maskfield

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		spec string
		raw  string
		want string
	}{
		{"phone", "5551234", "(555) 123-4"},
		{"zip", "90210-1234", "90210"},
		{"name", "ada lovelace", "Ada Lovelace"},
		{"currency", "1234", "$1234"},
	}
	for _, tc := range cases {
		got, err := Format(tc.spec, tc.raw)
		if err != nil {
			t.Fatalf("Format(%q, %q): %v", tc.spec, tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%q, %q) = %q, want %q", tc.spec, tc.raw, got, tc.want)
		}
	}
}

func TestFormat_UnknownType(t *testing.T) {
	if _, err := Format("barcode", "1"); !errors.Is(err, fieldtype.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestFinalize(t *testing.T) {
	got, err := Finalize("currency", "1234")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	want := Outcome{Text: "$1234.00", Template: "$0000.00", Result: Result{Valid: true}, Finalized: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		spec string
		raw  string
		want Result
	}{
		{"phone", "5551234567", Result{Valid: true}},
		{"zip", "9021", Result{Message: "Incomplete Zip Code"}},
		{"age(18,65)", "70", Result{Message: "Age cannot exceed 65"}},
	}
	for _, tc := range cases {
		got, err := Validate(tc.spec, tc.raw)
		if err != nil {
			t.Fatalf("Validate(%q, %q): %v", tc.spec, tc.raw, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Validate(%q, %q) mismatch (-want +got):\n%s", tc.spec, tc.raw, diff)
		}
	}
}

func TestEvaluateFile(t *testing.T) {
	path := filepath.Join("pkg", "formspec", "testdata", "forms", "contact.yaml")
	eval, err := EvaluateFile(path, map[string]string{
		"full_name": "Ada Lovelace",
		"phone":     "5551234567",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !eval.Valid || eval.Values["phone"] != "(555) 123-4567" {
		t.Fatalf("unexpected evaluation %+v", eval)
	}
}
