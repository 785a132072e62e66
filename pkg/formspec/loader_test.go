package formspec_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
	"github.com/goliatone/go-maskfield/pkg/formspec"
)

func TestLoadFS_AllFormats(t *testing.T) {
	forms, err := formspec.LoadFS(subDirFS(t, "forms"))
	if err != nil {
		t.Fatalf("load forms: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}

	got := make(map[string][]string)
	for _, form := range forms {
		for _, field := range form.Fields {
			typ, err := field.FieldType()
			if err != nil {
				t.Fatalf("%s.%s: %v", form.ID, field.Name, err)
			}
			got[form.ID] = append(got[form.ID], field.Name+"="+typ.String())
		}
	}

	want := map[string][]string{
		"billing": {"card_number=credit", "card_expiry=expDate", "cvv=cvv", "amount=currency"},
		"contact": {"full_name=name", "phone=phone", "age=age(18,65)", "state=st", "zip=zip"},
		"survey":  {"satisfaction=percent", "visit_date=date"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved types mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_SanitizesText(t *testing.T) {
	form, err := formspec.LoadFile(filepath.Join(testdataRoot(), "forms", "billing.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if form.Title != "Billing details" {
		t.Fatalf("title not sanitized: %q", form.Title)
	}
	card, ok := form.Field("card_number")
	if !ok {
		t.Fatalf("card_number missing")
	}
	if card.Label != "Card Number" {
		t.Fatalf("label not sanitized: %q", card.Label)
	}
	expiry, _ := form.Field("card_expiry")
	if got := expiry.DisplayLabel(); got != "Expiration Date" {
		t.Fatalf("display label fallback = %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := formspec.Parse([]byte("  "), "empty.json"); !errors.Is(err, formspec.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := formspec.Parse([]byte(`{"id":"x","fields":[]}`), "x.json"); !errors.Is(err, formspec.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	if _, err := formspec.Parse([]byte("id = ["), "x.toml"); err == nil {
		t.Fatalf("expected TOML parse error")
	}
	if _, err := formspec.Parse([]byte("{not: [valid"), "x.yaml"); err == nil {
		t.Fatalf("expected YAML parse error")
	}
}

func TestParse_IDFromSource(t *testing.T) {
	form, err := formspec.Parse([]byte(`{"fields":[{"name":"zip"}]}`), "dir/signup.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.ID != "signup" {
		t.Fatalf("expected id from file name, got %q", form.ID)
	}
	zip, _ := form.Field("zip")
	if typ, _ := zip.FieldType(); typ != fieldtype.Zip {
		t.Fatalf("expected inferred zip, got %s", typ)
	}
}

func TestLoadFS_DuplicateForms(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`{"id":"dup","fields":[{"name":"zip"}]}`)
	for _, name := range []string{"a.json", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), body, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if _, err := formspec.LoadFS(os.DirFS(dir)); err == nil {
		t.Fatalf("expected duplicate form error")
	}
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	fsys, err := fs.Sub(os.DirFS(testdataRoot()), subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}

func testdataRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}
