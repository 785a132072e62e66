package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func formspecTestdata(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "pkg", "formspec", "testdata"}, parts...)...)
}

func TestTypesListsCatalogue(t *testing.T) {
	out, err := run(t, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"TYPE", "phone", "(000) 000-0000", "age(18,65)", "dataLength(8)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"live phone", []string{"format", "-t", "phone", "5551234567", "555"}, "(555) 123-4567\n(555\n"},
		{"final currency", []string{"format", "--final", "-t", "currency", "1234"}, "$1234.00\n"},
		{"default data", []string{"format", "abc"}, "abc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if out != tc.want {
				t.Fatalf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestFormat_UnknownType(t *testing.T) {
	if _, err := run(t, "format", "-t", "barcode", "1"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "-t", "zip", "90210", "9021")
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}
	if out != "90210: ok\n9021: Incomplete Zip Code\n" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, "validate", "-t", "age(18,65)", "40")
	if err != nil || out != "40: ok\n" {
		t.Fatalf("expected ok, got %q, %v", out, err)
	}
}

func TestLint(t *testing.T) {
	if _, err := run(t, "lint", formspecTestdata("forms")); err != nil {
		t.Fatalf("clean forms: %v", err)
	}

	out, err := run(t, "lint", formspecTestdata("lint", "broken.yaml"))
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}
	if !strings.Contains(out, "duplicate field name") || !strings.Contains(out, "Incomplete Zip Code") {
		t.Fatalf("unexpected lint output:\n%s", out)
	}
}

func TestLint_MissingPath(t *testing.T) {
	if _, err := run(t, "lint", "does-not-exist.yaml"); err == nil || errors.Is(err, errValidationFailed) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestWatchDirs(t *testing.T) {
	forms := formspecTestdata("forms")
	got := watchDirs([]string{
		filepath.Join(forms, "contact.yaml"),
		filepath.Join(forms, "billing.json"),
		formspecTestdata("lint"),
	})
	want := []string{forms, formspecTestdata("lint")}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("watchDirs = %v, want %v", got, want)
	}
}

func TestPrompt_InvalidOutput(t *testing.T) {
	_, err := run(t, "prompt", "--form", formspecTestdata("forms", "contact.yaml"), "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Fatalf("expected output format error, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug", "json", io.Discard); err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if _, err := newLogger("loud", "text", io.Discard); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if _, err := newLogger("info", "xml", io.Discard); err == nil {
		t.Fatalf("expected invalid format error")
	}
}

func TestServeMux(t *testing.T) {
	handler, err := newServeMux(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new mux: %v", err)
	}

	cases := []struct {
		name   string
		target string
		status int
		want   formatResponse
	}{
		{
			name:   "live",
			target: "/api/format?type=phone&value=5551234",
			status: http.StatusOK,
			want:   formatResponse{Text: "(555) 123-4", Valid: true},
		},
		{
			name:   "final",
			target: "/api/format?type=zip&value=9021&final=true",
			status: http.StatusOK,
			want:   formatResponse{Text: "9021", Template: "00000", Message: "Incomplete Zip Code", Final: true},
		},
		{
			name:   "unknown type",
			target: "/api/format?type=barcode&value=1",
			status: http.StatusBadRequest,
		},
		{
			name:   "missing type",
			target: "/api/format?value=1",
			status: http.StatusBadRequest,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status != http.StatusOK {
				return
			}
			var got formatResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/states?q=calif", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"CA"`) {
		t.Fatalf("states search: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/format?type=zip", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
