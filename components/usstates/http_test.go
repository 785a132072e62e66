package usstates

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) optionsResponse {
	t.Helper()
	var payload optionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestHandler_ResolvesSpellings(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  optionsResponse
	}{
		{
			name:  "name prefix",
			query: "calif",
			want:  optionsResponse{Data: []Option{{Value: "CA", Label: "California"}}, Resolved: "CA"},
		},
		{
			name:  "legacy abbreviation with period",
			query: "Calif.",
			want:  optionsResponse{Data: []Option{{Value: "CA", Label: "California"}}, Resolved: "CA"},
		},
		{
			name:  "dotted code",
			query: "N.C.",
			want:  optionsResponse{Data: []Option{{Value: "NC", Label: "North Carolina"}}, Resolved: "NC"},
		},
		{
			name:  "directional spelling",
			query: "W.%20Virginia",
			want:  optionsResponse{Data: []Option{{Value: "WV", Label: "West Virginia"}}, Resolved: "WV"},
		},
		{
			name:  "substring only",
			query: "dakota",
			want: optionsResponse{Data: []Option{
				{Value: "ND", Label: "North Dakota"},
				{Value: "SD", Label: "South Dakota"},
			}},
		},
	}

	h := Handler(Config{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, "/api/states?q="+tc.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Fatalf("content type = %q", ct)
			}
			if diff := cmp.Diff(tc.want, decode(t, rec)); diff != "" {
				t.Fatalf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandler_EmptyQueryReturnsEmptyArray(t *testing.T) {
	rec := serve(t, Handler(Config{}), http.MethodGet, "/api/states")
	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 || payload.Resolved != "" {
		t.Fatalf("expected empty data array, got %#v", payload)
	}
}

func TestHandler_StatesOnly(t *testing.T) {
	all := decode(t, serve(t, Handler(Config{}), http.MethodGet, "/api/states?q=virgin"))
	want := []Option{
		{Value: "VA", Label: "Virginia"},
		{Value: "VI", Label: "U.S. Virgin Islands"},
		{Value: "WV", Label: "West Virginia"},
	}
	if diff := cmp.Diff(want, all.Data); diff != "" {
		t.Fatalf("all mismatch (-want +got):\n%s", diff)
	}

	states := decode(t, serve(t, Handler(Config{StatesOnly: true}), http.MethodGet, "/api/states?q=virgin"))
	if diff := cmp.Diff([]Option{want[0], want[2]}, states.Data); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}

	dc := decode(t, serve(t, Handler(Config{StatesOnly: true}), http.MethodGet, "/api/states?q=DC"))
	if len(dc.Data) != 0 || dc.Resolved != "" {
		t.Fatalf("DC must be excluded, got %#v", dc)
	}
}

func TestHandler_Limit(t *testing.T) {
	h := Handler(Config{})
	if got := decode(t, serve(t, h, http.MethodGet, "/api/states?q=new&limit=2")); len(got.Data) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got.Data))
	}
	if rec := serve(t, h, http.MethodGet, "/api/states?q=new&limit=many"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}

func TestHandler_Methods(t *testing.T) {
	h := Handler(Config{})
	rec := serve(t, h, http.MethodPost, "/api/states")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}

	rec = serve(t, h, http.MethodHead, "/api/states?q=ca")
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("HEAD = %d with %d body bytes", rec.Code, rec.Body.Len())
	}
}

func TestHandler_Guard(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "status error", err: StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}, want: http.StatusUnauthorized},
		{name: "plain error", err: errors.New("nope"), want: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Handler(Config{Guard: func(*http.Request) error { return tc.err }})
			if rec := serve(t, h, http.MethodGet, "/api/states?q=ca"); rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	cases := []struct {
		base string
		path string
		want string
	}{
		{base: "", want: "/api/states"},
		{base: "/v1/", want: "/v1/api/states"},
		{base: "admin", path: "lookup/states/", want: "/admin/lookup/states"},
	}
	for _, tc := range cases {
		mux := http.NewServeMux()
		pattern, err := RegisterRoutes(mux, tc.base, Config{Path: tc.path})
		if err != nil {
			t.Fatalf("RegisterRoutes: %v", err)
		}
		if pattern != tc.want {
			t.Fatalf("pattern = %q, want %q", pattern, tc.want)
		}
		rec := serve(t, mux, http.MethodGet, pattern+"?q=ny")
		if got := decode(t, rec); got.Resolved != "NY" {
			t.Fatalf("mounted handler resolved %q", got.Resolved)
		}
	}

	if _, err := RegisterRoutes(nil, "/", Config{}); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
