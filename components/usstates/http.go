package usstates

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// DefaultPath is where RegisterRoutes mounts the handler when Config.Path is
// empty.
const DefaultPath = "/api/states"

// Config configures the state picker endpoint.
type Config struct {
	Path string
	// StatesOnly leaves DC and the territories out of results.
	StatesOnly bool
	// Guard runs before the lookup. Returning a StatusError picks the
	// response status, anything else is a 403.
	Guard func(*http.Request) error
}

// StatusError is a guard error carrying an HTTP status.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

type optionsResponse struct {
	Data     []Option `json:"data"`
	Resolved string   `json:"resolved,omitempty"`
}

// Handler serves GET/HEAD state searches as JSON select options:
//
//	GET /api/states?q=Calif.&limit=5
//	{"data":[{"value":"CA","label":"California"}],"resolved":"CA"}
//
// resolved is set when q names a single state in any accepted spelling.
func Handler(cfg Config) http.Handler {
	list := All()
	if cfg.StatesOnly {
		list = statesOnly(list)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if cfg.Guard != nil {
			if err := cfg.Guard(r); err != nil {
				code := http.StatusForbidden
				var se StatusError
				if errors.As(err, &se) && se.Code > 0 {
					code = se.Code
				}
				http.Error(w, http.StatusText(code), code)
				return
			}
		}

		query := r.URL.Query()
		limit := 0
		if raw := query.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "limit must be an integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		results := Search(list, query.Get("q"), limit)
		resp := optionsResponse{Data: ToOptions(results)}
		if code, ok := Resolve(query.Get("q")); ok && containsCode(results, code) {
			resp.Resolved = code
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
}

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts Handler(cfg) at cfg.Path under basePath and returns
// the pattern it used.
func RegisterRoutes(mux Mux, basePath string, cfg Config) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("usstates: missing mux")
	}
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	pattern := joinPath(basePath, path)
	mux.Handle(pattern, Handler(cfg))
	return pattern, nil
}

func joinPath(base, path string) string {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return path
	}
	return "/" + base + path
}

func statesOnly(list []State) []State {
	out := make([]State, 0, len(list))
	for _, st := range list {
		if st.IsState() {
			out = append(out, st)
		}
	}
	return out
}

func containsCode(list []State, code string) bool {
	for _, st := range list {
		if st.Code == code {
			return true
		}
	}
	return false
}
