package usstates

import (
	"sort"
	"strings"
)

const (
	// DefaultLimit applies when a search asks for no limit.
	DefaultLimit = 10
	// MaxLimit caps every search.
	MaxLimit = 60
)

// Option is a value/label pair for select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search matches query against list, case-insensitively. A query Resolve
// understands (postal code, legacy abbreviation, full name, directional or
// dotted spelling) puts that state first; name prefixes come next, then
// other substring matches. A blank query or a negative limit returns nil.
func Search(list []State, query string, limit int) []State {
	limit = clampLimit(limit)
	query = Clean(query)
	if limit == 0 || query == "" {
		return nil
	}

	resolved, _ := Resolve(query)
	q := strings.ToLower(query)
	matches := make([]matchedState, 0, 8)
	for _, st := range list {
		name := strings.ToLower(st.Name)
		rank := 0
		switch {
		case st.Code == resolved:
			rank = 3
		case strings.HasPrefix(name, q):
			rank = 2
		case strings.Contains(name, q):
			rank = 1
		}
		if rank > 0 {
			matches = append(matches, matchedState{state: st, rank: rank})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank > matches[j].rank
		}
		return matches[i].state.Name < matches[j].state.Name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]State, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.state)
	}
	return out
}

// ToOptions converts states to select options.
func ToOptions(list []State) []Option {
	out := make([]Option, 0, len(list))
	for _, st := range list {
		out = append(out, Option{Value: st.Code, Label: st.Name})
	}
	return out
}

type matchedState struct {
	state State
	rank  int
}

func clampLimit(limit int) int {
	switch {
	case limit < 0:
		return 0
	case limit == 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
