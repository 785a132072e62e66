package usstates

import (
	"sort"
	"strings"
)

var (
	codeIndex = indexCodes()
	nameIndex = indexNames()
)

func indexCodes() map[string]State {
	out := make(map[string]State, len(states))
	for _, st := range states {
		out[st.Code] = st
	}
	return out
}

func indexNames() map[string]string {
	out := make(map[string]string, len(states)+len(nameAliases))
	for _, st := range states {
		out[strings.ToUpper(st.Name)] = st.Code
	}
	for name, code := range nameAliases {
		out[name] = code
	}
	return out
}

// All returns every state and territory ordered by name.
func All() []State {
	out := append([]State(nil), states...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Codes returns the sorted postal codes.
func Codes() []string {
	out := make([]string, 0, len(states))
	for _, st := range states {
		out = append(out, st.Code)
	}
	sort.Strings(out)
	return out
}

// IsCode reports whether code is exactly a known uppercase postal code.
func IsCode(code string) bool {
	_, ok := codeIndex[code]
	return ok
}

// HasCodePrefix reports whether any postal code starts with prefix.
func HasCodePrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	for code := range codeIndex {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// ByCode returns the state for a postal code.
func ByCode(code string) (State, bool) {
	st, ok := codeIndex[strings.ToUpper(strings.TrimSpace(code))]
	return st, ok
}

// Names returns the uppercase full names, aliases included, sorted.
func Names() []string { return sortedKeys(nameIndex) }

// LegacyAbbreviations returns the period-free legacy abbreviations, sorted.
func LegacyAbbreviations() []string { return sortedKeys(legacyAbbreviations) }

// DottedCodes returns legacy codes written with periods, sorted.
func DottedCodes() []string { return sortedKeys(dottedCodes) }

// DirectionalVariants returns a copy of the directional spelling table.
func DirectionalVariants() map[string]string {
	out := make(map[string]string, len(directionalVariants))
	for k, v := range directionalVariants {
		out[k] = v
	}
	return out
}

// Resolve maps free-form state text to a postal code. It accepts, in order:
// a two letter postal code, a legacy abbreviation (periods ignored, at most
// five letters), a full name, a directional spelling and a dotted legacy code.
// Whitespace is trimmed and collapsed and matching ignores case.
func Resolve(text string) (string, bool) {
	clean := strings.ToUpper(Clean(text))
	if len(clean) < 2 {
		return "", false
	}
	if len(clean) == 2 && isLetters(clean) && IsCode(clean) {
		return clean, true
	}
	if bare := strings.ReplaceAll(clean, ".", ""); len(bare) <= 5 {
		if code, ok := legacyAbbreviations[bare]; ok {
			return code, true
		}
	}
	if code, ok := nameIndex[clean]; ok {
		return code, true
	}
	if full, ok := directionalVariants[clean]; ok {
		if code, ok := nameIndex[full]; ok {
			return code, true
		}
	}
	if code, ok := dottedCodes[clean]; ok {
		return code, true
	}
	return "", false
}

// Clean trims text and collapses runs of whitespace into single spaces.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
