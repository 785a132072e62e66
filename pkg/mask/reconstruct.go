package mask

import "strings"

// Reconstruct lays input over template. Literal template characters are held
// back until a data character follows them, and processing stops at the first
// placeholder with no data left, so the result always ends on a data character
// (or is empty). An empty template or placeholder alphabet returns input as is.
func Reconstruct(input, template, placeholders string) string {
	return reconstruct(input, template, placeholders, false)
}

// FinalReconstruct behaves like Reconstruct until the data is consumed, then
// emits every remaining literal in the template, skipping unfilled
// placeholders. Empty input still yields "".
func FinalReconstruct(input, template, placeholders string) string {
	return reconstruct(input, template, placeholders, true)
}

func reconstruct(input, template, placeholders string, final bool) string {
	if template == "" || placeholders == "" {
		return input
	}
	if input == "" {
		return ""
	}

	data := []rune(input)
	var (
		out     strings.Builder
		pending strings.Builder
		cursor  int
	)
	out.Grow(len(template))

	for _, ch := range template {
		if !strings.ContainsRune(placeholders, ch) {
			pending.WriteRune(ch)
			continue
		}
		if cursor >= len(data) {
			if !final {
				break
			}
			continue
		}
		out.WriteString(pending.String())
		pending.Reset()
		out.WriteRune(data[cursor])
		cursor++
	}

	if final && cursor > 0 && cursor >= len(data) {
		out.WriteString(pending.String())
	}
	return out.String()
}

// Split divides template into the part covered by n display characters and
// the part still unfilled.
func Split(template string, n int) (filled, remaining string) {
	if n <= 0 {
		return "", template
	}
	runes := []rune(template)
	if n >= len(runes) {
		return template, ""
	}
	return string(runes[:n]), string(runes[n:])
}
