package fieldtype

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/mask"
)

const (
	currencySign  = "$"
	percentSign   = "%"
	decimalPoint  = "."
	amountDecimal = "00"
)

// HasDynamicTemplate reports whether the template follows the input.
func (t Type) HasDynamicTemplate() bool {
	return t.kind == KindCurrency || t.kind == KindPercent
}

// DynamicTemplate derives a template from the raw, unfiltered text so the
// whole part of an amount can grow. ok is false for types with a fixed
// template. The current template is accepted for callers that track it; the
// built-in amount types derive theirs from raw alone.
func (t Type) DynamicTemplate(raw, _ string) (template string, ok bool) {
	switch t.kind {
	case KindCurrency:
		whole, dec, hasPoint := splitAmount(raw)
		if hasPoint {
			return currencySign + zeros(len(whole)) + decimalPoint + amountDecimal, true
		}
		return currencySign + zeros(len(whole+dec)) + decimalPoint + amountDecimal, true
	case KindPercent:
		whole, dec, hasPoint := splitAmount(raw)
		if hasPoint {
			decimals := amountDecimal
			if len(dec) > len(amountDecimal) {
				decimals = strings.Repeat("0", len(dec))
			}
			return zeros(len(whole)) + decimalPoint + decimals + percentSign, true
		}
		return zeros(len(whole)) + decimalPoint + amountDecimal + percentSign, true
	default:
		return "", false
	}
}

// Reconstruct lays filtered data over template. Amount types keep a decimal
// point the user just typed, which Filter would otherwise drop.
func (t Type) Reconstruct(raw, filtered, template string) string {
	out := mask.Reconstruct(filtered, template, t.Placeholders())
	if !t.HasDynamicTemplate() || !strings.Contains(raw, decimalPoint) {
		return out
	}
	idx := strings.Index(template, decimalPoint)
	if idx < 0 {
		return out
	}
	if len([]rune(filtered)) == countPlaceholders(template[:idx], t.Placeholders()) && filtered != "" {
		return out + decimalPoint
	}
	return out
}

// FinalReconstruct lays filtered data over template, keeping trailing
// literals once the data runs out.
func (t Type) FinalReconstruct(filtered, template string) string {
	return mask.FinalReconstruct(filtered, template, t.Placeholders())
}

// FinalFormat normalizes text when the field loses focus. It returns the
// formatted text and the template the text now matches. Types without a
// final format return both unchanged.
func (t Type) FinalFormat(text, template string) (string, string) {
	switch t.kind {
	case KindCurrency:
		return finalCurrency(text)
	case KindPercent:
		return finalPercent(text)
	default:
		return text, template
	}
}

func finalCurrency(text string) (string, string) {
	if !strings.HasPrefix(text, currencySign) {
		slog.Default().Warn("fieldtype: currency text missing sign", "text", text)
		text = currencySign + text
	}
	whole, dec, ok := normalizeAmount(strings.TrimPrefix(text, currencySign))
	if !ok {
		return currencySign + "0.00", currencySign + "0.00"
	}
	return currencySign + whole + decimalPoint + dec,
		currencySign + zeros(len(whole)) + decimalPoint + amountDecimal
}

func finalPercent(text string) (string, string) {
	if !strings.HasSuffix(text, percentSign) {
		slog.Default().Warn("fieldtype: percent text missing sign", "text", text)
		text += percentSign
	}
	whole, dec, ok := normalizeAmount(strings.TrimSuffix(text, percentSign))
	if !ok {
		return "0.00" + percentSign, "0.00" + percentSign
	}
	return whole + decimalPoint + dec + percentSign,
		zeros(len(whole)) + decimalPoint + amountDecimal + percentSign
}

// normalizeAmount strips leading zeros from the whole part and pads or cuts
// the decimals to two places. ok is false when no digits remain.
func normalizeAmount(numeric string) (whole, dec string, ok bool) {
	whole, dec, _ = splitAmount(numeric)
	if whole == "" && dec == "" {
		return "", "", false
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	switch {
	case len(dec) == 0:
		dec = amountDecimal
	case len(dec) == 1:
		dec += "0"
	default:
		dec = dec[:2]
	}
	return whole, dec, true
}

// splitAmount returns the digits either side of the first decimal point.
func splitAmount(raw string) (whole, dec string, hasPoint bool) {
	before, after, found := strings.Cut(raw, decimalPoint)
	return digits(before, 0), digits(after, 0), found
}

// zeros returns n placeholder zeros, never fewer than one.
func zeros(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat("0", n)
}

func countPlaceholders(template, placeholders string) int {
	n := 0
	for _, r := range template {
		if strings.ContainsRune(placeholders, r) {
			n++
		}
	}
	return n
}
