package fieldtype

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-maskfield/components/usstates"
)

const maxAmountDigits = 14

const (
	nameExtras    = "'-. "
	streetExtras  = "'-.#/ "
	cityExtras    = "-. "
	intCityExtras = "-. '/()&"
	stateExtras   = ". "
)

// Filter reduces raw input to the canonical unformatted data for the type.
// It is idempotent and never returns more than MaxDataLength characters when
// the type has a cap. The second argument reports whether the edit grew the
// text (nil when unknown); the built-in types do not depend on it.
func (t Type) Filter(raw string, _ *bool) string {
	switch t.kind {
	case KindData:
		return stripSpace(raw)
	case KindDataLength:
		return truncate(stripSpace(raw), t.length)
	case KindName:
		return fixApostrophes(titleCase(allowLetters(raw, nameExtras, false)))
	case KindStreet:
		return titleCase(allowLetters(raw, streetExtras, true))
	case KindCity:
		return titleCase(allowLetters(raw, cityExtras, false))
	case KindIntCity:
		return titleCase(allowLetters(raw, intCityExtras, false))
	case KindState:
		return filterStateName(raw)
	case KindStateCode:
		return truncate(strings.ToUpper(keepLetters(raw)), 2)
	case KindCredit, KindExpDate, KindCVV, KindAge, KindDate, KindStreetNumber,
		KindZip, KindPhone, KindSSN:
		return digits(raw, t.MaxDataLength())
	case KindCurrency, KindPercent:
		return amountDigits(raw, t.MaxDataLength())
	default:
		return raw
	}
}

func digits(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if max > 0 && b.Len() >= max {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// amountDigits keeps the digits of an amount. A decimal point with no whole
// digits before it gets a leading zero so the decimals stay decimals.
func amountDigits(raw string, max int) string {
	if whole, _, hasPoint := splitAmount(raw); hasPoint && whole == "" {
		raw = "0" + raw
	}
	return digits(raw, max)
}

func stripSpace(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func keepLetters(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, raw)
}

// allowLetters keeps letters (and digits when withDigits is set) plus extras,
// then drops leading spaces.
func allowLetters(raw, extras string, withDigits bool) string {
	kept := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return r
		case withDigits && unicode.IsDigit(r):
			return r
		case strings.ContainsRune(extras, r):
			return r
		}
		return -1
	}, raw)
	return strings.TrimLeft(kept, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// fixApostrophes capitalizes the letter after each apostrophe: o'connor
// becomes O'Connor.
func fixApostrophes(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i-1] == '\'' {
			runes[i] = unicode.ToUpper(runes[i])
		}
	}
	return string(runes)
}

func filterStateName(raw string) string {
	kept := allowLetters(raw, stateExtras, false)
	if upper := strings.ToUpper(kept); len(kept) == 2 && usstates.IsCode(upper) {
		return upper
	}
	return titleCase(kept)
}
