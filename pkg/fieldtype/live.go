package fieldtype

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-maskfield/components/usstates"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

const (
	msgInvalidMonth = "Invalid Month"
	msgInvalidDay   = "Invalid Day"
	msgYearRange    = "Year out of range"
	msgExpParse     = "Invalid Month/Year #"
	msgInvalidState = "Invalid State"
)

// ValidateLive checks whether text, a possibly partial and already
// formatted value, can still become valid. It rejects only text that no
// further typing could fix.
func (t Type) ValidateLive(text string) validation.Result {
	switch t.kind {
	case KindData, KindDataLength:
		if strings.ContainsRune(text, ' ') {
			return validation.Fail("Spaces not allowed")
		}
	case KindCredit:
		return liveCredit(text)
	case KindExpDate:
		return liveExpDate(text)
	case KindDate:
		return liveDate(text)
	case KindAge:
		return t.liveAge(text)
	case KindStateCode:
		return liveStateCode(text)
	}
	return validation.OK()
}

// liveCredit rejects a first digit that no card network issues.
func liveCredit(text string) validation.Result {
	d := digits(text, 0)
	if len(d) != 1 {
		return validation.OK()
	}
	switch d[0] {
	case '3', '4', '5', '6':
		return validation.OK()
	}
	return validation.Fail("Invalid credit type")
}

func liveExpDate(text string) validation.Result {
	d := truncate(stripSlashes(text), 4)
	switch n := len(d); {
	case n == 0:
		return validation.OK()
	case n == 1:
		if d == "0" || d == "1" {
			return validation.OK()
		}
		return validation.Fail(msgInvalidMonth)
	default:
		month, err := atoiPrefix(d, 2)
		if err != nil {
			logParseFailure("expDate", text, err)
			return validation.Fail(msgExpParse)
		}
		if !validMonth(month) {
			return validation.Fail(msgInvalidMonth)
		}
		if n == 2 {
			return validation.OK()
		}
		year, err := atoiPrefix(d[2:], 2)
		if err != nil {
			logParseFailure("expDate", text, err)
			return validation.Fail(msgExpParse)
		}
		if n == 3 && !yearDigitInWindow(year) {
			return validation.Fail(msgYearRange)
		}
		if n == 4 && !twoDigitYearInWindow(year) {
			return validation.Fail(msgYearRange)
		}
		return validation.OK()
	}
}

func liveDate(text string) validation.Result {
	d := truncate(stripSlashes(text), 8)
	n := len(d)
	if n == 0 {
		return validation.OK()
	}
	if n == 1 {
		if d == "0" || d == "1" {
			return validation.OK()
		}
		return validation.Fail(msgInvalidMonth)
	}
	month, err := atoiPrefix(d, 2)
	if err != nil {
		logParseFailure("date", text, err)
		return validation.Fail("INVALID DATE")
	}
	if !validMonth(month) {
		return validation.Fail(msgInvalidMonth)
	}
	switch {
	case n == 2:
		return validation.OK()
	case n == 3:
		if d[2] < '0' || d[2] > '3' {
			return validation.Fail(msgInvalidDay)
		}
		return validation.OK()
	}
	day, err := atoiPrefix(d[2:], 2)
	if err != nil {
		logParseFailure("date", text, err)
		return validation.Fail("INVALID DATE")
	}
	if !validDay(day) {
		return validation.Fail(msgInvalidDay)
	}
	return validation.OK()
}

func liveStateCode(text string) validation.Result {
	switch len(text) {
	case 0:
		return validation.OK()
	case 1:
		if usstates.HasCodePrefix(strings.ToUpper(text)) {
			return validation.OK()
		}
	case 2:
		if usstates.IsCode(strings.ToUpper(text)) {
			return validation.OK()
		}
	}
	return validation.Fail(msgInvalidState)
}

// logParseFailure records a digits-only value that still failed to parse,
// which means a filter and validator disagree.
func logParseFailure(kind, text string, err error) {
	slog.Default().Error("fieldtype: numeric parse failed after filtering",
		"type", kind,
		"text", text,
		"error", err,
	)
}
