package fieldtype

import (
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-maskfield/components/usstates"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// ValidateResult checks a complete, final value.
func (t Type) ValidateResult(text string) validation.Result {
	switch t.kind {
	case KindDataLength:
		if utf8.RuneCountInString(text) < t.length {
			return validation.Fail("Not Long Enough")
		}
	case KindCredit:
		if len(text) < 19 {
			return validation.Fail("Card Number Incomplete")
		}
	case KindExpDate:
		return resultExpDate(text)
	case KindCVV:
		if len(text) < 3 {
			return validation.Fail("CVV Incomplete")
		}
	case KindAge:
		return t.resultAge(text)
	case KindDate:
		if !validCalendarDate(text) {
			return validation.Fail("Invalid Date")
		}
	case KindStreetNumber:
		if text == "0" {
			return validation.Fail("Street Number cannot be zero")
		}
	case KindZip:
		if len(text) != 5 {
			return validation.Fail("Incomplete Zip Code")
		}
	case KindPhone:
		if len(text) != 14 {
			return validation.Fail("Incomplete Phone #")
		}
	case KindSSN:
		if len(text) != 11 {
			return validation.Fail("Incomplete SSN")
		}
	case KindState:
		if _, ok := usstates.Resolve(text); !ok {
			return validation.Fail("Invalid State Name")
		}
	case KindStateCode:
		if text != "" && !usstates.IsCode(text) {
			return validation.Fail(msgInvalidState)
		}
	}
	return validation.OK()
}

func resultExpDate(text string) validation.Result {
	if len(text) != 5 {
		return validation.Fail("Incomplete Date")
	}
	month, err := strconv.Atoi(text[:2])
	if err != nil {
		return validation.Fail(msgExpParse)
	}
	year, err := strconv.Atoi(text[3:])
	if err != nil {
		return validation.Fail(msgExpParse)
	}
	if !validMonth(month) {
		return validation.Fail(msgInvalidMonth)
	}
	if !twoDigitYearInWindow(year) {
		return validation.Fail(msgYearRange)
	}
	return validation.OK()
}
