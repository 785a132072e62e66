package fieldtype

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/mask"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// Description is the human label for the type.
func (t Type) Description() string {
	switch t.kind {
	case KindData:
		return "Data"
	case KindDataLength:
		return fmt.Sprintf("Data(%d characters)", t.length)
	case KindName:
		return "Name"
	case KindCredit:
		return "Credit Card Number"
	case KindExpDate:
		return "Expiration Date"
	case KindCVV:
		return "CVV"
	case KindAge:
		return fmt.Sprintf("Age(%d-%d)", t.min, t.max)
	case KindDate:
		return "Date"
	case KindStreetNumber:
		return "Street #"
	case KindStreet:
		return "Street Name"
	case KindZip:
		return "Zip Code"
	case KindPhone:
		return "Phone Number"
	case KindSSN:
		return "Social Security #"
	case KindCity, KindIntCity:
		return "City"
	case KindState, KindStateCode:
		return "State"
	case KindCurrency:
		return "Currency"
	case KindPercent:
		return "Percent"
	default:
		return "Enter Info"
	}
}

// Template is the initial display mask; empty means no visual template.
func (t Type) Template() string {
	switch t.kind {
	case KindDataLength:
		return strings.Repeat("X", t.length)
	case KindCredit:
		return "0000 0000 0000 0000"
	case KindExpDate:
		return "MM/YY"
	case KindCVV:
		return "000"
	case KindAge:
		if t.max >= 100 {
			return "000"
		}
		return "00"
	case KindDate:
		return "MM/DD/YYYY"
	case KindZip:
		return "00000"
	case KindPhone:
		return "(000) 000-0000"
	case KindSSN:
		return "000-00-0000"
	case KindStateCode:
		return "XX"
	case KindCurrency:
		return "$0.00"
	case KindPercent:
		return "0.00%"
	default:
		return ""
	}
}

// Placeholders is the alphabet of data-bearing template characters.
func (t Type) Placeholders() string {
	switch t.kind {
	case KindDataLength, KindStateCode:
		return "X"
	case KindExpDate:
		return "MY"
	case KindDate:
		return "MDY"
	case KindCredit, KindCVV, KindAge, KindZip, KindPhone, KindSSN, KindCurrency, KindPercent:
		return "0"
	default:
		return ""
	}
}

// Priority is the relative shrink weight a layout may give the field.
func (t Type) Priority() float64 {
	switch t.kind {
	case KindData, KindDate, KindState, KindCurrency:
		return 1.0
	case KindDataLength:
		return 1.1
	case KindName, KindCredit, KindStreet, KindIntCity:
		return 1.5
	case KindPhrase:
		return 1.7
	case KindExpDate, KindCVV, KindAge:
		return 0.5
	case KindStreetNumber, KindZip:
		return 0.6
	case KindPhone, KindSSN:
		return 0.7
	case KindCity:
		return 2.5
	case KindStateCode:
		return 0.2
	case KindPercent:
		return 0.8
	default:
		return 1.0
	}
}

// MaxDataLength is the most characters Filter will return, or zero when the
// type has no cap.
func (t Type) MaxDataLength() int {
	switch t.kind {
	case KindDataLength:
		return t.length
	case KindCredit:
		return 16
	case KindExpDate:
		return 4
	case KindCVV:
		return 3
	case KindAge:
		return len(t.Template())
	case KindDate:
		return 8
	case KindStreetNumber:
		return 6
	case KindZip:
		return 5
	case KindPhone:
		return 10
	case KindSSN:
		return 9
	case KindStateCode:
		return 2
	case KindCurrency, KindPercent:
		return maxAmountDigits
	default:
		return 0
	}
}

// HasTemplate reports whether the type renders through a template.
func (t Type) HasTemplate() bool {
	return mask.HasTemplate(t.Template())
}

// Metadata describes the type's initial template.
func (t Type) Metadata() mask.Metadata {
	return mask.Describe(t.Template(), t.Placeholders())
}

// ValidateConfiguration checks the type's template/placeholder pair.
func (t Type) ValidateConfiguration() validation.Result {
	return mask.ValidateConfiguration(t.Template(), t.Placeholders())
}

// Label returns custom when it is not blank, otherwise the description.
func Label(custom string, t Type) string {
	if strings.TrimSpace(custom) != "" {
		return custom
	}
	return t.Description()
}
