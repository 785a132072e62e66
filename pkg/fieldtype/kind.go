package fieldtype

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the field type variants.
type Kind uint8

const (
	KindPhrase Kind = iota
	KindData
	KindDataLength
	KindName
	KindCredit
	KindExpDate
	KindCVV
	KindAge
	KindDate
	KindStreetNumber
	KindStreet
	KindZip
	KindPhone
	KindSSN
	KindCity
	KindIntCity
	KindState
	KindStateCode
	KindCurrency
	KindPercent
)

var kindNames = [...]string{
	KindPhrase:       "phrase",
	KindData:         "data",
	KindDataLength:   "dataLength",
	KindName:         "name",
	KindCredit:       "credit",
	KindExpDate:      "expDate",
	KindCVV:          "cvv",
	KindAge:          "age",
	KindDate:         "date",
	KindStreetNumber: "streetnumber",
	KindStreet:       "street",
	KindZip:          "zip",
	KindPhone:        "phone",
	KindSSN:          "ssn",
	KindCity:         "city",
	KindIntCity:      "intcity",
	KindState:        "state",
	KindStateCode:    "st",
	KindCurrency:     "currency",
	KindPercent:      "percent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Type is a field type value. The zero Type is Phrase.
type Type struct {
	kind   Kind
	length int
	min    int
	max    int
}

var (
	Phrase       = Type{kind: KindPhrase}
	Data         = Type{kind: KindData}
	Name         = Type{kind: KindName}
	Credit       = Type{kind: KindCredit}
	ExpDate      = Type{kind: KindExpDate}
	CVV          = Type{kind: KindCVV}
	Date         = Type{kind: KindDate}
	StreetNumber = Type{kind: KindStreetNumber}
	Street       = Type{kind: KindStreet}
	Zip          = Type{kind: KindZip}
	Phone        = Type{kind: KindPhone}
	SSN          = Type{kind: KindSSN}
	City         = Type{kind: KindCity}
	IntCity      = Type{kind: KindIntCity}
	State        = Type{kind: KindState}
	StateCode    = Type{kind: KindStateCode}
	Currency     = Type{kind: KindCurrency}
	Percent      = Type{kind: KindPercent}
)

// DataLength is whitespace-free data truncated to n characters.
func DataLength(n int) Type {
	if n < 1 {
		n = 1
	}
	return Type{kind: KindDataLength, length: n}
}

// Age accepts whole numbers in [min, max]. Bounds are clamped to 0..999 and
// swapped when reversed.
func Age(min, max int) Type {
	min, max = clamp(min, 0, 999), clamp(max, 0, 999)
	if min > max {
		min, max = max, min
	}
	return Type{kind: KindAge, min: min, max: max}
}

func (t Type) Kind() Kind { return t.kind }

// Length is the DataLength parameter, zero for other kinds.
func (t Type) Length() int { return t.length }

// Bounds returns the Age range, zeros for other kinds.
func (t Type) Bounds() (min, max int) { return t.min, t.max }

// String renders the type in the form Parse accepts.
func (t Type) String() string {
	switch t.kind {
	case KindDataLength:
		return fmt.Sprintf("dataLength(%d)", t.length)
	case KindAge:
		return fmt.Sprintf("age(%d,%d)", t.min, t.max)
	default:
		return t.kind.String()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse reads a type spec such as "phone", "dataLength(8)" or "age(18,65)".
// Names are case-insensitive.
func Parse(spec string) (Type, error) {
	raw := strings.TrimSpace(spec)
	name, args := raw, ""
	if open := strings.IndexByte(raw, '('); open >= 0 {
		if !strings.HasSuffix(raw, ")") {
			return Type{}, fmt.Errorf("%w: %q", ErrInvalidParams, spec)
		}
		name = strings.TrimSpace(raw[:open])
		args = raw[open+1 : len(raw)-1]
	}

	kind, ok := lookupKind(name)
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, spec)
	}

	params, err := parseInts(args)
	if err != nil {
		return Type{}, fmt.Errorf("%w: %q: %v", ErrInvalidParams, spec, err)
	}

	switch kind {
	case KindDataLength:
		if len(params) != 1 || params[0] < 1 {
			return Type{}, fmt.Errorf("%w: %q needs one positive length", ErrInvalidParams, spec)
		}
		return DataLength(params[0]), nil
	case KindAge:
		if len(params) != 2 || params[0] < 0 || params[1] > 999 || params[0] > params[1] {
			return Type{}, fmt.Errorf("%w: %q needs min,max with 0 <= min <= max <= 999", ErrInvalidParams, spec)
		}
		return Age(params[0], params[1]), nil
	default:
		if len(params) != 0 {
			return Type{}, fmt.Errorf("%w: %q takes no parameters", ErrInvalidParams, spec)
		}
		return Type{kind: kind}, nil
	}
}

// MustParse is Parse for static specs; it panics on error.
func MustParse(spec string) Type {
	t, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return t
}

// All returns one value per kind, using DataLength(8) and Age(18, 65) as the
// parameterized representatives.
func All() []Type {
	out := make([]Type, 0, len(kindNames))
	for k := range kindNames {
		switch Kind(k) {
		case KindDataLength:
			out = append(out, DataLength(8))
		case KindAge:
			out = append(out, Age(18, 65))
		default:
			out = append(out, Type{kind: Kind(k)})
		}
	}
	return out
}

func lookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return 0, false
}

func parseInts(args string) ([]int, error) {
	if strings.TrimSpace(args) == "" {
		return nil, nil
	}
	parts := strings.Split(args, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
