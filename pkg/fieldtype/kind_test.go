package fieldtype

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec string
		want Type
	}{
		{spec: "phone", want: Phone},
		{spec: " Phone ", want: Phone},
		{spec: "st", want: StateCode},
		{spec: "expDate", want: ExpDate},
		{spec: "dataLength(8)", want: DataLength(8)},
		{spec: "age(18, 65)", want: Age(18, 65)},
		{spec: "AGE(0,120)", want: Age(0, 120)},
		{spec: "currency", want: Currency},
	}
	for _, tc := range cases {
		got, err := Parse(tc.spec)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.spec, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %s, want %s", tc.spec, got, tc.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		spec string
		want error
	}{
		{spec: "bogus", want: ErrUnknownType},
		{spec: "dataLength", want: ErrInvalidParams},
		{spec: "dataLength(0)", want: ErrInvalidParams},
		{spec: "age(65,18)", want: ErrInvalidParams},
		{spec: "age(18", want: ErrInvalidParams},
		{spec: "phone(3)", want: ErrInvalidParams},
		{spec: "age(a,b)", want: ErrInvalidParams},
	}
	for _, tc := range cases {
		_, err := Parse(tc.spec)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q) error = %v, want %v", tc.spec, err, tc.want)
		}
	}
}

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range All() {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("%s: marshal: %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%s: unmarshal: %v", typ, err)
		}
		if back != typ {
			t.Fatalf("round trip changed %s into %s", typ, back)
		}
	}
}

func TestRegistryConfiguration(t *testing.T) {
	for _, typ := range All() {
		if res := typ.ValidateConfiguration(); !res.Valid {
			t.Fatalf("%s: invalid configuration: %s", typ, res.Message)
		}
		if typ.Description() == "" {
			t.Fatalf("%s: empty description", typ)
		}
		if typ.Priority() <= 0 {
			t.Fatalf("%s: non-positive priority", typ)
		}
		if typ.HasTemplate() && typ.Metadata().MaxDataLength == 0 {
			t.Fatalf("%s: template without data positions", typ)
		}
	}
}

func TestAgeClampsAndSwaps(t *testing.T) {
	min, max := Age(70, -5).Bounds()
	if min != 0 || max != 70 {
		t.Fatalf("Age(70,-5) bounds = %d,%d", min, max)
	}
	if got := Age(18, 65).Template(); got != "00" {
		t.Fatalf("two digit age template = %q", got)
	}
	if got := Age(0, 120).Template(); got != "000" {
		t.Fatalf("three digit age template = %q", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label("  ", Phone); got != "Phone Number" {
		t.Fatalf("blank label = %q", got)
	}
	if got := Label("Mobile", Phone); got != "Mobile" {
		t.Fatalf("custom label = %q", got)
	}
}
