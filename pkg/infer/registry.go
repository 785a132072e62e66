package infer

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

// Hint carries what a form definition knows about a field.
type Hint struct {
	// Type is an explicit type spec such as "phone" or "age(18,65)".
	Type      string
	Name      string
	Label     string
	Format    string
	MaxLength int
	Minimum   *int
	Maximum   *int
}

// Matcher decides whether a rule applies to a hint.
type Matcher func(Hint) bool

// Builder produces the type for a matched hint.
type Builder func(Hint) fieldtype.Type

type rule struct {
	name     string
	priority int
	match    Matcher
	build    Builder
	order    int
}

// Registry resolves hints to field types. Higher priority wins; ties fall
// back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry returns a registry with the built-in rules.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a rule. Blank names and nil functions are ignored.
func (r *Registry) Register(name string, priority int, match Matcher, build Builder) {
	if r == nil || match == nil || build == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    match,
		build:    build,
		order:    len(r.rules),
	})
}

// RegisterType adds a rule that always yields t.
func (r *Registry) RegisterType(t fieldtype.Type, priority int, match Matcher) {
	r.Register(t.String(), priority, match, func(Hint) fieldtype.Type { return t })
}

// Resolve returns the type for hint. An explicit, parseable Type wins over
// the rules. ok is false when nothing matched.
func (r *Registry) Resolve(hint Hint) (fieldtype.Type, bool) {
	if spec := strings.TrimSpace(hint.Type); spec != "" {
		if t, err := fieldtype.Parse(spec); err == nil {
			return t, true
		}
	}
	if r == nil {
		return fieldtype.Type{}, false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(hint) {
			return entry.build(hint), true
		}
	}
	return fieldtype.Type{}, false
}

// ResolveOr returns Resolve's type or fallback.
func (r *Registry) ResolveOr(hint Hint, fallback fieldtype.Type) fieldtype.Type {
	if t, ok := r.Resolve(hint); ok {
		return t
	}
	return fallback
}

func (r *Registry) registerBuiltins() {
	r.RegisterType(fieldtype.CVV, 95, nameHas("cvv", "cvc", "securitycode"))
	r.RegisterType(fieldtype.ExpDate, 94, nameHas("expdate", "expiry", "expiration", "ccexp"))
	r.RegisterType(fieldtype.Credit, 93, func(h Hint) bool {
		return formatIs(h, "credit-card", "creditcard") || nameHas("cardnumber", "creditcard", "ccnumber")(h)
	})
	r.RegisterType(fieldtype.SSN, 92, func(h Hint) bool {
		return formatIs(h, "ssn") || nameHas("ssn", "socialsecurity")(h)
	})
	r.RegisterType(fieldtype.Phone, 90, func(h Hint) bool {
		return formatIs(h, "phone", "tel") || nameHas("phone", "mobile", "tel")(h)
	})
	r.RegisterType(fieldtype.Zip, 88, func(h Hint) bool {
		return formatIs(h, "zip", "postal-code") || nameHas("zip", "postal")(h)
	})

	r.Register("age", 85, func(h Hint) bool {
		return nameHas("age")(h) && !nameHas("page", "percentage", "mileage", "image", "message", "language", "usage", "stage")(h)
	}, func(h Hint) fieldtype.Type {
		min, max := 0, 120
		if h.Minimum != nil {
			min = *h.Minimum
		}
		if h.Maximum != nil {
			max = *h.Maximum
		}
		return fieldtype.Age(min, max)
	})

	r.RegisterType(fieldtype.Date, 80, func(h Hint) bool {
		return formatIs(h, "date") || nameHas("birthdate", "dob", "dateofbirth")(h)
	})
	r.RegisterType(fieldtype.Percent, 75, func(h Hint) bool {
		return formatIs(h, "percent") || nameHas("percent", "rate")(h)
	})
	r.RegisterType(fieldtype.Currency, 74, func(h Hint) bool {
		return formatIs(h, "currency", "money") || nameHas("amount", "price", "cost", "salary", "total")(h)
	})
	r.RegisterType(fieldtype.StreetNumber, 70, nameHas("streetnumber", "housenumber", "streetno"))
	r.RegisterType(fieldtype.Street, 68, nameHas("street", "address"))
	r.RegisterType(fieldtype.StateCode, 66, func(h Hint) bool {
		return nameHas("state")(h) && h.MaxLength == 2
	})
	r.RegisterType(fieldtype.State, 65, nameHas("state", "province"))
	r.RegisterType(fieldtype.City, 60, nameHas("city", "town"))
	r.RegisterType(fieldtype.Name, 50, nameHas("name"))

	r.Register("dataLength", 20, func(h Hint) bool {
		return h.MaxLength > 0 && h.Format == ""
	}, func(h Hint) fieldtype.Type {
		return fieldtype.DataLength(h.MaxLength)
	})
}

// normalize lowercases s and drops separators so "card_number",
// "cardNumber" and "Card Number" compare equal.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

func nameHas(tokens ...string) Matcher {
	return func(h Hint) bool {
		name := normalize(h.Name)
		if name == "" {
			name = normalize(h.Label)
		}
		for _, token := range tokens {
			if strings.Contains(name, token) {
				return true
			}
		}
		return false
	}
}

func formatIs(h Hint, formats ...string) bool {
	format := strings.ToLower(strings.TrimSpace(h.Format))
	for _, f := range formats {
		if format == f {
			return true
		}
	}
	return false
}
