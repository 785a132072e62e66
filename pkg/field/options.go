package field

import "log/slog"

// Option configures a Field.
type Option func(*Field)

// WithRequired marks the field as required for submission.
func WithRequired(required bool) Option {
	return func(f *Field) {
		f.required = required
	}
}

// WithGroup reports the field's validity to agg under group.
func WithGroup(group string, agg Aggregator) Option {
	return func(f *Field) {
		f.group = group
		f.agg = agg
	}
}

// WithID overrides the generated field id.
func WithID(id string) Option {
	return func(f *Field) {
		if id != "" {
			f.id = id
		}
	}
}

// WithLogger sets the logger used for state change diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithText seeds the field with an initial, unfocused value.
func WithText(text string) Option {
	return func(f *Field) {
		f.initial = &text
	}
}

// WithTemplate overrides the type's initial template.
func WithTemplate(template string) Option {
	return func(f *Field) {
		if template != "" {
			f.template = template
		}
	}
}
