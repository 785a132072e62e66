package tui

import (
	"log/slog"

	"github.com/goliatone/go-maskfield/pkg/group"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object of field values.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded values.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits the plain text evaluation report.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(s) {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return OutputFormat(s), true
	case "":
		return OutputFormatJSON, true
	default:
		return "", false
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.format = format
		}
	}
}

// WithLogger sets the logger handed to every field.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxAttempts bounds how often a single field is re-prompted. Zero means
// no limit.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithConfirm asks for confirmation before returning the collected values.
func WithConfirm(confirm bool) Option {
	return func(s *Session) {
		s.confirm = confirm
	}
}

// WithGroupOptions configures the group manager that tracks field validity
// during a session, for example to attach a listener.
func WithGroupOptions(opts ...group.Option) Option {
	return func(s *Session) {
		s.groupOpts = append(s.groupOpts, opts...)
	}
}
