package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/fieldtype"
	"github.com/goliatone/go-maskfield/pkg/formspec"
	"github.com/goliatone/go-maskfield/pkg/group"
	"github.com/goliatone/go-maskfield/pkg/report"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// Session prompts for every field of a form.
type Session struct {
	driver      PromptDriver
	format      OutputFormat
	logger      *slog.Logger
	maxAttempts int
	confirm     bool
	groupOpts   []group.Option
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		format: OutputFormatJSON,
		logger: slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	switch s.format {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run collects the form and serializes the result.
func (s *Session) Run(ctx context.Context, form formspec.Form, prefill map[string]string) ([]byte, error) {
	eval, err := s.Collect(ctx, form, prefill)
	if err != nil {
		return nil, err
	}
	return s.serialize(form, eval)
}

// Collect prompts for each field in order. An answer is accepted once the
// field it is typed into passes focus loss; otherwise the message is shown
// and the field asked again.
func (s *Session) Collect(ctx context.Context, form formspec.Form, prefill map[string]string) (formspec.Evaluation, error) {
	if ctx == nil {
		return formspec.Evaluation{}, errors.New("tui: context is required")
	}
	if s.driver == nil {
		return formspec.Evaluation{}, ErrNoDriver
	}

	mgr := group.New(append([]group.Option{group.WithLogger(s.logger)}, s.groupOpts...)...)
	defer func() { _ = mgr.Stop() }()

	var fields []*field.Field
	defer func() {
		for _, f := range fields {
			f.Close()
		}
	}()

	state := NewState(prefill)
	for _, spec := range form.Fields {
		if err := ctx.Err(); err != nil {
			return formspec.Evaluation{}, err
		}
		f, err := s.promptField(ctx, form, spec, state, mgr)
		if f != nil {
			fields = append(fields, f)
		}
		if err != nil {
			return formspec.Evaluation{}, err
		}
	}

	if s.confirm {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Submit %s?", title(form)),
			Default: true,
		})
		if err != nil {
			return formspec.Evaluation{}, err
		}
		if !ok {
			return formspec.Evaluation{}, ErrAborted
		}
	}

	return formspec.Evaluation{
		FormID: form.ID,
		Valid:  mgr.AllValid(),
		Values: state.Values(),
		Report: validation.NewReport(),
		Groups: mgr.Snapshot(),
	}, nil
}

// promptField asks for spec until an answer settles. The returned field
// stays registered with agg until the caller closes it.
func (s *Session) promptField(ctx context.Context, form formspec.Form, spec formspec.Field, state *State, agg field.Aggregator) (*field.Field, error) {
	t, err := spec.FieldType()
	if err != nil {
		return nil, fmt.Errorf("tui: field %s: %w", spec.Name, err)
	}

	grp := spec.GroupName(form)
	if grp == "" {
		grp = form.ID
	}
	f := field.New(t,
		field.WithID(spec.Name),
		field.WithRequired(spec.Required),
		field.WithTemplate(spec.Template),
		field.WithGroup(grp, agg),
		field.WithLogger(s.logger),
	)

	defaultVal, ok := state.Value(spec.Name)
	if !ok {
		defaultVal = spec.Value
	}

	for attempt := 1; ; attempt++ {
		answer, err := s.driver.Input(ctx, InputConfig{
			Message:   promptLabel(spec),
			Default:   defaultVal,
			Help:      help(spec, t),
			Validator: answerValidator(spec, t),
		})
		if err != nil {
			return f, err
		}

		f.SetFocus(true)
		f.SetText(answer)
		change := f.SetFocus(false)
		snap := change.Snapshot
		if !change.Failed && snap.State.Valid() {
			state.SetValue(spec.Name, snap.Text)
			return f, nil
		}

		message := snap.State.Message()
		state.SetError(spec.Name, message)
		s.logger.Debug("tui: answer rejected",
			"field", spec.Name,
			"attempt", attempt,
			"message", message,
		)
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return f, fmt.Errorf("%w: %s: %s", ErrTooManyAttempts, spec.Name, message)
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Invalid %s: %s", spec.DisplayLabel(), message)); err != nil {
			return f, err
		}
		defaultVal = snap.Text
	}
}

// answerValidator checks an answer on a scratch field so interactive drivers
// can reject it before it is submitted.
func answerValidator(spec formspec.Field, t fieldtype.Type) func(string) error {
	return func(answer string) error {
		f := field.New(t, field.WithRequired(spec.Required), field.WithTemplate(spec.Template))
		defer f.Close()
		f.SetFocus(true)
		f.SetText(answer)
		change := f.SetFocus(false)
		if change.Failed || !change.Snapshot.State.Valid() {
			return validation.Fail(change.Snapshot.State.Message()).Err()
		}
		return nil
	}
}

func promptLabel(spec formspec.Field) string {
	label := spec.DisplayLabel()
	if spec.Required {
		return label + " *"
	}
	return label
}

func help(spec formspec.Field, t fieldtype.Type) string {
	if h := strings.TrimSpace(spec.Help); h != "" {
		return h
	}
	template := spec.Template
	if template == "" {
		template = t.Template()
	}
	if template != "" {
		return "Format: " + template
	}
	return ""
}

func title(form formspec.Form) string {
	if strings.TrimSpace(form.Title) != "" {
		return form.Title
	}
	return form.ID
}

func (s *Session) serialize(form formspec.Form, eval formspec.Evaluation) ([]byte, error) {
	switch s.format {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for k, v := range eval.Values {
			values.Set(k, v)
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		out, err := report.Render(form, eval)
		if err != nil {
			return nil, fmt.Errorf("tui: render report: %w", err)
		}
		return []byte(out), nil
	default:
		return json.Marshal(eval.Values)
	}
}
