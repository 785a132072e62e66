package field

import (
	"log/slog"
	"sync"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

// Snapshot is what a Field exposes after each event.
type Snapshot struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Template        string `json:"template"`
	State           State  `json:"state"`
	Focused         bool   `json:"focused"`
	Finalized       bool   `json:"finalized"`
	SubmissionValid bool   `json:"submission_valid"`
}

// FocusChange is returned by SetFocus.
type FocusChange struct {
	Transition Transition
	// Failed is set when focus loss stopped on a live validation failure.
	Failed   bool
	Snapshot Snapshot
}

// Field is one masked input. Methods are safe for concurrent use, although a
// field is normally driven from a single event loop.
type Field struct {
	mu sync.Mutex

	typ      fieldtype.Type
	id       string
	group    string
	agg      Aggregator
	required bool
	logger   *slog.Logger
	initial  *string

	text      string
	template  string
	state     State
	focused   bool
	finalized bool
	closed    bool
}

// New creates a field of type t in the Idle state.
func New(t fieldtype.Type, opts ...Option) *Field {
	f := &Field{
		typ:      t,
		template: t.Template(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.id == "" {
		f.id = newID()
	}
	if f.initial != nil {
		text := *f.initial
		f.initial = nil
		f.SetText(text)
	}
	return f
}

func (f *Field) ID() string { return f.id }

func (f *Field) Type() fieldtype.Type { return f.typ }

func (f *Field) Group() string { return f.group }

func (f *Field) Required() bool { return f.required }

// SetText applies a text change. While focused (or before the first
// finalization) the text is run through the dynamic template, filter and
// reconstruct steps; a finalized, unfocused field stores text as given.
func (f *Field) SetText(text string) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.finalized && !f.focused:
		f.text = text
	case ShouldUpdate(f.typ, f.text, text):
		f.reformat(text, DetermineExpansion(f.text, text))
	}
	f.recompute()
	return f.snapshotLocked()
}

// SetFocus applies a focus change and runs the focus-loss sequence when the
// field is losing focus.
func (f *Field) SetFocus(focused bool) FocusChange {
	f.mu.Lock()
	defer f.mu.Unlock()

	transition := AnalyzeTransition(f.focused, focused)
	f.focused = focused

	switch transition {
	case GainingFocus:
		f.finalized = false
		f.reformat(f.text, nil)
	case LosingFocus:
		loss := ProcessFocusLoss(f.typ, f.text, f.template)
		if loss.Failed() {
			f.setState(Inactive(false, loss.Live.Message))
			return FocusChange{Transition: transition, Failed: true, Snapshot: f.snapshotLocked()}
		}
		f.text, f.template, f.finalized = loss.Text, loss.Template, loss.Finalized
	}

	f.recompute()
	return FocusChange{Transition: transition, Snapshot: f.snapshotLocked()}
}

// Snapshot returns the current text, template and state.
func (f *Field) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SubmissionValid reports whether the field may be submitted as is.
func (f *Field) SubmissionValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return SubmissionValid(f.state, f.typ, f.text, f.required)
}

// Close removes the field from its group. Further calls are no-ops.
func (f *Field) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	pushRemove(f.agg, f.group, f.id)
}

func (f *Field) reformat(raw string, expansion *bool) {
	f.template = f.adoptTemplate(raw)
	f.text = f.typ.Reconstruct(raw, f.typ.Filter(raw, expansion), f.template)
}

func (f *Field) adoptTemplate(raw string) string {
	next := ApplyDynamicTemplate(f.typ, raw, f.template)
	if next != f.template {
		f.logger.Debug("field: template adopted",
			"field", f.id,
			"type", f.typ.String(),
			"from", f.template,
			"to", next,
		)
	}
	return next
}

func (f *Field) recompute() {
	f.setState(ComputeState(f.typ, f.text, f.template, f.focused, f.required))
}

func (f *Field) setState(next State) {
	if next != f.state {
		f.logger.Debug("field: state changed",
			"field", f.id,
			"type", f.typ.String(),
			"from", f.state.String(),
			"to", next.String(),
		)
	}
	f.state = next
	if !f.closed {
		pushUpdate(f.agg, f.group, f.id, SubmissionValid(f.state, f.typ, f.text, f.required))
	}
}

func (f *Field) snapshotLocked() Snapshot {
	return Snapshot{
		ID:              f.id,
		Text:            f.text,
		Template:        f.template,
		State:           f.state,
		Focused:         f.focused,
		Finalized:       f.finalized,
		SubmissionValid: SubmissionValid(f.state, f.typ, f.text, f.required),
	}
}
