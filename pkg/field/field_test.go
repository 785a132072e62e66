package field

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

type aggCall struct {
	Op    string
	Group string
	ID    string
	Valid bool
}

type recordingAggregator struct {
	mu    sync.Mutex
	calls []aggCall
}

func (r *recordingAggregator) Update(group, id string, valid bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, aggCall{Op: "update", Group: group, ID: id, Valid: valid})
}

func (r *recordingAggregator) Remove(group, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, aggCall{Op: "remove", Group: group, ID: id})
}

func (r *recordingAggregator) last() aggCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func (r *recordingAggregator) count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func TestField_PhoneLifecycle(t *testing.T) {
	f := New(fieldtype.Phone, WithID("phone"))
	if got := f.Snapshot().State; !got.IsIdle() {
		t.Fatalf("expected idle, got %s", got)
	}

	f.SetFocus(true)
	snap := f.SetText("5551234567")
	want := Snapshot{
		ID:              "phone",
		Text:            "(555) 123-4567",
		Template:        "(000) 000-0000",
		State:           Focused(true, ""),
		Focused:         true,
		SubmissionValid: true,
	}
	if diff := cmp.Diff(want, snap, cmp.AllowUnexported(State{})); diff != "" {
		t.Fatalf("focused snapshot mismatch (-want +got):\n%s", diff)
	}

	change := f.SetFocus(false)
	if change.Transition != LosingFocus || change.Failed {
		t.Fatalf("unexpected focus change %+v", change)
	}
	if !change.Snapshot.Finalized || change.Snapshot.State != Inactive(true, "") {
		t.Fatalf("expected finalized valid field, got %+v", change.Snapshot)
	}
	if !f.SubmissionValid() {
		t.Fatalf("expected complete phone to be submittable")
	}
}

func TestField_IncompletePhoneOnFocusLoss(t *testing.T) {
	f := New(fieldtype.Phone)
	f.SetFocus(true)
	f.SetText("555123")
	change := f.SetFocus(false)

	if change.Snapshot.Text != "(555) 123-" {
		t.Fatalf("final text = %q", change.Snapshot.Text)
	}
	if got := change.Snapshot.State; got != Inactive(false, "Incomplete Phone #") {
		t.Fatalf("state = %s", got)
	}
	if f.SubmissionValid() {
		t.Fatalf("incomplete phone must not be submittable")
	}

	f.SetFocus(true)
	if got := f.Snapshot().Text; got != "(555) 123" {
		t.Fatalf("refocused text = %q, want trailing literals dropped", got)
	}
}

func TestField_LiveFailureAbortsFocusLoss(t *testing.T) {
	f := New(fieldtype.ExpDate)
	f.SetFocus(true)
	snap := f.SetText("13")
	if snap.State != Focused(false, "Invalid Month") {
		t.Fatalf("focused state = %s", snap.State)
	}

	change := f.SetFocus(false)
	if !change.Failed {
		t.Fatalf("expected focus loss to fail")
	}
	if change.Snapshot.Text != "13" || change.Snapshot.Finalized {
		t.Fatalf("failed focus loss must not finalize, got %+v", change.Snapshot)
	}
	if change.Snapshot.State != Inactive(false, "Invalid Month") {
		t.Fatalf("state = %s", change.Snapshot.State)
	}
}

func TestField_CurrencyTyping(t *testing.T) {
	f := New(fieldtype.Currency)
	f.SetFocus(true)

	steps := []struct {
		raw      string
		text     string
		template string
	}{
		{raw: "5", text: "$5", template: "$0.00"},
		{raw: "$5.", text: "$5.", template: "$0.00"},
		{raw: "$5.2", text: "$5.2", template: "$0.00"},
	}
	for _, step := range steps {
		snap := f.SetText(step.raw)
		if snap.Text != step.text || snap.Template != step.template {
			t.Fatalf("SetText(%q) = (%q, %q), want (%q, %q)", step.raw, snap.Text, snap.Template, step.text, step.template)
		}
	}

	change := f.SetFocus(false)
	if change.Snapshot.Text != "$5.20" || change.Snapshot.Template != "$0.00" {
		t.Fatalf("final = (%q, %q)", change.Snapshot.Text, change.Snapshot.Template)
	}

	f.SetFocus(true)
	snap := f.SetText("$5.201234")
	if snap.Text != "$5.20" {
		t.Fatalf("expected decimals capped by template, got %q", snap.Text)
	}
}

func TestField_CurrencyGrowsTemplate(t *testing.T) {
	f := New(fieldtype.Currency)
	f.SetFocus(true)
	snap := f.SetText("1234")
	if snap.Text != "$1234" || snap.Template != "$0000.00" {
		t.Fatalf("got (%q, %q)", snap.Text, snap.Template)
	}
	change := f.SetFocus(false)
	if change.Snapshot.Text != "$1234.00" {
		t.Fatalf("final = %q", change.Snapshot.Text)
	}
}

func TestField_EmptyFocusLoss(t *testing.T) {
	optional := New(fieldtype.Currency)
	optional.SetFocus(true)
	change := optional.SetFocus(false)
	if change.Snapshot.Text != "" || !change.Snapshot.State.IsIdle() || !change.Snapshot.Finalized {
		t.Fatalf("empty optional field = %+v", change.Snapshot)
	}
	if !optional.SubmissionValid() {
		t.Fatalf("empty optional field must be submittable")
	}

	required := New(fieldtype.Zip, WithRequired(true))
	if required.SubmissionValid() {
		t.Fatalf("idle required field must not be submittable")
	}
	required.SetFocus(true)
	change = required.SetFocus(false)
	if change.Snapshot.State != Inactive(false, RequiredMessage) {
		t.Fatalf("state = %s", change.Snapshot.State)
	}
}

func TestField_FocusedEmptyNotSubmittable(t *testing.T) {
	cases := []struct {
		name string
		typ  fieldtype.Type
	}{
		{name: "zip", typ: fieldtype.Zip},
		{name: "phone", typ: fieldtype.Phone},
		{name: "age", typ: fieldtype.Age(18, 65)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := &recordingAggregator{}
			f := New(tc.typ, WithID(tc.name), WithGroup("form", agg))
			f.SetFocus(true)

			snap := f.Snapshot()
			if snap.State != Focused(true, "") {
				t.Fatalf("state = %s", snap.State)
			}
			if snap.SubmissionValid || f.SubmissionValid() {
				t.Fatalf("focused empty %s must be re-checked as a result", tc.name)
			}
			if got := agg.last(); got.Valid {
				t.Fatalf("group saw a valid update: %+v", got)
			}
		})
	}
}

func TestField_LiteralKeystrokeKeepsText(t *testing.T) {
	f := New(fieldtype.Phone)
	f.SetFocus(true)
	f.SetText("555")
	snap := f.SetText("(555)")
	if snap.Text != "(555" {
		t.Fatalf("text = %q", snap.Text)
	}
}

func TestField_FinalizedTextStoredAsIs(t *testing.T) {
	f := New(fieldtype.Zip)
	f.SetFocus(true)
	f.SetText("90210")
	f.SetFocus(false)

	snap := f.SetText("9021")
	if snap.Text != "9021" {
		t.Fatalf("finalized field reprocessed text: %q", snap.Text)
	}
	if snap.State != Inactive(false, "Incomplete Zip Code") {
		t.Fatalf("state = %s", snap.State)
	}
}

func TestField_WithText(t *testing.T) {
	f := New(fieldtype.Phone, WithText("5551234567"))
	snap := f.Snapshot()
	if snap.Text != "(555) 123-4567" || snap.State != Inactive(true, "") {
		t.Fatalf("seeded snapshot = %+v", snap)
	}
}

func TestField_GroupUpdatesAndClose(t *testing.T) {
	agg := &recordingAggregator{}
	f := New(fieldtype.Zip, WithID("zip"), WithGroup("billing", agg))

	f.SetFocus(true)
	f.SetText("902")
	if got := agg.last(); got != (aggCall{Op: "update", Group: "billing", ID: "zip", Valid: false}) {
		t.Fatalf("last call = %+v", got)
	}
	f.SetText("90210")
	if got := agg.last(); !got.Valid {
		t.Fatalf("expected valid update, got %+v", got)
	}

	f.Close()
	f.Close()
	if agg.count("remove") != 1 {
		t.Fatalf("expected a single removal, got %d", agg.count("remove"))
	}
	updates := agg.count("update")
	f.SetText("1")
	if agg.count("update") != updates {
		t.Fatalf("closed field kept pushing updates")
	}
}

func TestField_NoGroupNoCalls(t *testing.T) {
	agg := &recordingAggregator{}
	f := New(fieldtype.Zip, WithGroup("", agg))
	f.SetFocus(true)
	f.SetText("1")
	f.Close()
	if len(agg.calls) != 0 {
		t.Fatalf("expected no calls without a group, got %d", len(agg.calls))
	}

	nilAgg := New(fieldtype.Zip, WithGroup("billing", nil))
	nilAgg.SetText("1")
	nilAgg.Close()
}

func TestField_GeneratedID(t *testing.T) {
	a, b := New(fieldtype.Phrase), New(fieldtype.Phrase)
	if !strings.HasPrefix(a.ID(), idPrefix) || len(a.ID()) != len(idPrefix)+idLength {
		t.Fatalf("unexpected id %q", a.ID())
	}
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids")
	}
}
