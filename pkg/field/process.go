package field

import (
	"github.com/goliatone/go-maskfield/pkg/fieldtype"
	"github.com/goliatone/go-maskfield/pkg/mask"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

// RequiredMessage is the state message for an empty required field.
const RequiredMessage = "Required Entry"

// ComputeState derives the state for text. Focused text is filtered,
// reconstructed and checked live; unfocused text is checked as a result.
func ComputeState(t fieldtype.Type, text, template string, focused, required bool) State {
	if focused {
		display := t.Reconstruct(text, t.Filter(text, nil), template)
		res := t.ValidateLive(display)
		return Focused(res.Valid, res.Message)
	}
	if text == "" {
		if required {
			return Inactive(false, RequiredMessage)
		}
		return Idle()
	}
	res := t.ValidateResult(text)
	return Inactive(res.Valid, res.Message)
}

// SubmissionValid reports whether a field in state s with text may be
// submitted. A focused valid field is re-checked as a result, so partial
// or empty text is rejected unless the type accepts it.
func SubmissionValid(s State, t fieldtype.Type, text string, required bool) bool {
	switch {
	case s.IsIdle():
		return !required
	case !s.Valid():
		return false
	case s.IsInactive():
		return true
	case required && text == "":
		return false
	default:
		return t.ValidateResult(text).Valid
	}
}

// ApplyDynamicTemplate returns the template the type derives from raw, or
// current when the type has none or the derived one has no placeholders.
func ApplyDynamicTemplate(t fieldtype.Type, raw, current string) string {
	next, ok := t.DynamicTemplate(raw, current)
	if !ok || mask.MaxDataLength(next, t.Placeholders()) == 0 {
		return current
	}
	return next
}

// FocusLoss is the outcome of ProcessFocusLoss.
type FocusLoss struct {
	Text      string
	Template  string
	Live      validation.Result
	Finalized bool
}

// Failed reports whether live validation stopped the sequence.
func (l FocusLoss) Failed() bool { return !l.Live.Valid }

// ProcessFocusLoss runs filter, final reconstruct and live validation over
// text, then the type's final format. A live failure returns the original
// text and template unfinalized. Empty data is finalized as empty text
// without final formatting.
func ProcessFocusLoss(t fieldtype.Type, text, template string) FocusLoss {
	filtered := t.Filter(text, nil)
	rebuilt := t.FinalReconstruct(filtered, template)

	live := t.ValidateLive(rebuilt)
	if !live.Valid {
		return FocusLoss{Text: text, Template: template, Live: live}
	}
	if filtered == "" {
		return FocusLoss{Text: "", Template: template, Live: live, Finalized: true}
	}

	final, finalTemplate := t.FinalFormat(rebuilt, template)
	return FocusLoss{
		Text:      final,
		Template:  finalTemplate,
		Live:      live,
		Finalized: true,
	}
}

// DisplayText formats text for read-only display: dynamic template, filter,
// reconstruct. It returns the display text and the template it matches.
func DisplayText(t fieldtype.Type, text, template string) (string, string) {
	if template == "" {
		template = t.Template()
	}
	template = ApplyDynamicTemplate(t, text, template)
	return t.Reconstruct(text, t.Filter(text, nil), template), template
}

// DetermineExpansion compares lengths: nil when equal, true when the text
// grew and false when it shrank.
func DetermineExpansion(previous, current string) *bool {
	pn, cn := len([]rune(previous)), len([]rune(current))
	if pn == cn {
		return nil
	}
	grew := cn > pn
	return &grew
}

// ShouldUpdate reports whether a change from previous to current needs
// reprocessing. Fixed-template types skip changes that filter to the same
// data, such as typing a literal the template already supplies.
func ShouldUpdate(t fieldtype.Type, previous, current string) bool {
	if previous == current {
		return false
	}
	if !t.HasTemplate() || t.HasDynamicTemplate() {
		return true
	}
	expansion := DetermineExpansion(previous, current)
	return t.Filter(previous, expansion) != t.Filter(current, expansion)
}
