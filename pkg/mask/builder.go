package mask

import (
	"strings"

	"github.com/goliatone/go-maskfield/pkg/validation"
)

// Builder assembles custom templates and checks them on Build.
//
//	tpl := mask.NewBuilder().Literal("(").Slots('0', 3).Literal(") ").Slots('0', 3).Build()
type Builder struct {
	template     strings.Builder
	placeholders string
}

// Template is a built template/placeholder pair plus its configuration check.
type Template struct {
	Template     string
	Placeholders string
	Result       validation.Result
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetTemplate replaces the template accumulated so far.
func (b *Builder) SetTemplate(template string) *Builder {
	b.template.Reset()
	b.template.WriteString(template)
	return b
}

// SetPlaceholders replaces the placeholder alphabet.
func (b *Builder) SetPlaceholders(placeholders string) *Builder {
	b.placeholders = placeholders
	return b
}

// Literal appends formatting characters.
func (b *Builder) Literal(text string) *Builder {
	b.template.WriteString(text)
	return b
}

// Slots appends n data positions marked by placeholder, adding it to the
// alphabet when missing.
func (b *Builder) Slots(placeholder rune, n int) *Builder {
	if n <= 0 {
		return b
	}
	if !strings.ContainsRune(b.placeholders, placeholder) {
		b.placeholders += string(placeholder)
	}
	b.template.WriteString(strings.Repeat(string(placeholder), n))
	return b
}

// Build returns the template and its configuration check.
func (b *Builder) Build() Template {
	template := b.template.String()
	return Template{
		Template:     template,
		Placeholders: b.placeholders,
		Result:       ValidateConfiguration(template, b.placeholders),
	}
}
