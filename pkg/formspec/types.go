package formspec

import (
	"github.com/goliatone/go-maskfield/pkg/fieldtype"
)

// Form is an ordered set of masked fields.
type Form struct {
	ID     string  `json:"id" yaml:"id" toml:"id"`
	Title  string  `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Group  string  `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Fields []Field `json:"fields" yaml:"fields" toml:"fields"`

	// Source is the file or document the form came from.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Field describes one input. Type is an explicit type spec; when blank the
// type is inferred from the other hints.
type Field struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Help      string `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Template  string `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty"`
	Group     string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Required  bool   `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	MaxLength int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	Minimum   *int   `json:"minimum,omitempty" yaml:"minimum,omitempty" toml:"minimum,omitempty"`
	Maximum   *int   `json:"maximum,omitempty" yaml:"maximum,omitempty" toml:"maximum,omitempty"`

	resolved   fieldtype.Type
	resolveErr error
}

// FieldType returns the type resolved at load time, or the parse error of
// an explicit type spec.
func (f Field) FieldType() (fieldtype.Type, error) {
	return f.resolved, f.resolveErr
}

// DisplayLabel returns the label or the type description.
func (f Field) DisplayLabel() string {
	return fieldtype.Label(f.Label, f.resolved)
}

// GroupName returns the field group, falling back to the form group.
func (f Field) GroupName(form Form) string {
	if f.Group != "" {
		return f.Group
	}
	return form.Group
}

// Field returns the named field.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
