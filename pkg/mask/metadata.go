package mask

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-maskfield/pkg/validation"
)

// ReservedLiterals lists formatting characters that may not be used as
// placeholders.
const ReservedLiterals = "()-./ "

// Metadata summarises a template/placeholder pair.
type Metadata struct {
	HasTemplate     bool `json:"hasTemplate"`
	HasPlaceholders bool `json:"hasPlaceholders"`
	TemplateLength  int  `json:"templateLength"`
	MaxDataLength   int  `json:"maxDataLength"`
}

// Describe computes the metadata for a template/placeholder pair.
func Describe(template, placeholders string) Metadata {
	return Metadata{
		HasTemplate:     HasTemplate(template),
		HasPlaceholders: HasPlaceholders(placeholders),
		TemplateLength:  TemplateLength(template),
		MaxDataLength:   MaxDataLength(template, placeholders),
	}
}

func HasTemplate(template string) bool { return template != "" }

func HasPlaceholders(placeholders string) bool { return placeholders != "" }

// TemplateLength is the character count of the fully formatted text.
func TemplateLength(template string) int {
	return utf8.RuneCountInString(template)
}

// MaxDataLength counts template positions that carry data.
func MaxDataLength(template, placeholders string) int {
	if template == "" || placeholders == "" {
		return 0
	}
	count := 0
	for _, ch := range template {
		if strings.ContainsRune(placeholders, ch) {
			count++
		}
	}
	return count
}

// ValidateConfiguration reports structural problems with a template and its
// placeholder alphabet. It is a setup-time diagnostic; nothing in the
// formatting path enforces it.
func ValidateConfiguration(template, placeholders string) validation.Result {
	if template == "" {
		if placeholders != "" {
			return validation.Fail("Placeholders defined but no template provided")
		}
		return validation.OK()
	}
	if placeholders == "" {
		return validation.Fail("Template provided but no placeholders defined")
	}
	if MaxDataLength(template, placeholders) == 0 {
		return validation.Fail("Template does not contain any placeholder characters")
	}
	for _, ch := range placeholders {
		if strings.ContainsRune(ReservedLiterals, ch) {
			return validation.Failf("Placeholder '%c' conflicts with common formatting characters", ch)
		}
	}
	return validation.OK()
}
