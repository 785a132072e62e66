package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-maskfield/pkg/formspec"
)

// DefaultTemplate is the embedded evaluation template name.
const DefaultTemplate = "evaluation.tpl"

// EmptyValue is shown for fields left blank.
const EmptyValue = "(empty)"

//go:embed templates/*.tpl
var embedded embed.FS

// Option configures a Renderer.
type Option func(*config)

type config struct {
	baseDir  string
	files    fs.FS
	template string
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files instead of the embedded set.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithTemplate selects the template to execute.
func WithTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.template = trimmed
		}
	}
}

// Renderer executes an evaluation template.
type Renderer struct {
	mu   sync.Mutex
	set  *pongo2.TemplateSet
	name string
	tpl  *pongo2.Template
}

// New builds a Renderer. Without options it uses the embedded template.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{template: DefaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("report: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) == 0 {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("report: embedded templates: %w", err)
		}
		loaders = append(loaders, pongo2.NewFSLoader(sub))
	}

	return &Renderer{
		set:  pongo2.NewSet("maskfield-report", loaders...),
		name: cfg.template,
	}, nil
}

// Render writes the evaluation of form as text. The result is also copied
// to every writer in out.
func (r *Renderer) Render(form formspec.Form, eval formspec.Evaluation, out ...io.Writer) (string, error) {
	if r == nil || r.set == nil {
		return "", errors.New("report: renderer is nil")
	}
	tpl, err := r.template()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(Context(form, eval), &buf); err != nil {
		return "", fmt.Errorf("report: execute %q: %w", r.name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tpl != nil {
		return r.tpl, nil
	}
	tpl, err := r.set.FromFile(r.name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", r.name, err)
	}
	r.tpl = tpl
	return tpl, nil
}

// Render formats eval with the embedded template.
func Render(form formspec.Form, eval formspec.Evaluation) (string, error) {
	r, err := New()
	if err != nil {
		return "", err
	}
	return r.Render(form, eval)
}

// Context builds the template data for an evaluation. Rows follow the form
// field order with labels padded to a common width.
func Context(form formspec.Form, eval formspec.Evaluation) pongo2.Context {
	messages := eval.Report.Messages()

	width := 0
	for _, field := range form.Fields {
		if n := utf8.RuneCountInString(field.DisplayLabel()); n > width {
			width = n
		}
	}

	rows := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		value := eval.Values[field.Name]
		if value == "" {
			value = EmptyValue
		}
		rows = append(rows, map[string]any{
			"name":    field.Name,
			"label":   pad(field.DisplayLabel(), width),
			"value":   value,
			"message": messages[field.Name],
		})
	}

	groups := make([]map[string]any, 0, len(eval.Groups))
	for _, status := range eval.Groups {
		summary := fmt.Sprintf("ok (%d fields)", status.Fields)
		if !status.Valid {
			summary = fmt.Sprintf("%d of %d invalid", status.Invalid, status.Fields)
		}
		groups = append(groups, map[string]any{
			"name":    status.Group,
			"summary": summary,
		})
	}

	return pongo2.Context{
		"title":  title(form),
		"rows":   rows,
		"groups": groups,
		"result": result(eval),
		"valid":  eval.Valid,
	}
}

func title(form formspec.Form) string {
	if strings.TrimSpace(form.Title) != "" {
		return form.Title
	}
	return form.ID
}

func result(eval formspec.Evaluation) string {
	if eval.Valid {
		return "valid"
	}
	issues := 0
	if eval.Report != nil {
		issues = len(eval.Report.Issues)
	}
	switch issues {
	case 0:
		return "invalid"
	case 1:
		return "invalid (1 issue)"
	default:
		return fmt.Sprintf("invalid (%d issues)", issues)
	}
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
