package formspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-maskfield/pkg/fieldtype"
	"github.com/goliatone/go-maskfield/pkg/infer"
)

type loadConfig struct {
	registry *infer.Registry
}

// Option configures loading.
type Option func(*loadConfig)

// WithRegistry sets the registry used to infer types for fields without an
// explicit type.
func WithRegistry(reg *infer.Registry) Option {
	return func(c *loadConfig) {
		if reg != nil {
			c.registry = reg
		}
	}
}

func newLoadConfig(opts []Option) loadConfig {
	cfg := loadConfig{registry: infer.NewRegistry()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// LoadFile reads one form file.
func LoadFile(path string, opts ...Option) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("formspec: read %s: %w", path, err)
	}
	return Parse(data, path, opts...)
}

// LoadFS walks fsys and parses every JSON, YAML and TOML file as a form.
// Form ids must be unique across files.
func LoadFS(fsys fs.FS, opts ...Option) ([]Form, error) {
	if fsys == nil {
		return nil, nil
	}
	cfg := newLoadConfig(opts)
	seen := make(map[string]string)
	var forms []Form

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !IsFormFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formspec: read %s: %w", path, err)
		}
		form, err := parse(data, path, cfg)
		if err != nil {
			return err
		}
		if prev, exists := seen[form.ID]; exists {
			return fmt.Errorf("formspec: duplicate form %q (files %s and %s)", form.ID, prev, path)
		}
		seen[form.ID] = path
		forms = append(forms, form)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// Parse decodes a form from data. TOML is chosen by a .toml source
// extension; anything else is tried as JSON then YAML.
func Parse(data []byte, source string, opts ...Option) (Form, error) {
	return parse(data, source, newLoadConfig(opts))
}

// IsFormFile reports whether path has a supported extension.
func IsFormFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

func parse(data []byte, source string, cfg loadConfig) (Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}
	form, err := decode(data, source)
	if err != nil {
		return Form{}, err
	}
	form.Source = source
	return normalise(form, cfg)
}

func decode(data []byte, source string) (Form, error) {
	var form Form
	if strings.EqualFold(filepath.Ext(source), ".toml") {
		if err := toml.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("formspec: parse %s: %w", source, err)
		}
		return form, nil
	}
	if err := json.Unmarshal(data, &form); err == nil {
		return form, nil
	}
	form = Form{}
	if err := yaml.Unmarshal(data, &form); err == nil {
		return form, nil
	}
	return Form{}, fmt.Errorf("formspec: parse %s: invalid JSON or YAML", source)
}

func normalise(form Form, cfg loadConfig) (Form, error) {
	form.ID = strings.TrimSpace(form.ID)
	if form.ID == "" {
		form.ID = strings.TrimSuffix(filepath.Base(form.Source), filepath.Ext(form.Source))
	}
	form.Title = sanitizeText(form.Title)
	form.Group = strings.TrimSpace(form.Group)
	if len(form.Fields) == 0 {
		return Form{}, fmt.Errorf("%w: form %q (%s)", ErrNoFields, form.ID, form.Source)
	}

	fields := make([]Field, len(form.Fields))
	for idx, field := range form.Fields {
		field.Name = strings.TrimSpace(field.Name)
		field.Label = sanitizeText(field.Label)
		field.Help = sanitizeText(field.Help)
		field.Type = strings.TrimSpace(field.Type)
		field.Group = strings.TrimSpace(field.Group)
		field.resolved, field.resolveErr = resolveType(field, cfg.registry)
		fields[idx] = field
	}
	form.Fields = fields
	return form, nil
}

func resolveType(field Field, reg *infer.Registry) (fieldtype.Type, error) {
	if field.Type != "" {
		return fieldtype.Parse(field.Type)
	}
	return reg.ResolveOr(infer.Hint{
		Name:      field.Name,
		Label:     field.Label,
		Format:    field.Format,
		MaxLength: field.MaxLength,
		Minimum:   field.Minimum,
		Maximum:   field.Maximum,
	}, fieldtype.Data), nil
}
