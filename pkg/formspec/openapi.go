package formspec

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ExtensionKey is the schema extension carrying field settings. It may be
// a type spec string or an object with type, label, group, template and
// required keys.
const ExtensionKey = "x-maskfield"

// FromOpenAPI builds a form from the request body of operationID. Each top
// level property becomes a field, ordered by name.
func FromOpenAPI(ctx context.Context, data []byte, operationID string, opts ...Option) (Form, error) {
	if err := ctx.Err(); err != nil {
		return Form{}, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, fmt.Errorf("%w: openapi document", ErrEmptyDocument)
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Form{}, fmt.Errorf("formspec: load openapi document: %w", err)
	}

	op, path := findOperation(doc, operationID)
	if op == nil {
		return Form{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return Form{}, fmt.Errorf("%w: operation %q", ErrNoFields, operationID)
	}

	form := Form{
		ID:     operationID,
		Title:  op.Summary,
		Source: path,
	}
	if group, ok := schema.Extensions[ExtensionKey+"-group"].(string); ok {
		form.Group = group
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		form.Fields = append(form.Fields, fieldFromSchema(name, ref.Value, required[name]))
	}

	return normalise(form, newLoadConfig(opts))
}

// OperationIDs lists the operations in data that accept a request body.
func OperationIDs(ctx context.Context, data []byte) ([]string, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("formspec: load openapi document: %w", err)
	}
	var ids []string
	if doc.Paths == nil {
		return ids, nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID != "" && op.RequestBody != nil {
				ids = append(ids, op.OperationID)
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func findOperation(doc *openapi3.T, operationID string) (*openapi3.Operation, string) {
	if doc.Paths == nil {
		return nil, ""
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op, strings.ToLower(method) + ":" + path
			}
		}
	}
	return nil, ""
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, src *openapi3.Schema, required bool) Field {
	field := Field{
		Name:     name,
		Label:    src.Title,
		Help:     src.Description,
		Format:   src.Format,
		Required: required,
	}
	if src.MaxLength != nil && *src.MaxLength <= math.MaxInt32 {
		field.MaxLength = int(*src.MaxLength)
	}
	if src.Min != nil {
		v := int(*src.Min)
		field.Minimum = &v
	}
	if src.Max != nil {
		v := int(*src.Max)
		field.Maximum = &v
	}
	if s, ok := src.Default.(string); ok {
		field.Value = s
	}
	applyExtension(&field, src.Extensions[ExtensionKey])
	return field
}

func applyExtension(field *Field, raw any) {
	switch ext := raw.(type) {
	case string:
		field.Type = ext
	case map[string]any:
		if v, ok := ext["type"].(string); ok {
			field.Type = v
		}
		if v, ok := ext["label"].(string); ok {
			field.Label = v
		}
		if v, ok := ext["group"].(string); ok {
			field.Group = v
		}
		if v, ok := ext["template"].(string); ok {
			field.Template = v
		}
		if v, ok := ext["required"].(bool); ok {
			field.Required = v
		}
	}
}
