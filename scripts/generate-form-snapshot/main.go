package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-maskfield/pkg/formspec"
)

type fieldSnapshot struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Template    string `json:"template,omitempty"`
	Group       string `json:"group"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description"`
}

type formSnapshot struct {
	ID     string          `json:"id"`
	Title  string          `json:"title,omitempty"`
	Source string          `json:"source"`
	Fields []fieldSnapshot `json:"fields"`
}

// Writes the fields of a form, with their resolved types, as JSON. Useful
// when checking what type inference picked for an OpenAPI operation.
func main() {
	var (
		sourcePath  = flag.String("source", "examples/fixtures/petstore.yaml", "form file or OpenAPI document")
		operationID = flag.String("operation", "", "operation ID; when set the source is read as OpenAPI")
		outputPath  = flag.String("output", "", "output path (stdout when empty)")
	)
	flag.Parse()

	form, err := load(*sourcePath, *operationID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load form: %v\n", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(snapshot(form), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode snapshot: %v\n", err)
		os.Exit(1)
	}
	payload = append(payload, '\n')

	if *outputPath == "" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote form snapshot to %s\n", *outputPath)
}

func load(path, operationID string) (formspec.Form, error) {
	if operationID == "" {
		return formspec.LoadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return formspec.Form{}, err
	}
	return formspec.FromOpenAPI(context.Background(), data, operationID)
}

func snapshot(form formspec.Form) formSnapshot {
	out := formSnapshot{ID: form.ID, Title: form.Title, Source: form.Source}
	for _, spec := range form.Fields {
		t, err := spec.FieldType()
		typeName := t.String()
		if err != nil {
			typeName = "error: " + err.Error()
		}
		template := spec.Template
		if template == "" {
			template = t.Template()
		}
		grp := spec.GroupName(form)
		if grp == "" {
			grp = form.ID
		}
		out.Fields = append(out.Fields, fieldSnapshot{
			Name:        spec.Name,
			Label:       spec.DisplayLabel(),
			Type:        typeName,
			Template:    template,
			Group:       grp,
			Required:    spec.Required,
			Description: t.Description(),
		})
	}
	return out
}
