// Package formspec loads form definitions (JSON, YAML, TOML or an OpenAPI
// request body) into Forms whose fields carry a resolved field type, lints
// them and evaluates submitted values.
package formspec
