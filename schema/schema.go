// Package schema builds and compiles JSON Schemas for the YAML documents this module
// reads: engine configuration files and session scripts.
//
// # Quick Start
//
//	s := schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "unit":  schema.String("Offset unit").Enum("byte", "rune", "utf16", "grapheme"),
//	    "start": schema.Integer("Selection start").Min(0),
//	}, "start"))
//
//	var doc any
//	_ = yaml.Unmarshal(data, &doc)
//	if err := s.Validate(doc); err != nil {
//	    // err is a *schema.ValidationError
//	}
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema pairs a raw schema map with its compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map[string]any representation.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates data against the schema. data may come straight from
// yaml.Unmarshal or json.Unmarshal; it is normalized to JSON values first.
// Returns nil if valid, or a *ValidationError.
func (s *Schema) Validate(data any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	doc, err := normalize(data)
	if err != nil {
		return &ValidationError{Err: err}
	}
	if err := s.compiled.Validate(doc); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation error with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map into a Schema with a compiled validator.
// Returns nil, nil for a nil map.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	schemaData, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{
		raw:      raw,
		compiled: compiled,
	}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// normalize converts decoded YAML (Go ints, nested map[string]any) into the value
// shapes the validator expects by round-tripping through JSON.
func normalize(data any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("document is not representable as JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// -----------------------------------------------------------------------------
// Schema Builders
// -----------------------------------------------------------------------------

// Object creates a closed object schema with the given properties: keys not listed in
// properties are rejected. Pass property names as variadic arguments to mark them as
// required.
//
// Example:
//
//	schema.Object(map[string]*schema.Property{
//	    "action": schema.String("Format action"),
//	    "start":  schema.Integer("Selection start"),
//	}, "action")
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// Property represents a property in an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	minimum     *float64
	minLength   *int
	items       map[string]any
	values      map[string]any
	propertyKey []any
	def         any
	base        map[string]any
}

func (p *Property) build() map[string]any {
	m := make(map[string]any, len(p.base)+2)
	for k, v := range p.base {
		m[k] = v
	}

	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.minimum != nil {
		m["minimum"] = *p.minimum
	}
	if p.minLength != nil {
		m["minLength"] = *p.minLength
	}
	if p.items != nil {
		m["items"] = p.items
	}
	if p.values != nil {
		m["additionalProperties"] = p.values
	}
	if len(p.propertyKey) > 0 {
		m["propertyNames"] = map[string]any{"enum": p.propertyKey}
	}
	if p.def != nil {
		m["default"] = p.def
	}

	return m
}

// String creates a string property.
//
// Example:
//
//	schema.String("Document text")
//	schema.String("Unit").Enum("byte", "rune")
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Integer creates an integer property.
//
// Example:
//
//	schema.Integer("Selection end").Min(0)
func Integer(description string) *Property {
	return &Property{typ: "integer", description: description}
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Array creates an array property with the given item schema.
//
// Example:
//
//	schema.Array("Steps to replay", schema.Object(map[string]*schema.Property{
//	    "action": schema.String("Format action"),
//	}))
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// Map creates an object property whose values all match values. Use Keys to restrict
// the allowed key names.
//
// Example:
//
//	schema.Map("Placeholder overrides", map[string]any{"type": "string"}).
//	    Keys("bold", "italic")
func Map(description string, values map[string]any) *Property {
	return &Property{typ: "object", description: description, values: values}
}

// Nested creates a property holding an object built with Object.
//
// Example:
//
//	schema.Nested("Expected outcome", schema.Object(map[string]*schema.Property{
//	    "text": schema.String("Expected buffer"),
//	}))
func Nested(description string, object map[string]any) *Property {
	return &Property{description: description, base: object}
}

// Values converts a slice of string-kinded names into enum values.
//
// Example:
//
//	schema.String("Offset unit").Enum(schema.Values(offset.Units())...)
func Values[S ~string](names []S) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// Enum sets allowed values for the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Keys restricts the key names of a Map property.
func (p *Property) Keys(names ...any) *Property {
	p.propertyKey = names
	return p
}

// Min sets the minimum value for integer properties.
func (p *Property) Min(min float64) *Property {
	p.minimum = &min
	return p
}

// MinLength sets the minimum length for string properties.
func (p *Property) MinLength(min int) *Property {
	p.minLength = &min
	return p
}

// Default sets the default value for the property.
func (p *Property) Default(value any) *Property {
	p.def = value
	return p
}
