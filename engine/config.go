package engine

import (
	"fmt"
	"io"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/offset"
	"github.com/rickchristie/markup/schema"
	"gopkg.in/yaml.v3"
)

// Config holds configuration options for the Engine.
//
// Config files are YAML:
//
//	unit: utf16
//	placeholders:
//	  bold: strong text
//	  checklist: To do
//	math_placeholder: "a^2 + b^2 = c^2"
type Config struct {
	// Unit is the measure of the offsets the caller passes and receives.
	// Empty means offset.Byte.
	Unit offset.Unit `yaml:"unit"`

	// Placeholders overrides the text inserted for empty selections, per action.
	Placeholders map[markup.Action]string `yaml:"placeholders"`

	// MathPlaceholder is the formula inserted by InsertMathFormula for empty
	// selections. Empty means markup.DefaultMathFormula.
	MathPlaceholder string `yaml:"math_placeholder"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Unit:            offset.Byte,
		MathPlaceholder: markup.DefaultMathFormula,
	}
}

// Validate checks the unit and placeholder keys.
func (c Config) Validate() error {
	if _, err := offset.ParseUnit(string(c.Unit)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for a := range c.Placeholders {
		if !a.Valid() {
			return fmt.Errorf("invalid config: placeholder for %w: %q", markup.ErrUnknownAction, a)
		}
	}
	return nil
}

var configSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"unit": schema.String("Offset unit used by the caller").
		Enum(schema.Values(offset.Units())...).
		Default(string(offset.Byte)),
	"placeholders": schema.Map("Placeholder text per action", map[string]any{"type": "string"}).
		Keys(schema.Values(markup.Actions())...),
	"math_placeholder": schema.String("Formula inserted for empty selections").MinLength(1),
}))

// LoadConfig reads a YAML config document from r. Fields missing from the document
// keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		return cfg, nil
	}
	if err := configSchema.Validate(doc); err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}
