package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// SchemaVersionConstraint is the overlay schema range this build accepts.
const SchemaVersionConstraint = "^1"

var ErrSchemaVersion = errors.New("unsupported overlay schema version")

// Overlay is a catalog extension document loaded from disk. Records are
// full replacements: upserting an overlay plan or feature overwrites any
// existing record with the same name.
type Overlay struct {
	SchemaVersion string    `json:"schema_version" yaml:"schema_version"`
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	Plans         []Plan    `json:"plans,omitempty" yaml:"plans,omitempty"`
	Features      []Feature `json:"features,omitempty" yaml:"features,omitempty"`
}

const overlaySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version"],
  "properties": {
    "schema_version": {"type": "string", "minLength": 1},
    "name": {"type": "string"},
    "plans": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "base_cost", "available"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "base_cost": {"type": "number", "minimum": 0},
          "benefits": {"type": "array", "items": {"type": "string"}},
          "available": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    },
    "features": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "cost", "available"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "cost": {"type": "number", "minimum": 0},
          "available": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func overlaySchemaCompiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		const url = "https://ratecard.schemas.local/catalog/overlay.schema.json"
		if err := c.AddResource(url, strings.NewReader(overlaySchema)); err != nil {
			schemaErr = fmt.Errorf("overlay schema load failed: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

var schemaVersionConstraint = mustConstraint(SchemaVersionConstraint)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadOverlay reads and validates one overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load overlay %q: %w", path, err)
	}
	o, err := ParseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("overlay %q: %w", path, err)
	}
	return o, nil
}

// ParseOverlay validates an overlay document against the embedded schema,
// gates its schema_version, and unmarshals it.
func ParseOverlay(data []byte) (*Overlay, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	// The schema validator expects JSON-decoded values, so round-trip the
	// YAML document through JSON before validating.
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(jsonBytes, &jsonDoc); err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}

	schema, err := overlaySchemaCompiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(jsonDoc); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	ver, err := semver.NewVersion(o.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("schema_version %q: %w", o.SchemaVersion, err)
	}
	if !schemaVersionConstraint.Check(ver) {
		return nil, fmt.Errorf("%w: %s (supported %s)", ErrSchemaVersion, o.SchemaVersion, SchemaVersionConstraint)
	}

	return &o, nil
}

// LoadOverlayDir loads every *.yaml overlay in dir in lexical order.
// A missing directory yields no overlays and no error.
func LoadOverlayDir(dir string) ([]*Overlay, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	overlays := make([]*Overlay, 0, len(matches))
	for _, path := range matches {
		o, err := LoadOverlay(path)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, o)
	}
	return overlays, nil
}

// Apply upserts every record in the overlay.
func (c *Catalog) Apply(o *Overlay) error {
	for _, p := range o.Plans {
		if err := c.UpsertPlan(p); err != nil {
			return fmt.Errorf("apply overlay %q: %w", o.Name, err)
		}
	}
	for _, f := range o.Features {
		if err := c.UpsertFeature(f); err != nil {
			return fmt.Errorf("apply overlay %q: %w", o.Name, err)
		}
	}
	return nil
}
