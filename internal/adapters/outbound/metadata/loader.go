// Package metadata loads brand metadata override files.
//
// JSON, YAML and TOML documents are accepted. Every document is checked
// against the embedded JSON Schema before it is decoded, so typos in key
// names fail loudly instead of being ignored.
package metadata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

//go:embed schema/brand-metadata.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Schema returns the embedded JSON Schema document.
func Schema() []byte {
	return schemaJSON
}

// Loader implements domain.MetadataLoader.
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// Load reads, validates and decodes the override file at path.
// All failures wrap domain.ErrInvalidMetadata.
func (l *Loader) Load(path string) (*domain.BrandOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
	}

	doc, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidMetadata, path, err)
	}
	return Parse(doc)
}

// Parse validates an already decoded document and converts it to overrides.
func Parse(doc map[string]any) (*domain.BrandOverrides, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var o domain.BrandOverrides
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
	}
	return &o, nil
}

func decode(path string, data []byte) (map[string]any, error) {
	var doc map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported metadata format %q (want .json, .yaml, .yml or .toml)", ext)
	}
	return doc, nil
}

func validate(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling metadata schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" || field == "" {
			field = "root"
		}
		msgs = append(msgs, field+": "+e.Description())
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidMetadata, strings.Join(msgs, "; "))
}
