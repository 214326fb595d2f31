package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Load decodes a prototype API document from JSON.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := j.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	return &doc, nil
}

// LoadBytes decodes a prototype API document from JSON bytes.
func LoadBytes(b []byte) (*Document, error) { return Load(bytes.NewReader(b)) }

// LoadYAML decodes a prototype API document written as YAML. The YAML tree is
// normalised to JSON shapes and then decoded like JSON input.
func LoadYAML(b []byte) (*Document, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("schema: yaml: %w", err)
	}
	js, err := j.Marshal(yamlNormalizeValue(node))
	if err != nil {
		return nil, fmt.Errorf("schema: yaml: %w", err)
	}
	return LoadBytes(js)
}

// LoadFile reads a document from disk; .yaml and .yml files go through LoadYAML.
func LoadFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(b)
	default:
		return LoadBytes(b)
	}
}

// yamlNormalizeValue converts map[any]any nodes into map[string]any recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
