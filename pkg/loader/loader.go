// Package loader reads and writes DFA definitions as YAML or JSON documents.
//
// Documents are decoded in two passes: first into a loosely typed map, whose shape is checked
// with schema.CheckDocument, then into a domain.Definition with mapstructure. Weak typing lets
// YAML authors write bare numbers as symbols (alphabet: [0, 1]).
//
// A YAML stream may hold several documents separated by "---"; a JSON file may hold a single
// object or an array of objects.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. Anything that is not .json is YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads every definition in the file at path.
func LoadFile(path string) ([]domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	defs, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes every definition in data.
func Parse(data []byte, format Format) ([]domain.Definition, error) {
	docs, err := rawDocuments(data, format)
	if err != nil {
		return nil, err
	}

	defs := make([]domain.Definition, 0, len(docs))
	for i, doc := range docs {
		def, err := Decode(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Decode converts one loosely typed document into a Definition.
// Shape errors are returned as *schema.AggregateError and match domain.ErrInvalidAutomaton.
func Decode(doc map[string]any) (domain.Definition, error) {
	if err := schema.CheckDocument(doc); err != nil {
		return domain.Definition{}, err
	}

	var def domain.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &def,
	})
	if err != nil {
		return domain.Definition{}, err
	}
	if err := decoder.Decode(doc); err != nil {
		return domain.Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}

	// Present but empty lists must stay present.
	if def.States == nil {
		def.States = []string{}
	}
	if def.Alphabet == nil {
		def.Alphabet = []string{}
	}
	if def.AcceptStates == nil {
		def.AcceptStates = []string{}
	}
	return def, nil
}

func rawDocuments(data []byte, format Format) ([]map[string]any, error) {
	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var docs []map[string]any
			if err := json.Unmarshal(trimmed, &docs); err != nil {
				return nil, fmt.Errorf("failed to parse json: %w", err)
			}
			return docs, nil
		}
		var doc map[string]any
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		return []map[string]any{doc}, nil

	default:
		var docs []map[string]any
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var doc map[string]any
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("failed to parse yaml: %w", err)
			}
			if doc != nil {
				docs = append(docs, doc)
			}
		}
		return docs, nil
	}
}

// Encode writes defs to w. YAML output is a multi-document stream; JSON output is an
// indented array.
func Encode(w io.Writer, defs []domain.Definition, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, def := range defs {
		if err := enc.Encode(def); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	}
	return enc.Close()
}
