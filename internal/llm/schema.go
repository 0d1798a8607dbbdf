package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema an answer must satisfy. It compiles lazily on
// first use and must not be copied after that.
type Schema struct {
	// Name is a kebab-case identifier, sent to vendors that want one.
	Name        string
	Description string

	// Root is the schema document.
	Root map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchema builds a Schema.
func NewSchema(name, description string, root map[string]any) *Schema {
	return &Schema{Name: name, Description: description, Root: root}
}

// Check validates raw. A nil Schema accepts anything.
func (s *Schema) Check(raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badOutput(raw, fmt.Errorf("invalid JSON: %w", err))
	}

	compiled, err := s.compile()
	if err != nil {
		return badOutput(raw, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return badOutput(raw, fmt.Errorf("does not match %s: %w", s.Name, err))
	}
	return nil
}

// Decode checks raw and unmarshals it into v.
func (s *Schema) Decode(raw json.RawMessage, v any) error {
	if err := s.Check(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return badOutput(raw, fmt.Errorf("decode: %w", err))
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// The compiler wants plain decoded JSON, not Go literals like []string.
		data, err := json.Marshal(s.Root)
		if err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}

		url := "mem://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}
