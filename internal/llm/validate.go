package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds compiled schemas keyed by Schema.Name. The four
// study-mode schemas are fixed for the life of the process, so compiling
// each once is enough.
var compiledSchemas sync.Map

// validateResponse checks a raw model response against the request schema.
// A nil schema (prose modes) always passes. Any failure, including a body
// that is not JSON at all, comes back as *ErrInvalidResponse.
func validateResponse(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("decode response: %w", err)}
	}

	compiled, err := compiledFor(s)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(inst); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("response violates %q schema: %w", s.Name, err)}
	}
	return nil
}

func compiledFor(s *Schema) (*jsonschema.Schema, error) {
	if hit, ok := compiledSchemas.Load(s.Name); ok {
		return hit.(*jsonschema.Schema), nil
	}

	// The compiler wants the definition as a decoded JSON document, so
	// round-trip the map through its decoder.
	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal %q definition: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode %q definition: %w", s.Name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := "inmem://" + s.Name + ".json"
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register %q schema: %w", s.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %q schema: %w", s.Name, err)
	}

	compiledSchemas.Store(s.Name, compiled)
	return compiled, nil
}
