package plugin

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/langgenius/niutrans-plugin/niutrans"
)

//go:embed translate_text.schema.json
var translateTextSchemaJSON string

// translateTextParams is the decoded payload of one translate_text
// invocation.
type translateTextParams struct {
	Text         string `json:"text"`
	FromLanguage string `json:"from_language"`
	ToLanguage   string `json:"to_language"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// validateTranslateTextPayload checks an invocation payload against
// the embedded schema and applies the to_language default.
func validateTranslateTextPayload(payload json.RawMessage) (*translateTextParams, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode tool payload: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("tool payload validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize tool payload: %w", err)
	}
	var params translateTextParams
	if err := json.Unmarshal(normalized, &params); err != nil {
		return nil, fmt.Errorf("unmarshal tool payload: %w", err)
	}

	if strings.TrimSpace(params.ToLanguage) == "" {
		params.ToLanguage = niutrans.DefaultTargetLang
	}
	return &params, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("translate_text.schema.json", strings.NewReader(translateTextSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, err := compiler.Compile("translate_text.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}
	return value, nil
}
