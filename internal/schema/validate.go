// Package schema validates extraction results against the embedded JSON Schemas of
// the two result shapes.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/cv-extractor/internal/resume"
)

var (
	//go:embed parsed.schema.json
	parsedSchema []byte
	//go:embed scanned.schema.json
	scannedSchema []byte
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var compiled = sync.OnceValues(func() (map[string]*gojsonschema.Schema, error) {
	schemas := make(map[string]*gojsonschema.Schema, 2)
	for name, raw := range map[string][]byte{"parsed": parsedSchema, "scanned": scannedSchema} {
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s schema: %w", name, err)
		}
		schemas[name] = s
	}
	return schemas, nil
})

// Validate encodes result as JSON and checks it against the schema of its variant.
// A *ValidationError is returned when the document does not conform.
func Validate(result *resume.Result) error {
	name := "parsed"
	if result.IsScanned() {
		name = "scanned"
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return validate(name, data)
}

// ValidateJSON checks an encoded result. The variant is chosen by the presence of
// the "error" key.
func ValidateJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	name := "parsed"
	if _, ok := probe["error"]; ok {
		name = "scanned"
	}

	return validate(name, data)
}

func validate(name string, data []byte) error {
	schemas, err := compiled()
	if err != nil {
		return err
	}

	result, err := schemas[name].Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate %s result: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
