package validation

import (
	"fmt"
	"sort"

	"modalcopy/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Messages flattens the errors into "field: message" strings.
func (r *ValidationResult) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}

// Validator holds the compiled input schema of every registry operation.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles each non-empty operation input schema once.
func NewValidator(reg *registry.OperationRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, op := range reg.Operations {
		if len(op.InputSchema) == 0 {
			continue
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(op.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", op.ID, err)
		}
		v.schemas[op.ID] = schema
	}
	return v, nil
}

// Has reports whether the operation has a compiled schema.
func (v *Validator) Has(operationID string) bool {
	_, ok := v.schemas[operationID]
	return ok
}

// ValidateBytes validates a raw JSON body. Operations without a schema always pass.
func (v *Validator) ValidateBytes(operationID string, body []byte) (*ValidationResult, error) {
	schema, ok := v.schemas[operationID]
	if !ok {
		return &ValidationResult{Valid: true}, nil
	}
	return validate(schema, gojsonschema.NewBytesLoader(body))
}

// ValidateInput validates an already decoded document.
func (v *Validator) ValidateInput(operationID string, input interface{}) (*ValidationResult, error) {
	schema, ok := v.schemas[operationID]
	if !ok {
		return &ValidationResult{Valid: true}, nil
	}
	return validate(schema, gojsonschema.NewGoLoader(input))
}

func validate(schema *gojsonschema.Schema, doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	res := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		res.Errors = append(res.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	sort.SliceStable(res.Errors, func(i, j int) bool {
		return res.Errors[i].Field < res.Errors[j].Field
	})
	return res, nil
}
