package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-content/pkg/interfaces"
)

const schemaResourceName = "frontmatter.schema.json"

// schemaValidator optionally checks a document's full metadata block against
// an author-supplied JSON schema. This is how a host enforces a controlled
// vocabulary for fields like category without the store hardcoding one.
type schemaValidator struct {
	compiled *jsonschema.Schema
}

func newSchemaValidator(schema map[string]any) (*schemaValidator, error) {
	if len(schema) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceName, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	compiled, err := compiler.Compile(schemaResourceName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	return &schemaValidator{compiled: compiled}, nil
}

func (v *schemaValidator) validate(fm interfaces.FrontMatter) error {
	if v == nil || v.compiled == nil {
		return nil
	}

	// Round trip through JSON so the instance uses the exact value shapes
	// the schema library expects.
	payload, err := json.Marshal(fm.Raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	var instance any
	if err := json.Unmarshal(payload, &instance); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}

	if err := v.compiled.Validate(instance); err != nil {
		return &SchemaValidationError{Issues: collectSchemaIssues(err)}
	}
	return nil
}

func collectSchemaIssues(err error) []SchemaIssue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []SchemaIssue{{Message: err.Error()}}
	}
	return flattenSchemaError(validationErr)
}

func flattenSchemaError(err *jsonschema.ValidationError) []SchemaIssue {
	if len(err.Causes) == 0 {
		return []SchemaIssue{{
			Location: strings.TrimSpace(err.InstanceLocation),
			Message:  err.Message,
		}}
	}

	var issues []SchemaIssue
	for _, cause := range err.Causes {
		issues = append(issues, flattenSchemaError(cause)...)
	}
	return issues
}
