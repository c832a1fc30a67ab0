package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDocumentRequired   = errors.New("content: document is required")
	ErrDocumentNotFound   = errors.New("content: document not found")
	ErrFrontMatterInvalid = errors.New("content: frontmatter is invalid")
	ErrSchemaInvalid      = errors.New("content: frontmatter schema is invalid")
	ErrSchemaValidation   = errors.New("content: frontmatter schema validation failed")
	ErrStoreNotLoaded     = errors.New("content: store has not been loaded")
)

// ValidationError reports the first missing or malformed metadata field
// encountered while validating a single document. Authors see Field and
// Reason in build-time diagnostics.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	return fmt.Sprintf("%s: %s: %s", ErrFrontMatterInvalid.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrFrontMatterInvalid
}

// SchemaIssue captures a single schema validation failure.
type SchemaIssue struct {
	Location string
	Message  string
}

// SchemaValidationError surfaces custom-field schema failures with location
// context, mirroring the shape of ValidationError for author diagnostics.
type SchemaValidationError struct {
	Issues []SchemaIssue
}

func (e *SchemaValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrSchemaValidation.Error(), strings.Join(parts, "; "))
}

func (e *SchemaValidationError) Unwrap() error {
	return ErrSchemaValidation
}
