package content

import "github.com/goliatone/go-content/internal/store"

// ValidationError reports the first missing or malformed frontmatter field of
// a document, identifying the field and the reason it was rejected.
type ValidationError = store.ValidationError

// SchemaValidationError aggregates JSON-schema violations for a document's
// frontmatter block.
type SchemaValidationError = store.SchemaValidationError

// SchemaIssue exports a single schema violation location.
type SchemaIssue = store.SchemaIssue

var (
	ErrDocumentRequired   = store.ErrDocumentRequired
	ErrDocumentNotFound   = store.ErrDocumentNotFound
	ErrFrontMatterInvalid = store.ErrFrontMatterInvalid
	ErrSchemaInvalid      = store.ErrSchemaInvalid
	ErrSchemaValidation   = store.ErrSchemaValidation
	ErrStoreNotLoaded     = store.ErrStoreNotLoaded
)
