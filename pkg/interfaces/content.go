package interfaces

import (
	"context"
	"iter"
)

// ContentStore is the read-only contract downstream renderers rely on. The
// loaded snapshot is immutable, so every method is safe for concurrent
// readers; Reload swaps the snapshot atomically.
type ContentStore interface {
	// ListPublished returns every valid document with draft=false, ordered by
	// publishDate descending with title-ascending tie breaks. The slice is
	// recomputed on each call and never includes drafts or documents that
	// failed validation.
	ListPublished(ctx context.Context) []*Document
	// Published exposes the same sequence lazily for pull-based consumers.
	Published() iter.Seq[*Document]
	// Validate reports the first missing or malformed metadata field.
	Validate(doc *Document) error
	// Get looks up a published document by slug.
	Get(ctx context.Context, slug string) (*Document, error)
	// Categories returns the sorted, deduplicated category set over published documents.
	Categories() []string
	// Tags returns the sorted, deduplicated tag set over published documents.
	Tags() []string
	// Diagnostics lists per-document validation failures collected at load time.
	Diagnostics() []Diagnostic
	Reload(ctx context.Context) error
}

// Diagnostic records a document that failed validation during load. Invalid
// documents are excluded from listings until fixed; they never take the rest
// of the collection down.
type Diagnostic struct {
	Path string
	Err  error
}
