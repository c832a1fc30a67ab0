// Package store holds the loaded document collection and the two guarantees
// downstream renderers rely on: deterministic published listings and
// per-document metadata validation with build-time diagnostics.
package store

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-content/internal/logging"
	"github.com/goliatone/go-content/pkg/interfaces"
)

// Config controls discovery and post-processing for the document collection.
type Config struct {
	// Pattern limits discovered files (defaults to "*.md" in the loader).
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Render converts each valid document's body to HTML during load.
	Render bool
	// FrontMatterSchema optionally validates the full metadata block against
	// a JSON schema, e.g. to pin category to a controlled vocabulary.
	FrontMatterSchema map[string]any
}

// Store is a read-only view over a tree of Markdown documents. Load builds an
// immutable snapshot; every read method operates on that snapshot, so
// concurrent readers are safe and Reload swaps atomically.
type Store struct {
	cfg      Config
	markdown interfaces.MarkdownService
	logger   interfaces.Logger
	schema   *schemaValidator

	mu          sync.RWMutex
	loaded      bool
	records     []*interfaces.Document
	diagnostics []interfaces.Diagnostic
}

// New constructs a Store over the supplied markdown service. The logger may
// be nil; diagnostics then accumulate silently.
func New(cfg Config, markdown interfaces.MarkdownService, logger interfaces.Logger) (*Store, error) {
	if markdown == nil {
		return nil, fmt.Errorf("content store: markdown service is required")
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	schema, err := newSchemaValidator(cfg.FrontMatterSchema)
	if err != nil {
		return nil, err
	}

	return &Store{
		cfg:      cfg,
		markdown: markdown,
		logger:   logger,
		schema:   schema,
	}, nil
}

// Load reads the whole document tree once, validating each document in
// isolation. A malformed document becomes a diagnostic and is excluded from
// listings; it never fails the load. That covers frontmatter that does not
// decode at all, not just field-level failures.
func (s *Store) Load(ctx context.Context) error {
	docs, parseIssues, err := s.markdown.LoadDirectory(ctx, ".", interfaces.LoadOptions{
		Pattern:   s.cfg.Pattern,
		Recursive: &s.cfg.Recursive,
	})
	if err != nil {
		return fmt.Errorf("content store: load documents: %w", err)
	}

	records := make([]*interfaces.Document, 0, len(docs))
	diagnostics := make([]interfaces.Diagnostic, 0, len(parseIssues))

	for _, issue := range parseIssues {
		diagnostics = append(diagnostics, issue)
		logging.WithDocumentContext(s.logger, issue.Path, "").
			Warn("content.store.document_unparseable", "error", issue.Err)
	}

	for _, doc := range docs {
		if err := s.acceptDocument(ctx, doc); err != nil {
			diagnostics = append(diagnostics, interfaces.Diagnostic{
				Path: doc.FilePath,
				Err:  err,
			})
			logging.WithDocumentContext(s.logger, doc.FilePath, doc.Slug).
				Warn("content.store.document_invalid", "error", err)
			continue
		}
		records = append(records, doc)
	}

	s.mu.Lock()
	s.loaded = true
	s.records = records
	s.diagnostics = diagnostics
	s.mu.Unlock()

	s.logger.Info("content.store.loaded",
		"documents", len(records),
		"invalid", len(diagnostics))
	return nil
}

// Reload satisfies interfaces.ContentStore by rebuilding the snapshot.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// acceptDocument validates a document, stamps its parsed publish date, and
// optionally renders its body.
func (s *Store) acceptDocument(ctx context.Context, doc *interfaces.Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	if err := s.schema.validate(doc.FrontMatter); err != nil {
		return err
	}

	published, err := PublishDate(doc.FrontMatter.PublishDate)
	if err != nil {
		// Validate already vetted the format; treat a parse failure here as
		// a malformed field all the same.
		return &ValidationError{Field: "publishDate", Reason: err.Error()}
	}
	doc.PublishedAt = published

	if s.cfg.Render {
		if _, err := s.markdown.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
			return fmt.Errorf("render document: %w", err)
		}
	}
	return nil
}

// Validate exposes the document validator through the store contract.
func (s *Store) Validate(doc *interfaces.Document) error {
	return Validate(doc)
}

// ListPublished returns every valid, non-draft document ordered by
// publishDate descending with ties broken by title ascending, then file path
// for a total order. The slice is recomputed per call; callers may mutate it.
func (s *Store) ListPublished(ctx context.Context) []*interfaces.Document {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*interfaces.Document, 0, len(s.records))
	for _, doc := range s.records {
		if doc.FrontMatter.Draft {
			continue
		}
		out = append(out, doc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		if out[i].FrontMatter.Title != out[j].FrontMatter.Title {
			return out[i].FrontMatter.Title < out[j].FrontMatter.Title
		}
		return out[i].FilePath < out[j].FilePath
	})

	return out
}

// Published exposes the published sequence lazily. The sequence is finite and
// restartable: each range recomputes from the current snapshot.
func (s *Store) Published() iter.Seq[*interfaces.Document] {
	return func(yield func(*interfaces.Document) bool) {
		for _, doc := range s.ListPublished(context.Background()) {
			if !yield(doc) {
				return
			}
		}
	}
}

// Get returns the published document with the given slug. A store that has
// never loaded reports ErrStoreNotLoaded rather than a spurious miss.
func (s *Store) Get(ctx context.Context, slug string) (*interfaces.Document, error) {
	if !s.Loaded() {
		return nil, ErrStoreNotLoaded
	}

	needle := strings.TrimSpace(slug)
	if needle == "" {
		return nil, fmt.Errorf("%w: empty slug", ErrDocumentNotFound)
	}

	for _, doc := range s.ListPublished(ctx) {
		if doc.Slug == needle {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, needle)
}

// Categories returns the sorted, deduplicated category set over published documents.
func (s *Store) Categories() []string {
	return s.collect(func(doc *interfaces.Document) []string {
		if category := strings.TrimSpace(doc.FrontMatter.Category); category != "" {
			return []string{category}
		}
		return nil
	})
}

// Tags returns the sorted, deduplicated tag set over published documents.
func (s *Store) Tags() []string {
	return s.collect(func(doc *interfaces.Document) []string {
		return doc.FrontMatter.Tags
	})
}

// Diagnostics lists the documents that failed validation during the last load.
func (s *Store) Diagnostics() []interfaces.Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]interfaces.Diagnostic(nil), s.diagnostics...)
}

// Loaded reports whether Load completed at least once.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) collect(pick func(*interfaces.Document) []string) []string {
	seen := map[string]struct{}{}
	for _, doc := range s.ListPublished(context.Background()) {
		for _, value := range pick(doc) {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				continue
			}
			seen[trimmed] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for value := range seen {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

var _ interfaces.ContentStore = (*Store)(nil)
