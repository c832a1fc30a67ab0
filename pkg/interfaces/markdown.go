package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents so hosts can share a
// single parser instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows used by the content store:
// loading Markdown documents from disk and converting them into HTML.
// LoadDirectory reports files with undecodable metadata blocks as
// Diagnostics rather than failing the whole tree; the returned error is
// reserved for traversal and I/O failures.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, []Diagnostic, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	// ID is a deterministic identifier derived from the file path, stable
	// across loads of the same tree.
	ID           uuid.UUID
	FilePath     string
	Slug         string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// PublishedAt is the parsed publishDate; zero until the document passes
	// validation.
	PublishedAt time.Time
	// Checksum stores a SHA-256 digest of the original file content so
	// callers can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from blog post files. Image and Tags
// stay loosely typed until validation so malformed values surface as field
// level diagnostics instead of parse failures.
type FrontMatter struct {
	Draft       bool           `yaml:"draft" json:"draft"`
	Title       string         `yaml:"title" json:"title"`
	Snippet     string         `yaml:"snippet" json:"snippet"`
	Image       *Image         `yaml:"image" json:"image,omitempty"`
	PublishDate string         `yaml:"publishDate" json:"publishDate"`
	Category    string         `yaml:"category" json:"category"`
	Author      string         `yaml:"author" json:"author"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Slug        string         `yaml:"slug" json:"slug"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	// Raw preserves every key as decoded, including values that failed to
	// coerce into the typed fields above.
	Raw map[string]any `yaml:"-" json:"raw"`
}

// Image pairs an asset URL with its accessibility text. Both travel together:
// an image without src fails validation.
type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}
