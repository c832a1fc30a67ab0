// Package content is a read-only store for Markdown blog documents: YAML
// frontmatter metadata over a Markdown body, loaded from a directory tree,
// validated per document, and exposed as deterministic published listings.
// It also parses freestanding planning checklists and renders RSS/sitemap
// artifacts for the published collection.
package content

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-content/internal/checklist"
	"github.com/goliatone/go-content/internal/feeds"
	"github.com/goliatone/go-content/internal/logging"
	"github.com/goliatone/go-content/internal/logging/gologger"
	"github.com/goliatone/go-content/internal/markdown"
	"github.com/goliatone/go-content/internal/store"
	"github.com/goliatone/go-content/pkg/interfaces"
)

// Document exports the parsed document DTO.
type Document = interfaces.Document

// FrontMatter exports the document metadata block.
type FrontMatter = interfaces.FrontMatter

// Image exports the frontmatter image reference.
type Image = interfaces.Image

// Diagnostic exports the per-document validation failure record.
type Diagnostic = interfaces.Diagnostic

// Checklist exports the parsed planning checklist.
type Checklist = interfaces.Checklist

// ChecklistSection exports a heading-scoped group of checklist items.
type ChecklistSection = interfaces.ChecklistSection

// ChecklistItem exports a single task entry.
type ChecklistItem = interfaces.ChecklistItem

// ChecklistStats exports aggregate completion counts.
type ChecklistStats = interfaces.ChecklistStats

// Store exports the content store contract for consumers of this package.
type Store = interfaces.ContentStore

// ErrChecklistDisabled is returned when checklist access is requested but the
// feature is not configured.
var ErrChecklistDisabled = errors.New("content: checklist is not enabled")

// ErrFeedsDisabled is returned when feed rendering is requested but the
// feature is not configured.
var ErrFeedsDisabled = errors.New("content: feeds are not enabled")

// Option customises module wiring during construction.
type Option func(*options)

type options struct {
	provider interfaces.LoggerProvider
	fsys     fs.FS
	parser   interfaces.MarkdownParser
	schema   map[string]any
}

// WithLoggerProvider overrides the logger provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithFS loads documents from the supplied filesystem instead of BasePath on
// the host disk. Useful for tests and embedded content trees.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithParser overrides the default Goldmark parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// WithFrontMatterSchema overrides the configured frontmatter JSON schema.
func WithFrontMatterSchema(schema map[string]any) Option {
	return func(o *options) {
		o.schema = schema
	}
}

// Content is the top level module façade.
type Content struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	markdown  *markdown.Service
	store     *store.Store
	checklist *checklist.Parser
	feeds     *feeds.Writer
	fsys      fs.FS
}

// New constructs the content module from configuration. The document tree is
// not read until Load is called.
func New(cfg Config, opts ...Option) (*Content, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	provider := o.provider
	if provider == nil && cfg.Features.Logger {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	mdCfg := markdown.Config{
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Markdown.Parser.Extensions,
			Sanitize:   cfg.Markdown.Parser.Sanitize,
			HardWraps:  cfg.Markdown.Parser.HardWraps,
			SafeMode:   cfg.Markdown.Parser.SafeMode,
		},
	}

	fsys := o.fsys
	var (
		service *markdown.Service
		err     error
	)
	if fsys != nil {
		service, err = markdown.NewServiceWithFS(fsys, mdCfg, o.parser)
	} else {
		mdCfg.BasePath = cfg.BasePath
		service, err = markdown.NewService(mdCfg, o.parser)
		if err == nil {
			fsys = os.DirFS(filepath.Clean(cfg.BasePath))
		}
	}
	if err != nil {
		return nil, err
	}

	schema := cfg.Schema.FrontMatter
	if o.schema != nil {
		schema = o.schema
	}

	documentStore, err := store.New(store.Config{
		Pattern:           cfg.Markdown.Pattern,
		Recursive:         cfg.Markdown.Recursive,
		Render:            cfg.Markdown.Render,
		FrontMatterSchema: schema,
	}, service, logging.StoreLogger(provider))
	if err != nil {
		return nil, err
	}

	c := &Content{
		cfg:       cfg,
		provider:  provider,
		markdown:  service,
		store:     documentStore,
		checklist: checklist.NewParser(),
		fsys:      fsys,
	}

	if cfg.Features.Feeds {
		c.feeds = newFeedWriter(cfg)
	}

	return c, nil
}

func newFeedWriter(cfg Config) *feeds.Writer {
	group := strings.TrimSpace(cfg.Site.RouteGroup)
	if group == "" {
		group = "site"
	}
	routeCfg := cfg.Site.RouteConfig
	if routeCfg == nil {
		routeCfg = feeds.DefaultRouteConfig(group, cfg.Site.BaseURL)
	}
	resolver := feeds.NewURLResolver(feeds.URLResolverOptions{
		Manager: urlkit.NewRouteManager(routeCfg),
		Group:   group,
	})
	return feeds.NewWriter(feeds.Site{
		Name:        cfg.Site.Name,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
	}, resolver)
}

// Load reads the document tree, validating each document in isolation.
func (c *Content) Load(ctx context.Context) error {
	return c.store.Load(ctx)
}

// Reload rebuilds the document snapshot from the filesystem.
func (c *Content) Reload(ctx context.Context) error {
	return c.store.Reload(ctx)
}

// Store exposes the underlying content store contract.
func (c *Content) Store() Store {
	return c.store
}

// ListPublished returns every valid non-draft document, newest first with
// title-ascending tie breaks.
func (c *Content) ListPublished(ctx context.Context) []*Document {
	return c.store.ListPublished(ctx)
}

// Published exposes the published sequence lazily. The sequence is finite
// and restartable; breaking out of a range stops the iteration early.
func (c *Content) Published() iter.Seq[*Document] {
	return c.store.Published()
}

// Validate reports the first missing or malformed metadata field of doc.
func (c *Content) Validate(doc *Document) error {
	return c.store.Validate(doc)
}

// Get looks up a published document by slug.
func (c *Content) Get(ctx context.Context, slug string) (*Document, error) {
	return c.store.Get(ctx, slug)
}

// Categories returns the sorted category set over published documents.
func (c *Content) Categories() []string {
	return c.store.Categories()
}

// Tags returns the sorted tag set over published documents.
func (c *Content) Tags() []string {
	return c.store.Tags()
}

// Diagnostics lists documents that failed validation during the last load.
func (c *Content) Diagnostics() []Diagnostic {
	return c.store.Diagnostics()
}

// Checklist parses the configured planning checklist document.
func (c *Content) Checklist(ctx context.Context) (*Checklist, error) {
	if !c.cfg.Checklist.Enabled {
		return nil, ErrChecklistDisabled
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return c.checklist.Load(c.fsys, c.cfg.Checklist.Path)
}

// WriteRSS renders the RSS feed for the published collection.
func (c *Content) WriteRSS(ctx context.Context, w io.Writer) error {
	if c.feeds == nil {
		return ErrFeedsDisabled
	}
	return c.feeds.WriteRSS(w, c.store.ListPublished(ctx))
}

// WriteSitemap renders the sitemap for the published collection.
func (c *Content) WriteSitemap(ctx context.Context, w io.Writer) error {
	if c.feeds == nil {
		return ErrFeedsDisabled
	}
	return c.feeds.WriteSitemap(w, c.store.ListPublished(ctx))
}
