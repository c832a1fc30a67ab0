package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-content/pkg/interfaces"
)

// Config controls how the Markdown service discovers and parses files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    interfaces.ParseOptions
}

// Service implements interfaces.MarkdownService for filesystem-backed documents.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	loader *Loader
}

// NewService constructs a Markdown service rooted at cfg.BasePath. When parser
// is nil, a Goldmark parser with the provided default options is created.
func NewService(cfg Config, parser interfaces.MarkdownParser) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewServiceWithFS(filesystem, cfg, parser)
}

// NewServiceWithFS constructs a Markdown service over an explicit filesystem,
// which keeps tests and embedded content trees off the host disk.
func NewServiceWithFS(filesystem fs.FS, cfg Config, parser interfaces.MarkdownParser) (*Service, error) {
	if filesystem == nil {
		return nil, errors.New("markdown service: filesystem is required")
	}

	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:    cfg,
		parser: parser,
		loader: loader,
	}, nil
}

// Load reads a single Markdown document relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// LoadDirectory reads every Markdown document within the supplied directory.
// Files whose frontmatter fails to decode come back as diagnostics so a
// single hand-edited syntax error never hides its siblings.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, []interfaces.Diagnostic, error) {
	results, issues, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), toLoaderParams(opts))
	if err != nil {
		return nil, nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		docs = append(docs, result.Document)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	diagnostics := make([]interfaces.Diagnostic, 0, len(issues))
	for _, issue := range issues {
		diagnostics = append(diagnostics, interfaces.Diagnostic{
			Path: issue.Path,
			Err:  issue.Err,
		})
	}
	return docs, diagnostics, nil
}

// Render parses Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.parser.ParseWithOptions(markdown, mergeParseOptions(s.cfg.Parser, opts))
}

// RenderDocument converts the document's Markdown body into HTML using the
// configured parser and caches the result on the document.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown service: document is nil")
	}
	html, err := s.Render(ctx, doc.Body, opts)
	if err != nil {
		return nil, err
	}
	doc.BodyHTML = html
	return html, nil
}

func (s *Service) normalisePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "."
	}
	return trimmed
}

func toLoaderParams(opts interfaces.LoadOptions) LoadParams {
	return LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	}
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	merged := base
	if len(override.Extensions) > 0 {
		merged.Extensions = override.Extensions
	}
	if override.Sanitize {
		merged.Sanitize = true
	}
	if override.HardWraps {
		merged.HardWraps = true
	}
	if override.SafeMode {
		merged.SafeMode = true
	}
	return merged
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	trimmed := strings.TrimSpace(basePath)
	if trimmed == "" {
		return nil, errors.New("markdown service: base path is required")
	}

	clean := filepath.Clean(trimmed)
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("markdown service: base path %s: %w", clean, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("markdown service: base path %s is not a directory", clean)
	}

	return os.DirFS(clean), nil
}

var _ interfaces.MarkdownService = (*Service)(nil)
