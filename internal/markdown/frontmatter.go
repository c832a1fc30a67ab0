package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"
	yaml "gopkg.in/yaml.v3"

	"github.com/goliatone/go-content/internal/identity"
	"github.com/goliatone/go-content/pkg/interfaces"
)

// ErrFrontMatterParse marks a metadata block that failed to decode at all:
// broken YAML syntax or a wrong-typed scalar field. Callers walking a tree
// match on it to keep the failure scoped to the one document.
var ErrFrontMatterParse = errors.New("markdown: frontmatter parse failed")

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered. Image and tags values
// that fail to coerce into their typed shape are preserved in Raw so the
// validator can surface them as field diagnostics instead of parse failures.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %w", ErrFrontMatterParse, err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// MarshalFrontMatter re-serializes structured frontmatter to YAML. Together
// with ParseFrontMatter it forms the metadata round trip: parsing the output
// yields a field-for-field equivalent structure regardless of key ordering
// in the original block.
func MarshalFrontMatter(fm interfaces.FrontMatter) ([]byte, error) {
	env := marshalEnvelope{
		Draft:       fm.Draft,
		Title:       fm.Title,
		Snippet:     fm.Snippet,
		Image:       fm.Image,
		PublishDate: fm.PublishDate,
		Category:    fm.Category,
		Author:      fm.Author,
		Tags:        fm.Tags,
		Slug:        fm.Slug,
		Custom:      fm.Custom,
	}
	data, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}
	return data, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. The document ID is deterministic per
// path; BodyHTML is left empty so callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		ID:           identity.DocumentUUID(path),
		FilePath:     path,
		Slug:         deriveSlug(meta, path),
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

// deriveSlug prefers an explicit frontmatter slug, then the title, then the
// filename stem, each normalized through go-slug.
func deriveSlug(fm interfaces.FrontMatter, path string) string {
	if explicit := strings.TrimSpace(fm.Slug); explicit != "" {
		if normalized, err := slug.Normalize(explicit); err == nil && normalized != "" {
			return normalized
		}
		return explicit
	}

	if title := strings.TrimSpace(fm.Title); title != "" {
		if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
			return normalized
		}
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if normalized, err := slug.Normalize(stem); err == nil && normalized != "" {
		return normalized
	}
	return stem
}

// frontMatterEnvelope keeps image and tags loosely typed: authors hand-edit
// these blocks, and a bad value must become a validation diagnostic for that
// one document, not a decode failure.
type frontMatterEnvelope struct {
	Draft       bool           `yaml:"draft"`
	Title       string         `yaml:"title"`
	Snippet     string         `yaml:"snippet"`
	Image       any            `yaml:"image"`
	PublishDate string         `yaml:"publishDate"`
	Category    string         `yaml:"category"`
	Author      string         `yaml:"author"`
	Tags        any            `yaml:"tags"`
	Slug        string         `yaml:"slug"`
	Custom      map[string]any `yaml:",inline"`
}

type marshalEnvelope struct {
	Draft       bool              `yaml:"draft"`
	Title       string            `yaml:"title,omitempty"`
	Snippet     string            `yaml:"snippet,omitempty"`
	Image       *interfaces.Image `yaml:"image,omitempty"`
	PublishDate string            `yaml:"publishDate,omitempty"`
	Category    string            `yaml:"category,omitempty"`
	Author      string            `yaml:"author,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Slug        string            `yaml:"slug,omitempty"`
	Custom      map[string]any    `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+9)
	for key, value := range env.Custom {
		raw[key] = normalizeValue(value)
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Snippet != "" {
		raw["snippet"] = env.Snippet
	}
	if env.PublishDate != "" {
		raw["publishDate"] = env.PublishDate
	}
	if env.Category != "" {
		raw["category"] = env.Category
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Image != nil {
		raw["image"] = normalizeValue(env.Image)
	}
	if env.Tags != nil {
		raw["tags"] = normalizeValue(env.Tags)
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Draft:       env.Draft,
		Title:       env.Title,
		Snippet:     env.Snippet,
		Image:       coerceImage(env.Image),
		PublishDate: env.PublishDate,
		Category:    env.Category,
		Author:      env.Author,
		Tags:        coerceTags(env.Tags),
		Slug:        env.Slug,
		Custom:      cloneMap(env.Custom),
		Raw:         raw,
	}
}

// coerceImage accepts the mapping shapes both yaml.v2 and yaml.v3 produce.
// Non-mapping values return nil; the raw value stays available for the
// validator.
func coerceImage(value any) *interfaces.Image {
	mapping, ok := asStringMap(value)
	if !ok {
		return nil
	}
	img := &interfaces.Image{}
	if src, ok := mapping["src"].(string); ok {
		img.Src = src
	}
	if alt, ok := mapping["alt"].(string); ok {
		img.Alt = alt
	}
	return img
}

// coerceTags returns the tag sequence when every element is a string, nil
// otherwise.
func coerceTags(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		str, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, str)
	}
	return out
}

func asStringMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			str, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[str] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// normalizeValue rewrites yaml.v2 style map[any]any values into map[string]any
// recursively so Raw is JSON-friendly and comparable.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[fmt.Sprint(key)] = normalizeValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[key] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return value
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = normalizeValue(value)
	}
	return out
}
