// Package runtimeconfig aggregates the configuration surface for the content
// store module. Fields intentionally use simple types so host applications can
// extend them later.
package runtimeconfig

import (
	"errors"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrBasePathRequired = errors.New("content config: base path is required")
var ErrChecklistPathRequired = errors.New("content config: checklist path is required when checklist is enabled")
var ErrFeedsRequireBaseURL = errors.New("content config: feeds require a site base URL or route config")
var ErrLoggingLevelInvalid = errors.New("content config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("content config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the content module.
type Config struct {
	// BasePath is the root directory the document tree is loaded from.
	BasePath  string
	Site      SiteConfig
	Markdown  MarkdownConfig
	Checklist ChecklistConfig
	Schema    SchemaConfig
	Logging   LoggingConfig
	Features  Features
}

// SiteConfig carries channel-level metadata used by feed generation and URL
// resolution.
type SiteConfig struct {
	Name        string
	Description string
	BaseURL     string
	// RouteConfig overrides the default route table derived from BaseURL.
	RouteConfig *urlkit.Config
	// RouteGroup selects the urlkit group feed URLs resolve against.
	RouteGroup string
}

// MarkdownConfig captures filesystem and parser behaviour for document loading.
type MarkdownConfig struct {
	Pattern   string
	Recursive bool
	// Render converts document bodies to HTML during load.
	Render bool
	Parser ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ChecklistConfig locates the planning checklist document.
type ChecklistConfig struct {
	Enabled bool
	// Path is relative to BasePath.
	Path string
}

// SchemaConfig optionally pins frontmatter metadata to a JSON schema.
type SchemaConfig struct {
	FrontMatter map[string]any
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Feeds  bool
	Logger bool
}

// DefaultConfig returns opinionated defaults for a Markdown blog tree.
func DefaultConfig() Config {
	return Config{
		BasePath: "content",
		Markdown: MarkdownConfig{
			Pattern:   "*.md",
			Recursive: true,
		},
		Checklist: ChecklistConfig{
			Path: "plan.md",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.BasePath) == "" {
		return ErrBasePathRequired
	}
	if cfg.Checklist.Enabled && strings.TrimSpace(cfg.Checklist.Path) == "" {
		return ErrChecklistPathRequired
	}
	if cfg.Features.Feeds {
		if strings.TrimSpace(cfg.Site.BaseURL) == "" && cfg.Site.RouteConfig == nil {
			return ErrFeedsRequireBaseURL
		}
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	return nil
}

func validateLogging(cfg LoggingConfig) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}
