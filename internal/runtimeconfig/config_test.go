package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Markdown.Pattern != "*.md" || !cfg.Markdown.Recursive {
		t.Fatalf("unexpected markdown defaults %+v", cfg.Markdown)
	}
}

func TestValidateRequiresBasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BasePath = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrBasePathRequired) {
		t.Fatalf("expected ErrBasePathRequired, got %v", err)
	}
}

func TestValidateChecklistPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Checklist.Enabled = true
	cfg.Checklist.Path = ""
	if err := cfg.Validate(); !errors.Is(err, ErrChecklistPathRequired) {
		t.Fatalf("expected ErrChecklistPathRequired, got %v", err)
	}
}

func TestValidateFeedsRequireBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Feeds = true
	if err := cfg.Validate(); !errors.Is(err, ErrFeedsRequireBaseURL) {
		t.Fatalf("expected ErrFeedsRequireBaseURL, got %v", err)
	}

	cfg.Site.BaseURL = "https://example.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected base URL to satisfy feeds, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "text"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}
