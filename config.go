package content

import "github.com/goliatone/go-content/internal/runtimeconfig"

var (
	ErrBasePathRequired      = runtimeconfig.ErrBasePathRequired
	ErrChecklistPathRequired = runtimeconfig.ErrChecklistPathRequired
	ErrFeedsRequireBaseURL   = runtimeconfig.ErrFeedsRequireBaseURL
	ErrLoggingLevelInvalid   = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid  = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	SiteConfig      = runtimeconfig.SiteConfig
	MarkdownConfig  = runtimeconfig.MarkdownConfig
	ParserConfig    = runtimeconfig.ParserConfig
	ChecklistConfig = runtimeconfig.ChecklistConfig
	SchemaConfig    = runtimeconfig.SchemaConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
	Features        = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
