package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	refreshStoreMessageType = "content.store.refresh"
	buildFeedsMessageType   = "content.feeds.build"
)

// RefreshStoreCommand rebuilds the document snapshot from the filesystem,
// revalidating every document and refreshing diagnostics.
type RefreshStoreCommand struct {
	// FailOnInvalid turns per-document diagnostics into a command failure,
	// useful for CI gates over a content tree.
	FailOnInvalid bool `json:"fail_on_invalid,omitempty"`
}

// Type implements command.Message.
func (RefreshStoreCommand) Type() string { return refreshStoreMessageType }

// Validate implements command.Message; a refresh carries no required input.
func (RefreshStoreCommand) Validate() error { return nil }

// BuildFeedsCommand renders the RSS feed and sitemap for the published
// collection into OutputDir.
type BuildFeedsCommand struct {
	// OutputDir selects the directory feed artifacts are written to.
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (BuildFeedsCommand) Type() string { return buildFeedsMessageType }

// Validate ensures an output directory is present before handlers execute.
func (cmd BuildFeedsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("content.feeds.build.output_dir_required", "output directory is required")
			}
			return nil
		})),
	)
}
