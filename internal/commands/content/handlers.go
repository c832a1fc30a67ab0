// Package contentcmd exposes store maintenance workflows as go-command
// handlers: snapshot refreshes and feed artifact builds.
package contentcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-content/internal/commands"
	"github.com/goliatone/go-content/internal/feeds"
	"github.com/goliatone/go-content/internal/logging"
	"github.com/goliatone/go-content/pkg/interfaces"
)

const (
	refreshOperation = "content.refresh_store"
	feedsOperation   = "content.build_feeds"

	feedFileName    = "feed.xml"
	sitemapFileName = "sitemap.xml"
)

// ErrFeedsFeatureDisabled is returned when the feeds feature flag is disabled at runtime.
var ErrFeedsFeatureDisabled = errors.New("content command: feeds disabled")

var (
	_ command.Commander[RefreshStoreCommand] = (*RefreshStoreHandler)(nil)
	_ command.Commander[BuildFeedsCommand]   = (*BuildFeedsHandler)(nil)
)

// RefreshStoreHandler reloads the content store snapshot via the shared
// command handler foundation.
type RefreshStoreHandler struct {
	inner *commands.Handler[RefreshStoreCommand]
}

// NewRefreshStoreHandler creates a handler bound to the supplied store.
func NewRefreshStoreHandler(store interfaces.ContentStore, logger interfaces.Logger, opts ...commands.HandlerOption[RefreshStoreCommand]) *RefreshStoreHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RefreshStoreCommand) error {
		if err := store.Reload(ctx); err != nil {
			return err
		}

		diags := store.Diagnostics()
		logging.WithFields(baseLogger, map[string]any{
			"invalid_count": len(diags),
		}).Info("content.command.refresh_store.completed")

		if msg.FailOnInvalid && len(diags) > 0 {
			return fmt.Errorf("content refresh: %d invalid documents, first: %s: %w",
				len(diags), diags[0].Path, diags[0].Err)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RefreshStoreCommand]{
		commands.WithLogger[RefreshStoreCommand](baseLogger),
		commands.WithOperation[RefreshStoreCommand](refreshOperation),
		commands.WithMessageFields(func(msg RefreshStoreCommand) map[string]any {
			fields := map[string]any{}
			if msg.FailOnInvalid {
				fields["fail_on_invalid"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RefreshStoreCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RefreshStoreHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RefreshStoreCommand].
func (h *RefreshStoreHandler) Execute(ctx context.Context, msg RefreshStoreCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildFeedsHandler renders RSS and sitemap artifacts for the published
// collection via the shared command handler foundation.
type BuildFeedsHandler struct {
	inner *commands.Handler[BuildFeedsCommand]
}

// NewBuildFeedsHandler creates a handler bound to the supplied store and feed writer.
func NewBuildFeedsHandler(store interfaces.ContentStore, writer *feeds.Writer, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[BuildFeedsCommand]) *BuildFeedsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildFeedsCommand) error {
		if !gates.feedsEnabled() {
			return ErrFeedsFeatureDisabled
		}
		if writer == nil {
			return errors.New("content command: feed writer not configured")
		}

		docs := store.ListPublished(ctx)

		if err := os.MkdirAll(msg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		var rss bytes.Buffer
		if err := writer.WriteRSS(&rss, docs); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(msg.OutputDir, feedFileName), rss.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", feedFileName, err)
		}

		var sitemap bytes.Buffer
		if err := writer.WriteSitemap(&sitemap, docs); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(msg.OutputDir, sitemapFileName), sitemap.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", sitemapFileName, err)
		}

		logging.WithFields(baseLogger, map[string]any{
			"document_count": len(docs),
			"output_dir":     msg.OutputDir,
		}).Info("content.command.build_feeds.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildFeedsCommand]{
		commands.WithLogger[BuildFeedsCommand](baseLogger),
		commands.WithOperation[BuildFeedsCommand](feedsOperation),
		commands.WithMessageFields(func(msg BuildFeedsCommand) map[string]any {
			return map[string]any{
				"output_dir": msg.OutputDir,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildFeedsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildFeedsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildFeedsCommand].
func (h *BuildFeedsHandler) Execute(ctx context.Context, msg BuildFeedsCommand) error {
	return h.inner.Execute(ctx, msg)
}
