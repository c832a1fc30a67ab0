package contentcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-content/internal/commands"
	"github.com/goliatone/go-content/internal/feeds"
	"github.com/goliatone/go-content/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the content command handlers produced by RegisterContentCommands.
type HandlerSet struct {
	Refresh    *RefreshStoreHandler
	BuildFeeds *BuildFeedsHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	refreshHandlerOpts []commands.HandlerOption[RefreshStoreCommand]
	feedsHandlerOpts   []commands.HandlerOption[BuildFeedsCommand]
}

// WithRefreshHandlerOptions forwards options to the RefreshStoreHandler constructor.
func WithRefreshHandlerOptions(opts ...commands.HandlerOption[RefreshStoreCommand]) Option {
	return func(cfg *options) {
		cfg.refreshHandlerOpts = append(cfg.refreshHandlerOpts, opts...)
	}
}

// WithFeedsHandlerOptions forwards options to the BuildFeedsHandler constructor.
func WithFeedsHandlerOptions(opts ...commands.HandlerOption[BuildFeedsCommand]) Option {
	return func(cfg *options) {
		cfg.feedsHandlerOpts = append(cfg.feedsHandlerOpts, opts...)
	}
}

// RegisterContentCommands builds content command handlers and registers them
// with the provided registry. The HandlerSet is returned so callers can wire
// additional integrations (dispatcher, cron) as needed.
func RegisterContentCommands(reg CommandRegistry, store interfaces.ContentStore, writer *feeds.Writer, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if store == nil {
		return nil, errors.New("content command registration: store is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "content")

	refreshHandler := NewRefreshStoreHandler(store, logger, cfg.refreshHandlerOpts...)
	feedsHandler := NewBuildFeedsHandler(store, writer, logger, gates, cfg.feedsHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(refreshHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(feedsHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Refresh:    refreshHandler,
		BuildFeeds: feedsHandler,
	}, nil
}

// RegisterRefreshCron wires the refresh handler into a cron registrar using
// the supplied command configuration and message payload. The handler is
// executed with a background context.
func RegisterRefreshCron(reg CronRegistrar, handler *RefreshStoreHandler, cfg command.HandlerConfig, msg RefreshStoreCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
