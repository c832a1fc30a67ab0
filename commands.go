package content

import (
	contentcmd "github.com/goliatone/go-content/internal/commands/content"
)

// RefreshStoreCommand exports the snapshot refresh command payload.
type RefreshStoreCommand = contentcmd.RefreshStoreCommand

// BuildFeedsCommand exports the feed build command payload.
type BuildFeedsCommand = contentcmd.BuildFeedsCommand

// CommandRegistry exports the minimal registration contract for command handlers.
type CommandRegistry = contentcmd.CommandRegistry

// CommandHandlerSet exports the constructed command handlers.
type CommandHandlerSet = contentcmd.HandlerSet

// RegisterCommands builds the module's command handlers bound to this store
// and registers them with the provided registry. The registry may be nil when
// only the returned handler set is needed.
func (c *Content) RegisterCommands(reg CommandRegistry) (*CommandHandlerSet, error) {
	gates := contentcmd.FeatureGates{
		FeedsEnabled: func() bool { return c.feeds != nil },
	}
	return contentcmd.RegisterContentCommands(reg, c.store, c.feeds, c.provider, gates)
}
