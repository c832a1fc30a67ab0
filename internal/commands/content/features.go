package contentcmd

// FeatureGates exposes runtime feature toggles required by content command
// handlers. Callers supply closures reading from runtime configuration so
// handlers stay decoupled from the config surface while honouring flags.
type FeatureGates struct {
	FeedsEnabled func() bool
}

func (g FeatureGates) feedsEnabled() bool {
	if g.FeedsEnabled == nil {
		return true
	}
	return g.FeedsEnabled()
}
