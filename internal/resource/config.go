package resource

import "time"

// DefaultPollInterval is the wait between status polls of a
// long-running delete.
const DefaultPollInterval = 5 * time.Second

// DefaultItemDelay is the pause applied after each remote call that
// mutated state, to stay under provider rate limits.
const DefaultItemDelay = 500 * time.Millisecond

// RunConfig is the immutable configuration of a single run, resolved
// once at startup from flags. Components receive it by value; there is
// no ambient global configuration.
type RunConfig struct {
	// DryRun simulates the pipeline without any mutating provider
	// call and bypasses all confirmation gates.
	DryRun bool

	// SkipConfirmation bypasses both the global and the per-item
	// confirmation gates.
	SkipConfirmation bool

	// PerItemConfirm requires a typed "delete <name>" phrase before
	// each item. Ignored when SkipConfirmation or DryRun is set.
	PerItemConfirm bool

	// Exclusions holds names exempt from processing.
	Exclusions ExclusionSet

	// Scope selects the collection to enumerate: a subscription id,
	// a project, or empty for the provider's default scope.
	Scope string

	// RunsOnly restricts pipeline processing to canceling runs,
	// leaving the pipeline definitions in place.
	RunsOnly bool

	PollInterval time.Duration
	ItemDelay    time.Duration
}

// PollEvery returns the configured poll interval or the default.
func (c RunConfig) PollEvery() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return DefaultPollInterval
}

// DelayAfterItem returns the configured inter-item delay. A negative
// value disables the delay; zero means the default.
func (c RunConfig) DelayAfterItem() time.Duration {
	if c.ItemDelay < 0 {
		return 0
	}
	if c.ItemDelay == 0 {
		return DefaultItemDelay
	}
	return c.ItemDelay
}
