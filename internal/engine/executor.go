package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sweepr-io/sweepr/internal/logging"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// Executor drives deletion for a sequence of accepted resources. Items
// are processed strictly sequentially in input order; one item's
// failure never halts the rest.
type Executor struct {
	Provider provider.Provider
	Config   resource.RunConfig
	Gate     *Gate
	Out      io.Writer
}

// Execute processes items in order and records exactly one outcome per
// item. The context carries interruption; an interrupted run leaves the
// report populated for items processed so far.
func (x *Executor) Execute(ctx context.Context, items []resource.Ref) *resource.Report {
	report := resource.NewReport()
	for _, ref := range items {
		out, mutated := x.processOne(ctx, ref)
		report.Append(ref, out)
		if mutated {
			x.pause(ctx, x.Config.DelayAfterItem())
		}
		if ctx.Err() != nil {
			break
		}
	}
	return report
}

// processOne returns the outcome for one resource and whether a remote
// call was attempted. Panics are converted to Failed at this boundary
// so a single item's fault cannot crash the run.
func (x *Executor) processOne(ctx context.Context, ref resource.Ref) (out resource.Outcome, mutated bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic while processing item", "resource", ref.String(), "panic", r)
			out = resource.Failed(fmt.Sprintf("internal error: %v", r))
		}
	}()

	if x.Config.DryRun {
		fmt.Fprintf(x.Out, "[DRY RUN] Would delete %s %s\n", ref.Kind, ref.Name)
		return resource.SimulatedSuccess(), false
	}

	if ref.State != "" && ref.State.Terminal() {
		fmt.Fprintf(x.Out, "Skipping %s %s (already in state: %s)\n", ref.Kind, ref.Name, ref.State)
		return resource.SkippedAlreadyTerminal(ref.State), false
	}

	if x.Config.PerItemConfirm && !x.Config.SkipConfirmation {
		if !x.Gate.ConfirmItem(ref) {
			fmt.Fprintf(x.Out, "Skipping %s %s\n", ref.Kind, ref.Name)
			return resource.SkippedNotConfirmed(), false
		}
	}

	fmt.Fprintf(x.Out, "Deleting %s %s...\n", ref.Kind, ref.Name)
	op, err := x.Provider.Delete(ctx, ref)
	if err != nil {
		fmt.Fprintf(x.Out, "Failed to delete %s: %v\n", ref.Name, err)
		return resource.Failed(err.Error()), true
	}
	if op == nil || op.Done {
		fmt.Fprintf(x.Out, "Deleted %s\n", ref.Name)
		return resource.Succeeded(), true
	}
	return x.awaitCompletion(ctx, ref, op), true
}

// awaitCompletion polls a long-running delete until a terminal status,
// surfacing phase transitions as they occur. The executor imposes no
// timeout of its own; the provider's API may.
func (x *Executor) awaitCompletion(ctx context.Context, ref resource.Ref, op *provider.Operation) resource.Outcome {
	poller, ok := x.Provider.(provider.StatusPoller)
	if !ok {
		return resource.Failed("provider returned an unfinished operation but does not support status polling")
	}

	var lastPhase string
	for {
		st, err := poller.PollStatus(ctx, op)
		if err != nil {
			fmt.Fprintf(x.Out, "Failed to delete %s: %v\n", ref.Name, err)
			return resource.Failed(err.Error())
		}
		if st.Phase != "" && st.Phase != lastPhase {
			lastPhase = st.Phase
			fmt.Fprintf(x.Out, "  Status: %s\n", st.Phase)
		}
		if st.Terminal {
			if st.Failed {
				fmt.Fprintf(x.Out, "Failed to delete %s: %s\n", ref.Name, st.Reason)
				return resource.Failed(st.Reason)
			}
			fmt.Fprintf(x.Out, "Deleted %s\n", ref.Name)
			return resource.Succeeded()
		}
		if !x.pause(ctx, x.Config.PollEvery()) {
			return resource.Failed(fmt.Sprintf("interrupted while waiting for deletion: %v", ctx.Err()))
		}
	}
}

// pause waits for d or until the context is done, reporting whether the
// full wait elapsed.
func (x *Executor) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
