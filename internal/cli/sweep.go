package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sweepr-io/sweepr/internal/engine"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// sweepOpts parameterizes the shared list -> filter -> confirm ->
// execute -> summarize driver.
type sweepOpts struct {
	// Label is the plural resource label for operator-facing output,
	// e.g. "repositories".
	Label string

	// Phrase is the exact global-gate phrase. Anything else aborts
	// the run with nothing done.
	Phrase string

	// Scope is passed through to Provider.List.
	Scope string

	// SkipGlobalGate is set by callers that already confirmed at an
	// outer level (the per-subscription loop).
	SkipGlobalGate bool
}

// sweep drives one full run against one provider. A listing failure is
// a setup failure and returns an error; per-item failures end up in the
// summary only.
func sweep(ctx context.Context, cfg resource.RunConfig, prov provider.Provider, opts sweepOpts) error {
	refs, err := prov.List(ctx, opts.Scope)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Printf("No %s found.\n", opts.Label)
		return nil
	}

	toProcess, excluded := engine.Partition(refs, cfg.Exclusions)
	renderPreflight(opts.Label, refs, toProcess, excluded)
	if len(toProcess) == 0 {
		fmt.Printf("\nNo %s to process after applying exclusions.\n", opts.Label)
		return nil
	}

	gate := engine.NewGate(os.Stdin, os.Stdout)
	if !opts.SkipGlobalGate && !confirmGlobal(cfg, gate, opts) {
		fmt.Println("Confirmation failed. Exiting without making any changes.")
		return nil
	}

	exec := &engine.Executor{Provider: prov, Config: cfg, Gate: gate, Out: os.Stdout}
	fmt.Println()
	report := exec.Execute(ctx, toProcess)
	renderSummary(engine.Summarize(report, excluded))
	return nil
}

// confirmGlobal runs the global fail-closed gate. Dry-run and
// --skip-confirmation bypass it.
func confirmGlobal(cfg resource.RunConfig, gate *engine.Gate, opts sweepOpts) bool {
	if cfg.DryRun || cfg.SkipConfirmation {
		return true
	}
	fmt.Printf("\nWARNING: this will permanently delete the %s listed above.\n", opts.Label)
	fmt.Println("This operation cannot be undone.")
	prompt := fmt.Sprintf("\nType %q to proceed: ", opts.Phrase)
	return gate.Confirm(prompt, opts.Phrase)
}
