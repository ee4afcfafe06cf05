package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/engine"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
	"github.com/sweepr-io/sweepr/providers/azure"
)

var (
	groupsProvider     string
	groupsSubscription string
	groupsRegion       string
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Delete resource groups",
	Long: `Deletes all resource groups in the selected scope, minus exclusions.

With provider azure, --subscription pins the sweep to one subscription;
without it every subscription visible to the signed-in account is swept,
each behind its own confirmation. With provider aws, CloudFormation
stacks play the resource-group role.

Resource group deletion is long-running: progress is polled and status
transitions are printed until each deletion settles.`,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().StringVar(&groupsProvider, "provider", "azure", "Resource provider (azure, aws)")
	groupsCmd.Flags().StringVarP(&groupsSubscription, "subscription", "s", "", "Azure subscription id (default: all subscriptions)")
	groupsCmd.Flags().StringVar(&groupsRegion, "region", "", "AWS region")
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := buildRunConfig(groupsSubscription, false)
	if err != nil {
		return err
	}

	runner := azcli.ExecRunner{}
	prov, err := registry.Resolve(ctx, groupsProvider, resource.KindResourceGroup, provider.Options{
		Runner: runner,
		Region: groupsRegion,
	})
	if err != nil {
		return err
	}

	opts := sweepOpts{
		Label:  "resource groups",
		Phrase: "DELETE ALL RESOURCE GROUPS",
		Scope:  groupsSubscription,
	}

	if groupsProvider == "azure" && groupsSubscription == "" {
		return sweepAllSubscriptions(ctx, cfg, prov, runner, opts)
	}
	return sweep(ctx, cfg, prov, opts)
}

// sweepAllSubscriptions enumerates every visible subscription and
// sweeps each one, gated by a per-subscription "process <id>" phrase on
// top of the global gate.
func sweepAllSubscriptions(ctx context.Context, cfg resource.RunConfig, prov provider.Provider, runner azcli.CommandRunner, opts sweepOpts) error {
	subs, err := azure.ListSubscriptions(ctx, runner)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions found or you don't have access to any subscriptions.")
		return nil
	}

	fmt.Printf("Found %d subscription(s):\n", len(subs))
	for i, sub := range subs {
		fmt.Printf("  %d. %s (ID: %s)\n", i+1, sub.Name, sub.ID)
	}

	gate := engine.NewGate(os.Stdin, os.Stdout)
	if !cfg.DryRun && !cfg.SkipConfirmation {
		fmt.Println("\nWARNING: this will delete resource groups across ALL subscriptions listed above.")
		fmt.Println("This operation cannot be undone.")
		prompt := fmt.Sprintf("\nType %q to proceed: ", opts.Phrase)
		if !gate.Confirm(prompt, opts.Phrase) {
			fmt.Println("Confirmation failed. Exiting without making any changes.")
			return nil
		}
	}

	for _, sub := range subs {
		fmt.Printf("\nProcessing subscription: %s (%s)\n", sub.Name, sub.ID)

		if !cfg.DryRun && !cfg.SkipConfirmation {
			phrase := "process " + sub.ID
			prompt := fmt.Sprintf("Type %q to confirm operations on this subscription: ", phrase)
			if !gate.Confirm(prompt, phrase) {
				fmt.Printf("Skipping subscription %s\n", sub.ID)
				continue
			}
		}

		subOpts := opts
		subOpts.Scope = sub.ID
		subOpts.SkipGlobalGate = true
		if err := sweep(ctx, cfg, prov, subOpts); err != nil {
			// A listing failure in one subscription should not strand
			// the rest of the account.
			fmt.Printf("Error processing subscription %s: %v\n", sub.ID, err)
		}
	}

	fmt.Println("\nResource cleanup complete!")
	if cfg.DryRun {
		fmt.Println("[DRY RUN] No resources were actually deleted. Run without --dry-run to perform actual deletion.")
	}
	return nil
}
