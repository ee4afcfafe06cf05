package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/engine"
	"github.com/sweepr-io/sweepr/internal/logging"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

var (
	pipelinesProvider     string
	pipelinesOrganization string
	pipelinesProject      string
	pipelinesRegion       string
	pipelinesRunsOnly     bool
)

var pipelinesCmd = &cobra.Command{
	Use:   "pipelines",
	Short: "Cancel pipeline runs and delete pipelines",
	Long: `For each pipeline in the selected scope (minus exclusions): cancels any
run not yet in a terminal state, then deletes the pipeline itself.
--runs-only cancels runs but keeps the pipeline definitions.

Providers: Azure DevOps pipelines (azdo) or CodePipeline (aws).`,
	RunE: runPipelines,
}

func init() {
	pipelinesCmd.Flags().StringVar(&pipelinesProvider, "provider", "azdo", "Resource provider (azdo, aws)")
	pipelinesCmd.Flags().StringVarP(&pipelinesOrganization, "organization", "o", "", "Azure DevOps organization name")
	pipelinesCmd.Flags().StringVarP(&pipelinesProject, "project", "p", "", "Azure DevOps project name")
	pipelinesCmd.Flags().StringVar(&pipelinesRegion, "region", "", "AWS region")
	pipelinesCmd.Flags().BoolVar(&pipelinesRunsOnly, "runs-only", false, "Cancel runs only, keep the pipelines")
}

func runPipelines(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := buildRunConfig("", pipelinesRunsOnly)
	if err != nil {
		return err
	}

	popts := provider.Options{
		Runner:       azcli.ExecRunner{},
		Organization: pipelinesOrganization,
		Project:      pipelinesProject,
		Region:       pipelinesRegion,
	}
	pipeProv, err := registry.Resolve(ctx, pipelinesProvider, resource.KindPipeline, popts)
	if err != nil {
		return err
	}
	runProv, err := registry.Resolve(ctx, pipelinesProvider, resource.KindPipelineRun, popts)
	if err != nil {
		return err
	}

	pipelines, err := pipeProv.List(ctx, "")
	if err != nil {
		return err
	}
	if len(pipelines) == 0 {
		fmt.Println("No pipelines found.")
		return nil
	}

	toProcess, excluded := engine.Partition(pipelines, cfg.Exclusions)
	renderPreflight("pipelines", pipelines, toProcess, excluded)
	if len(toProcess) == 0 {
		fmt.Println("\nNo pipelines to process after applying exclusions.")
		return nil
	}

	phrase := "DELETE ALL PIPELINES"
	action := "cancel any in-progress runs and delete the pipelines themselves"
	if cfg.RunsOnly {
		phrase = "CANCEL ALL PIPELINE RUNS"
		action = "cancel in-progress pipeline runs"
	}

	gate := engine.NewGate(os.Stdin, os.Stdout)
	if !cfg.DryRun && !cfg.SkipConfirmation {
		fmt.Printf("\nThis will %s. This operation cannot be undone.\n", action)
		prompt := fmt.Sprintf("\nType %q to proceed: ", phrase)
		if !gate.Confirm(prompt, phrase) {
			fmt.Println("Confirmation failed. Exiting without making any changes.")
			return nil
		}
	}

	// Runs are never individually confirmed; the per-item gate guards
	// the pipeline definitions.
	runCfg := cfg
	runCfg.PerItemConfirm = false
	runExec := &engine.Executor{Provider: runProv, Config: runCfg, Gate: gate, Out: os.Stdout}
	pipeExec := &engine.Executor{Provider: pipeProv, Config: cfg, Gate: gate, Out: os.Stdout}

	report := resource.NewReport()
	var runsSeen, runsCanceled, pipelinesDeleted int
	for _, p := range toProcess {
		fmt.Printf("\nProcessing pipeline: %s\n", p)

		runs, err := runProv.List(ctx, p.ID)
		if err != nil {
			logging.Warn("failed to list pipeline runs", "pipeline", p.Name, "error", err)
			fmt.Printf("  Failed to list runs: %v\n", err)
		}
		if len(runs) > 0 {
			fmt.Printf("  Found %d run(s) for this pipeline.\n", len(runs))
			runsSeen += len(runs)
			sub := runExec.Execute(ctx, runs)
			runsCanceled += countSucceeded(sub)
			report.Merge(sub)
		} else if err == nil {
			fmt.Println("  No runs found for this pipeline.")
		}

		if !cfg.RunsOnly {
			sub := pipeExec.Execute(ctx, []resource.Ref{p})
			pipelinesDeleted += countSucceeded(sub)
			report.Merge(sub)
		}

		if ctx.Err() != nil {
			break
		}
	}

	fmt.Printf("\nCancelled %d out of %d run(s).\n", runsCanceled, runsSeen)
	if !cfg.RunsOnly {
		fmt.Printf("Deleted %d out of %d pipeline(s).\n", pipelinesDeleted, len(toProcess))
	}
	renderSummary(engine.Summarize(report, excluded))
	return nil
}

// countSucceeded counts real and simulated successes in a report.
func countSucceeded(r *resource.Report) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Outcome.Code == resource.OutcomeSucceeded {
			n++
		}
	}
	return n
}
