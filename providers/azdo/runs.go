package azdo

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// PipelineRuns lists the runs of one pipeline and cancels in-flight
// ones. Delete on a run ref means cancel; runs in a terminal state are
// never passed to it by the executor.
type PipelineRuns struct {
	run          azcli.CommandRunner
	organization string
	project      string
}

func NewPipelineRuns(run azcli.CommandRunner, organization, project string) *PipelineRuns {
	return &PipelineRuns{run: run, organization: organization, project: project}
}

type pipelineRun struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// List enumerates the runs of the pipeline identified by scope.
func (p *PipelineRuns) List(ctx context.Context, scope string) ([]resource.Ref, error) {
	var runs []pipelineRun
	err := azcli.JSON(ctx, p.run, &runs,
		"pipelines", "runs", "list",
		"--pipeline-id", scope,
		"--organization", orgURL(p.organization),
		"--project", p.project)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline runs: %w", err)
	}

	refs := make([]resource.Ref, 0, len(runs))
	for _, r := range runs {
		id := itoa(r.ID)
		refs = append(refs, resource.Ref{
			ID:    id,
			Name:  "run " + id,
			Kind:  resource.KindPipelineRun,
			State: runState(r.Status),
		})
	}
	return refs, nil
}

func (p *PipelineRuns) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := p.run.Output(ctx,
		"pipelines", "runs", "cancel",
		"--id", ref.ID,
		"--organization", orgURL(p.organization),
		"--project", p.project,
		"--yes")
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}

// runState maps az pipeline run statuses onto the run-state enum.
// Only notStarted, inProgress, queued and postponed runs can still be
// canceled; any status we do not recognize is treated as terminal so a
// sweep never tries to cancel a run the API considers settled.
func runState(status string) resource.RunState {
	switch status {
	case "notStarted":
		return resource.StateNotStarted
	case "inProgress", "canceling":
		return resource.StateInProgress
	case "queued", "postponed", "none", "":
		return resource.StateQueued
	case "cancelled", "canceled":
		return resource.StateCanceled
	default:
		return resource.StateCompleted
	}
}
