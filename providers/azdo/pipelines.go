package azdo

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// Pipelines lists and deletes the pipeline definitions of one project.
type Pipelines struct {
	run          azcli.CommandRunner
	organization string
	project      string
}

func NewPipelines(run azcli.CommandRunner, organization, project string) *Pipelines {
	return &Pipelines{run: run, organization: organization, project: project}
}

type pipeline struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (p *Pipelines) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var pipelines []pipeline
	err := azcli.JSON(ctx, p.run, &pipelines,
		"pipelines", "list",
		"--organization", orgURL(p.organization),
		"--project", p.project)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}

	refs := make([]resource.Ref, 0, len(pipelines))
	for _, pl := range pipelines {
		refs = append(refs, resource.Ref{
			ID:   itoa(pl.ID),
			Name: pl.Name,
			Kind: resource.KindPipeline,
		})
	}
	return refs, nil
}

func (p *Pipelines) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := p.run.Output(ctx,
		"pipelines", "delete",
		"--id", ref.ID,
		"--organization", orgURL(p.organization),
		"--project", p.project,
		"--yes")
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}
