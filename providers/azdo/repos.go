package azdo

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// Repositories lists and deletes the Git repositories of one project.
type Repositories struct {
	run          azcli.CommandRunner
	organization string
	project      string
}

func NewRepositories(run azcli.CommandRunner, organization, project string) *Repositories {
	return &Repositories{run: run, organization: organization, project: project}
}

type repo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *Repositories) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var repos []repo
	err := azcli.JSON(ctx, r.run, &repos,
		"repos", "list",
		"--organization", orgURL(r.organization),
		"--project", r.project)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	refs := make([]resource.Ref, 0, len(repos))
	for _, rp := range repos {
		refs = append(refs, resource.Ref{
			ID:   rp.ID,
			Name: rp.Name,
			Kind: resource.KindRepository,
		})
	}
	return refs, nil
}

func (r *Repositories) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := r.run.Output(ctx,
		"repos", "delete",
		"--id", ref.ID,
		"--organization", orgURL(r.organization),
		"--project", r.project,
		"--yes")
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}
