package azdo

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// VariableGroups lists and deletes the library variable groups of one
// project.
type VariableGroups struct {
	run          azcli.CommandRunner
	organization string
	project      string
}

func NewVariableGroups(run azcli.CommandRunner, organization, project string) *VariableGroups {
	return &VariableGroups{run: run, organization: organization, project: project}
}

type variableGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (v *VariableGroups) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var groups []variableGroup
	err := azcli.JSON(ctx, v.run, &groups,
		"pipelines", "variable-group", "list",
		"--organization", orgURL(v.organization),
		"--project", v.project)
	if err != nil {
		return nil, fmt.Errorf("failed to list variable groups: %w", err)
	}

	refs := make([]resource.Ref, 0, len(groups))
	for _, g := range groups {
		refs = append(refs, resource.Ref{
			ID:   itoa(g.ID),
			Name: g.Name,
			Kind: resource.KindVariableGroup,
		})
	}
	return refs, nil
}

func (v *VariableGroups) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := v.run.Output(ctx,
		"pipelines", "variable-group", "delete",
		"--group-id", ref.ID,
		"--organization", orgURL(v.organization),
		"--project", v.project,
		"--yes")
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}
