// Package azure deletes Azure resource groups through the az CLI.
package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// Groups lists and deletes resource groups. Deletion is long-running:
// Delete starts it with --no-wait and PollStatus tracks the group's
// provisioning state until it disappears.
type Groups struct {
	run azcli.CommandRunner
}

func NewGroups(run azcli.CommandRunner) *Groups {
	return &Groups{run: run}
}

type group struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties struct {
		ProvisioningState string `json:"provisioningState"`
	} `json:"properties"`
}

// List enumerates resource groups; scope is the subscription id, empty
// for the CLI's default subscription.
func (g *Groups) List(ctx context.Context, scope string) ([]resource.Ref, error) {
	args := []string{"group", "list"}
	if scope != "" {
		args = append(args, "--subscription", scope)
	}

	var groups []group
	if err := azcli.JSON(ctx, g.run, &groups, args...); err != nil {
		return nil, fmt.Errorf("failed to list resource groups: %w", err)
	}

	refs := make([]resource.Ref, 0, len(groups))
	for _, grp := range groups {
		refs = append(refs, resource.Ref{
			ID:   grp.ID,
			Name: grp.Name,
			Kind: resource.KindResourceGroup,
		})
	}
	return refs, nil
}

// Delete starts deletion of one resource group and returns an
// unfinished operation keyed by the group's ARM id.
func (g *Groups) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	args := []string{"group", "delete", "--name", ref.Name, "--yes", "--no-wait"}
	if sub := subscriptionFromID(ref.ID); sub != "" {
		args = append(args, "--subscription", sub)
	}
	if _, err := g.run.Output(ctx, args...); err != nil {
		return nil, err
	}
	return &provider.Operation{Handle: ref.ID}, nil
}

// PollStatus reports the provisioning state of an in-flight group
// deletion. A group that no longer exists is a completed deletion.
func (g *Groups) PollStatus(ctx context.Context, op *provider.Operation) (provider.Status, error) {
	name := groupNameFromID(op.Handle)
	args := []string{"group", "show", "--name", name}
	if sub := subscriptionFromID(op.Handle); sub != "" {
		args = append(args, "--subscription", sub)
	}

	var grp group
	err := azcli.JSON(ctx, g.run, &grp, args...)
	if err != nil {
		if strings.Contains(err.Error(), "ResourceGroupNotFound") {
			return provider.Status{Terminal: true}, nil
		}
		return provider.Status{}, err
	}

	state := grp.Properties.ProvisioningState
	if state == "Failed" {
		return provider.Status{
			Phase:    state,
			Terminal: true,
			Failed:   true,
			Reason:   fmt.Sprintf("resource group %s ended in provisioning state %s", name, state),
		}, nil
	}
	return provider.Status{Phase: state}, nil
}

// subscriptionFromID extracts the subscription from an ARM resource id
// of the form /subscriptions/<sub>/resourceGroups/<name>.
func subscriptionFromID(id string) string {
	parts := strings.Split(strings.TrimPrefix(id, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if strings.EqualFold(parts[i], "subscriptions") {
			return parts[i+1]
		}
	}
	return ""
}

func groupNameFromID(id string) string {
	parts := strings.Split(strings.TrimPrefix(id, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return id
}
