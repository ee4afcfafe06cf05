package azure

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// fakeRunner answers az invocations from canned output keyed by the
// leading arguments.
type fakeRunner struct {
	calls     [][]string
	responses map[string][]byte
	errs      map[string]error
}

func (f *fakeRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	joined := strings.Join(args, " ")
	for prefix, err := range f.errs {
		if strings.HasPrefix(joined, prefix) {
			return nil, err
		}
	}
	for prefix, out := range f.responses {
		if strings.HasPrefix(joined, prefix) {
			return out, nil
		}
	}
	return nil, errors.New("unexpected az invocation: " + joined)
}

const groupID = "/subscriptions/sub-1/resourceGroups/rg-test"

func TestGroupsList(t *testing.T) {
	run := &fakeRunner{responses: map[string][]byte{
		"group list": []byte(`[
			{"id": "/subscriptions/sub-1/resourceGroups/rg-a", "name": "rg-a"},
			{"id": "/subscriptions/sub-1/resourceGroups/rg-b", "name": "rg-b"}
		]`),
	}}

	refs, err := NewGroups(run).List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "rg-a", refs[0].Name)
	assert.Equal(t, resource.KindResourceGroup, refs[0].Kind)
	assert.Equal(t, []string{"group", "list", "--output", "json"}, run.calls[0])
}

func TestGroupsListScopedToSubscription(t *testing.T) {
	run := &fakeRunner{responses: map[string][]byte{"group list": []byte(`[]`)}}

	_, err := NewGroups(run).List(context.Background(), "sub-2")

	require.NoError(t, err)
	assert.Equal(t, []string{"group", "list", "--subscription", "sub-2", "--output", "json"}, run.calls[0])
}

func TestGroupsDelete(t *testing.T) {
	run := &fakeRunner{responses: map[string][]byte{"group delete": nil}}

	op, err := NewGroups(run).Delete(context.Background(), resource.Ref{
		ID:   groupID,
		Name: "rg-test",
		Kind: resource.KindResourceGroup,
	})

	require.NoError(t, err)
	assert.False(t, op.Done)
	assert.Equal(t, groupID, op.Handle)
	assert.Equal(t, []string{
		"group", "delete", "--name", "rg-test", "--yes", "--no-wait",
		"--subscription", "sub-1",
	}, run.calls[0])
}

func TestGroupsDeleteError(t *testing.T) {
	run := &fakeRunner{errs: map[string]error{
		"group delete": errors.New("az group delete: AuthorizationFailed"),
	}}

	_, err := NewGroups(run).Delete(context.Background(), resource.Ref{ID: groupID, Name: "rg-test"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthorizationFailed")
}

func TestGroupsPollStatus(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
		err  error
		want provider.Status
	}{
		{
			name: "still deleting",
			out:  []byte(`{"id": "` + groupID + `", "name": "rg-test", "properties": {"provisioningState": "Deleting"}}`),
			want: provider.Status{Phase: "Deleting"},
		},
		{
			name: "gone means done",
			err:  errors.New("az group show: ResourceGroupNotFound: Resource group 'rg-test' could not be found."),
			want: provider.Status{Terminal: true},
		},
		{
			name: "failed provisioning state",
			out:  []byte(`{"id": "` + groupID + `", "name": "rg-test", "properties": {"provisioningState": "Failed"}}`),
			want: provider.Status{
				Phase:    "Failed",
				Terminal: true,
				Failed:   true,
				Reason:   "resource group rg-test ended in provisioning state Failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &fakeRunner{
				responses: map[string][]byte{"group show": tt.out},
				errs:      map[string]error{},
			}
			if tt.err != nil {
				run.errs["group show"] = tt.err
			}

			st, err := NewGroups(run).PollStatus(context.Background(), &provider.Operation{Handle: groupID})

			require.NoError(t, err)
			assert.Equal(t, tt.want, st)
			assert.Equal(t, []string{
				"group", "show", "--name", "rg-test",
				"--subscription", "sub-1", "--output", "json",
			}, run.calls[0])
		})
	}
}

func TestGroupsPollStatusUnrelatedError(t *testing.T) {
	run := &fakeRunner{errs: map[string]error{
		"group show": errors.New("az group show: connection reset"),
	}}

	_, err := NewGroups(run).PollStatus(context.Background(), &provider.Operation{Handle: groupID})

	require.Error(t, err)
}

func TestSubscriptionFromID(t *testing.T) {
	assert.Equal(t, "sub-1", subscriptionFromID(groupID))
	assert.Equal(t, "", subscriptionFromID("rg-test"))
	assert.Equal(t, "", subscriptionFromID(""))
}

func TestGroupNameFromID(t *testing.T) {
	assert.Equal(t, "rg-test", groupNameFromID(groupID))
	assert.Equal(t, "plain-name", groupNameFromID("plain-name"))
}
