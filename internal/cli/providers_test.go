package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

func TestDefaultRegistryAzure(t *testing.T) {
	opts := provider.Options{Runner: azcli.ExecRunner{}}

	p, err := registry.Resolve(context.Background(), "azure", resource.KindResourceGroup, opts)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = registry.Resolve(context.Background(), "azure", resource.KindRepository, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not manage repository resources")
}

func TestDefaultRegistryAzdo(t *testing.T) {
	opts := provider.Options{
		Runner:       azcli.ExecRunner{},
		Organization: "contoso",
		Project:      "platform",
	}

	for _, kind := range []resource.Kind{
		resource.KindRepository,
		resource.KindVariableGroup,
		resource.KindPipeline,
		resource.KindPipelineRun,
	} {
		p, err := registry.Resolve(context.Background(), "azdo", kind, opts)
		require.NoError(t, err, "kind %s", kind)
		assert.NotNil(t, p)
	}

	_, err := registry.Resolve(context.Background(), "azdo", resource.KindResourceGroup, opts)
	require.Error(t, err)
}

func TestDefaultRegistryAzdoRequiresOrgAndProject(t *testing.T) {
	_, err := registry.Resolve(context.Background(), "azdo", resource.KindRepository, provider.Options{
		Runner: azcli.ExecRunner{},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --organization and --project")
}

func TestDefaultRegistryUnknown(t *testing.T) {
	_, err := registry.Resolve(context.Background(), "gcp", resource.KindRepository, provider.Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
