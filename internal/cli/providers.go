package cli

import (
	"context"
	"fmt"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
	"github.com/sweepr-io/sweepr/providers/aws"
	"github.com/sweepr-io/sweepr/providers/azdo"
	"github.com/sweepr-io/sweepr/providers/azure"
)

// registry holds the built-in provider factories.
var registry = defaultRegistry()

func defaultRegistry() *provider.Registry {
	r := provider.NewRegistry()

	r.Register("azure", func(_ context.Context, kind resource.Kind, opts provider.Options) (provider.Provider, error) {
		if kind != resource.KindResourceGroup {
			return nil, fmt.Errorf("provider azure does not manage %s resources", kind)
		}
		return azure.NewGroups(opts.Runner), nil
	})

	r.Register("azdo", func(_ context.Context, kind resource.Kind, opts provider.Options) (provider.Provider, error) {
		if opts.Organization == "" || opts.Project == "" {
			return nil, fmt.Errorf("provider azdo requires --organization and --project")
		}
		switch kind {
		case resource.KindRepository:
			return azdo.NewRepositories(opts.Runner, opts.Organization, opts.Project), nil
		case resource.KindVariableGroup:
			return azdo.NewVariableGroups(opts.Runner, opts.Organization, opts.Project), nil
		case resource.KindPipeline:
			return azdo.NewPipelines(opts.Runner, opts.Organization, opts.Project), nil
		case resource.KindPipelineRun:
			return azdo.NewPipelineRuns(opts.Runner, opts.Organization, opts.Project), nil
		}
		return nil, fmt.Errorf("provider azdo does not manage %s resources", kind)
	})

	r.Register("aws", func(ctx context.Context, kind resource.Kind, opts provider.Options) (provider.Provider, error) {
		cfg, err := aws.LoadConfig(ctx, opts.Region)
		if err != nil {
			return nil, err
		}
		switch kind {
		case resource.KindResourceGroup:
			return aws.NewStacks(cfg), nil
		case resource.KindRepository:
			return aws.NewRepositories(cfg), nil
		case resource.KindVariableGroup:
			return aws.NewSecrets(cfg), nil
		case resource.KindPipeline:
			return aws.NewPipelines(cfg), nil
		case resource.KindPipelineRun:
			return aws.NewExecutions(cfg), nil
		}
		return nil, fmt.Errorf("provider aws does not manage %s resources", kind)
	})

	return r
}
