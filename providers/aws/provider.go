// Package aws deletes the AWS analogs of the supported resource kinds:
// CloudFormation stacks, CodeCommit repositories, CodePipeline
// pipelines and executions, and Secrets Manager secrets.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadConfig loads the shared AWS configuration, optionally pinned to
// a region. Credential resolution follows the SDK's default chain; a
// failure here is a setup failure, fatal to the run.
func LoadConfig(ctx context.Context, region string) (awssdk.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return cfg, nil
}
