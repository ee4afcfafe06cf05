package aws

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfnTypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

// cloudFormationAPI is the subset of the CloudFormation client used by
// Stacks, narrowed so tests can fake it.
type cloudFormationAPI interface {
	ListStacks(ctx context.Context, in *cloudformation.ListStacksInput, opts ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
	DeleteStack(ctx context.Context, in *cloudformation.DeleteStackInput, opts ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// Stacks treats CloudFormation stacks as the region's resource groups.
// Stack deletion is long-running and polled through DescribeStacks.
type Stacks struct {
	client cloudFormationAPI
}

func NewStacks(cfg awssdk.Config) *Stacks {
	return &Stacks{client: cloudformation.NewFromConfig(cfg)}
}

func newStacksWithClient(client cloudFormationAPI) *Stacks {
	return &Stacks{client: client}
}

func (s *Stacks) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var refs []resource.Ref
	var next *string
	for {
		out, err := s.client.ListStacks(ctx, &cloudformation.ListStacksInput{NextToken: next})
		if err != nil {
			return nil, fmt.Errorf("failed to list stacks: %w", err)
		}
		for _, st := range out.StackSummaries {
			// ListStacks keeps deleted stacks visible for 90 days.
			switch st.StackStatus {
			case cfnTypes.StackStatusDeleteComplete, cfnTypes.StackStatusDeleteInProgress:
				continue
			}
			refs = append(refs, resource.Ref{
				ID:   awssdk.ToString(st.StackId),
				Name: awssdk.ToString(st.StackName),
				Kind: resource.KindResourceGroup,
			})
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	return refs, nil
}

func (s *Stacks) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := s.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: awssdk.String(ref.Name),
	})
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Handle: ref.Name}, nil
}

func (s *Stacks) PollStatus(ctx context.Context, op *provider.Operation) (provider.Status, error) {
	out, err := s.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: awssdk.String(op.Handle),
	})
	if err != nil {
		// DescribeStacks by name stops resolving once the stack is gone.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationError" {
			return provider.Status{Terminal: true}, nil
		}
		return provider.Status{}, err
	}
	if len(out.Stacks) == 0 {
		return provider.Status{Terminal: true}, nil
	}

	st := out.Stacks[0]
	switch st.StackStatus {
	case cfnTypes.StackStatusDeleteComplete:
		return provider.Status{Phase: string(st.StackStatus), Terminal: true}, nil
	case cfnTypes.StackStatusDeleteFailed:
		return provider.Status{
			Phase:    string(st.StackStatus),
			Terminal: true,
			Failed:   true,
			Reason:   awssdk.ToString(st.StackStatusReason),
		}, nil
	}
	return provider.Status{Phase: string(st.StackStatus)}, nil
}
