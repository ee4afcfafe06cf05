package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

type codeCommitAPI interface {
	ListRepositories(ctx context.Context, in *codecommit.ListRepositoriesInput, opts ...func(*codecommit.Options)) (*codecommit.ListRepositoriesOutput, error)
	DeleteRepository(ctx context.Context, in *codecommit.DeleteRepositoryInput, opts ...func(*codecommit.Options)) (*codecommit.DeleteRepositoryOutput, error)
}

// Repositories lists and deletes CodeCommit repositories.
type Repositories struct {
	client codeCommitAPI
}

func NewRepositories(cfg awssdk.Config) *Repositories {
	return &Repositories{client: codecommit.NewFromConfig(cfg)}
}

func newRepositoriesWithClient(client codeCommitAPI) *Repositories {
	return &Repositories{client: client}
}

func (r *Repositories) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var refs []resource.Ref
	var next *string
	for {
		out, err := r.client.ListRepositories(ctx, &codecommit.ListRepositoriesInput{NextToken: next})
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		for _, rp := range out.Repositories {
			refs = append(refs, resource.Ref{
				ID:   awssdk.ToString(rp.RepositoryId),
				Name: awssdk.ToString(rp.RepositoryName),
				Kind: resource.KindRepository,
			})
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	return refs, nil
}

func (r *Repositories) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := r.client.DeleteRepository(ctx, &codecommit.DeleteRepositoryInput{
		RepositoryName: awssdk.String(ref.Name),
	})
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}
