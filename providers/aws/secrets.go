package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

type secretsManagerAPI interface {
	ListSecrets(ctx context.Context, in *secretsmanager.ListSecretsInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error)
	DeleteSecret(ctx context.Context, in *secretsmanager.DeleteSecretInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error)
}

// Secrets treats Secrets Manager secrets as the region's variable
// groups. Deletion is immediate and unrecoverable.
type Secrets struct {
	client secretsManagerAPI
}

func NewSecrets(cfg awssdk.Config) *Secrets {
	return &Secrets{client: secretsmanager.NewFromConfig(cfg)}
}

func newSecretsWithClient(client secretsManagerAPI) *Secrets {
	return &Secrets{client: client}
}

func (s *Secrets) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var refs []resource.Ref
	var next *string
	for {
		out, err := s.client.ListSecrets(ctx, &secretsmanager.ListSecretsInput{NextToken: next})
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}
		for _, sec := range out.SecretList {
			refs = append(refs, resource.Ref{
				ID:   awssdk.ToString(sec.ARN),
				Name: awssdk.ToString(sec.Name),
				Kind: resource.KindVariableGroup,
			})
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	return refs, nil
}

func (s *Secrets) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := s.client.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId:                   awssdk.String(ref.ID),
		ForceDeleteWithoutRecovery: awssdk.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}
