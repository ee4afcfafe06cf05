package aws

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	cpTypes "github.com/aws/aws-sdk-go-v2/service/codepipeline/types"

	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

type codePipelineAPI interface {
	ListPipelines(ctx context.Context, in *codepipeline.ListPipelinesInput, opts ...func(*codepipeline.Options)) (*codepipeline.ListPipelinesOutput, error)
	DeletePipeline(ctx context.Context, in *codepipeline.DeletePipelineInput, opts ...func(*codepipeline.Options)) (*codepipeline.DeletePipelineOutput, error)
	ListPipelineExecutions(ctx context.Context, in *codepipeline.ListPipelineExecutionsInput, opts ...func(*codepipeline.Options)) (*codepipeline.ListPipelineExecutionsOutput, error)
	StopPipelineExecution(ctx context.Context, in *codepipeline.StopPipelineExecutionInput, opts ...func(*codepipeline.Options)) (*codepipeline.StopPipelineExecutionOutput, error)
}

// Pipelines lists and deletes CodePipeline pipelines.
type Pipelines struct {
	client codePipelineAPI
}

func NewPipelines(cfg awssdk.Config) *Pipelines {
	return &Pipelines{client: codepipeline.NewFromConfig(cfg)}
}

func newPipelinesWithClient(client codePipelineAPI) *Pipelines {
	return &Pipelines{client: client}
}

func (p *Pipelines) List(ctx context.Context, _ string) ([]resource.Ref, error) {
	var refs []resource.Ref
	var next *string
	for {
		out, err := p.client.ListPipelines(ctx, &codepipeline.ListPipelinesInput{NextToken: next})
		if err != nil {
			return nil, fmt.Errorf("failed to list pipelines: %w", err)
		}
		for _, pl := range out.Pipelines {
			name := awssdk.ToString(pl.Name)
			refs = append(refs, resource.Ref{
				ID:   name,
				Name: name,
				Kind: resource.KindPipeline,
			})
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	return refs, nil
}

func (p *Pipelines) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	_, err := p.client.DeletePipeline(ctx, &codepipeline.DeletePipelineInput{
		Name: awssdk.String(ref.Name),
	})
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}

// Executions exposes the runs of CodePipeline pipelines. Delete stops
// an in-flight execution.
type Executions struct {
	client codePipelineAPI
}

func NewExecutions(cfg awssdk.Config) *Executions {
	return &Executions{client: codepipeline.NewFromConfig(cfg)}
}

func newExecutionsWithClient(client codePipelineAPI) *Executions {
	return &Executions{client: client}
}

// List enumerates the executions of the pipeline named by scope. Each
// ref's id embeds the pipeline name, which StopPipelineExecution needs
// alongside the execution id.
func (e *Executions) List(ctx context.Context, scope string) ([]resource.Ref, error) {
	var refs []resource.Ref
	var next *string
	for {
		out, err := e.client.ListPipelineExecutions(ctx, &codepipeline.ListPipelineExecutionsInput{
			PipelineName: awssdk.String(scope),
			NextToken:    next,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list executions of pipeline %s: %w", scope, err)
		}
		for _, ex := range out.PipelineExecutionSummaries {
			id := awssdk.ToString(ex.PipelineExecutionId)
			refs = append(refs, resource.Ref{
				ID:    scope + "/" + id,
				Name:  id,
				Kind:  resource.KindPipelineRun,
				State: executionState(ex.Status),
			})
		}
		if out.NextToken == nil {
			break
		}
		next = out.NextToken
	}
	return refs, nil
}

func (e *Executions) Delete(ctx context.Context, ref resource.Ref) (*provider.Operation, error) {
	pipeline, execution, ok := strings.Cut(ref.ID, "/")
	if !ok {
		return nil, fmt.Errorf("malformed execution id %q", ref.ID)
	}
	_, err := e.client.StopPipelineExecution(ctx, &codepipeline.StopPipelineExecutionInput{
		PipelineName:        awssdk.String(pipeline),
		PipelineExecutionId: awssdk.String(execution),
		Abandon:             true,
		Reason:              awssdk.String("stopped by sweepr"),
	})
	if err != nil {
		return nil, err
	}
	return &provider.Operation{Done: true}, nil
}

func executionState(status cpTypes.PipelineExecutionStatus) resource.RunState {
	switch status {
	case cpTypes.PipelineExecutionStatusInProgress, cpTypes.PipelineExecutionStatusStopping:
		return resource.StateInProgress
	case cpTypes.PipelineExecutionStatusSucceeded, cpTypes.PipelineExecutionStatusSuperseded:
		return resource.StateCompleted
	case cpTypes.PipelineExecutionStatusStopped, cpTypes.PipelineExecutionStatusCancelled:
		return resource.StateCanceled
	case cpTypes.PipelineExecutionStatusFailed:
		return resource.StateFailed
	}
	return resource.StateCompleted
}
