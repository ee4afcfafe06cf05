package aws

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	cpTypes "github.com/aws/aws-sdk-go-v2/service/codepipeline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepr-io/sweepr/internal/resource"
)

type fakeCodePipeline struct {
	listPages []*codepipeline.ListPipelinesOutput
	listPage  int
	execPages []*codepipeline.ListPipelineExecutionsOutput
	execPage  int
	deleted   []string
	stopped   []*codepipeline.StopPipelineExecutionInput
}

func (f *fakeCodePipeline) ListPipelines(ctx context.Context, in *codepipeline.ListPipelinesInput, _ ...func(*codepipeline.Options)) (*codepipeline.ListPipelinesOutput, error) {
	out := f.listPages[f.listPage]
	f.listPage++
	return out, nil
}

func (f *fakeCodePipeline) DeletePipeline(ctx context.Context, in *codepipeline.DeletePipelineInput, _ ...func(*codepipeline.Options)) (*codepipeline.DeletePipelineOutput, error) {
	f.deleted = append(f.deleted, awssdk.ToString(in.Name))
	return &codepipeline.DeletePipelineOutput{}, nil
}

func (f *fakeCodePipeline) ListPipelineExecutions(ctx context.Context, in *codepipeline.ListPipelineExecutionsInput, _ ...func(*codepipeline.Options)) (*codepipeline.ListPipelineExecutionsOutput, error) {
	out := f.execPages[f.execPage]
	f.execPage++
	return out, nil
}

func (f *fakeCodePipeline) StopPipelineExecution(ctx context.Context, in *codepipeline.StopPipelineExecutionInput, _ ...func(*codepipeline.Options)) (*codepipeline.StopPipelineExecutionOutput, error) {
	f.stopped = append(f.stopped, in)
	return &codepipeline.StopPipelineExecutionOutput{}, nil
}

func TestPipelinesList(t *testing.T) {
	client := &fakeCodePipeline{listPages: []*codepipeline.ListPipelinesOutput{
		{
			Pipelines: []cpTypes.PipelineSummary{{Name: awssdk.String("deploy")}},
			NextToken: awssdk.String("page-2"),
		},
		{
			Pipelines: []cpTypes.PipelineSummary{{Name: awssdk.String("release")}},
		},
	}}

	refs, err := newPipelinesWithClient(client).List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, resource.Ref{ID: "deploy", Name: "deploy", Kind: resource.KindPipeline}, refs[0])
	assert.Equal(t, "release", refs[1].Name)
}

func TestPipelinesDelete(t *testing.T) {
	client := &fakeCodePipeline{}

	op, err := newPipelinesWithClient(client).Delete(context.Background(), resource.Ref{
		ID:   "deploy",
		Name: "deploy",
		Kind: resource.KindPipeline,
	})

	require.NoError(t, err)
	assert.True(t, op.Done)
	assert.Equal(t, []string{"deploy"}, client.deleted)
}

func TestExecutionsList(t *testing.T) {
	client := &fakeCodePipeline{execPages: []*codepipeline.ListPipelineExecutionsOutput{
		{
			PipelineExecutionSummaries: []cpTypes.PipelineExecutionSummary{
				{PipelineExecutionId: awssdk.String("exec-1"), Status: cpTypes.PipelineExecutionStatusInProgress},
				{PipelineExecutionId: awssdk.String("exec-2"), Status: cpTypes.PipelineExecutionStatusSucceeded},
			},
		},
	}}

	refs, err := newExecutionsWithClient(client).List(context.Background(), "deploy")

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, resource.Ref{
		ID:    "deploy/exec-1",
		Name:  "exec-1",
		Kind:  resource.KindPipelineRun,
		State: resource.StateInProgress,
	}, refs[0])
	assert.Equal(t, resource.StateCompleted, refs[1].State)
}

func TestExecutionsDeleteStopsExecution(t *testing.T) {
	client := &fakeCodePipeline{}

	op, err := newExecutionsWithClient(client).Delete(context.Background(), resource.Ref{
		ID:    "deploy/exec-1",
		Name:  "exec-1",
		Kind:  resource.KindPipelineRun,
		State: resource.StateInProgress,
	})

	require.NoError(t, err)
	assert.True(t, op.Done)
	require.Len(t, client.stopped, 1)
	assert.Equal(t, "deploy", awssdk.ToString(client.stopped[0].PipelineName))
	assert.Equal(t, "exec-1", awssdk.ToString(client.stopped[0].PipelineExecutionId))
	assert.True(t, client.stopped[0].Abandon)
}

func TestExecutionsDeleteMalformedID(t *testing.T) {
	client := &fakeCodePipeline{}

	_, err := newExecutionsWithClient(client).Delete(context.Background(), resource.Ref{
		ID:   "no-pipeline-part",
		Kind: resource.KindPipelineRun,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed execution id")
	assert.Empty(t, client.stopped)
}

func TestExecutionState(t *testing.T) {
	tests := []struct {
		status cpTypes.PipelineExecutionStatus
		want   resource.RunState
	}{
		{cpTypes.PipelineExecutionStatusInProgress, resource.StateInProgress},
		{cpTypes.PipelineExecutionStatusStopping, resource.StateInProgress},
		{cpTypes.PipelineExecutionStatusSucceeded, resource.StateCompleted},
		{cpTypes.PipelineExecutionStatusSuperseded, resource.StateCompleted},
		{cpTypes.PipelineExecutionStatusStopped, resource.StateCanceled},
		{cpTypes.PipelineExecutionStatusCancelled, resource.StateCanceled},
		{cpTypes.PipelineExecutionStatusFailed, resource.StateFailed},
		{cpTypes.PipelineExecutionStatus("Unknown"), resource.StateCompleted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, executionState(tt.status), "status %q", tt.status)
	}
}
