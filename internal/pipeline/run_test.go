package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/observability"
)

const pipelineResume = `John Smith
john.smith@example.com

Experience

Software Engineer at Acme Corp
2019 - Present
• Built backend services in python with postgresql storage
• Deployed workloads to aws with docker

Skills

Python, SQL, Docker, Git
`

const pipelineJob = `Senior Backend Engineer

Requirements
Python and AWS skills are required
5+ years of experience required

Nice to have
Kubernetes experience is a plus
`

func TestRunMatch(t *testing.T) {
	outcome, err := RunMatch(context.Background(), pipelineResume, pipelineJob, Options{})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, outcome.MatchID)
	require.NotNil(t, outcome.Resume)
	require.NotNil(t, outcome.Job)
	require.NotNil(t, outcome.Match)
	require.NotNil(t, outcome.Plan)

	assert.Contains(t, outcome.Resume.Skills, "Python")
	assert.Equal(t, "Senior Backend Engineer", outcome.Job.JobTitle)
	assert.Greater(t, outcome.Match.OverallScore, 0.0)
}

func TestRunMatchEmptyResume(t *testing.T) {
	_, err := RunMatch(context.Background(), "   ", pipelineJob, Options{})
	assert.Error(t, err)
}

func TestRunMatchVerbose(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Printer: observability.NewPrinter(&buf)}

	_, err := RunMatch(context.Background(), pipelineResume, pipelineJob, opts)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "STRUCTURED RESUME")
	assert.Contains(t, out, "STRUCTURED JOB DESCRIPTION")
	assert.Contains(t, out, "MATCH ANALYSIS")
}

func TestRunBatchIsolatesFailures(t *testing.T) {
	resumes := []string{pipelineResume, "", pipelineResume}

	outcomes := RunBatch(context.Background(), resumes, pipelineJob, 2, Options{})
	require.Len(t, outcomes, 3)

	assert.NoError(t, outcomes[0].Err)
	assert.NotNil(t, outcomes[0].Match)

	assert.Error(t, outcomes[1].Err)
	assert.Nil(t, outcomes[1].Match)

	assert.NoError(t, outcomes[2].Err)
	assert.NotNil(t, outcomes[2].Match)
}

func TestRunBatchDeterministicOrder(t *testing.T) {
	resumes := []string{pipelineResume, pipelineResume}

	first := RunBatch(context.Background(), resumes, pipelineJob, 1, Options{})
	second := RunBatch(context.Background(), resumes, pipelineJob, 2, Options{})
	require.Len(t, first, 2)
	require.Len(t, second, 2)

	for i := range first {
		require.NoError(t, first[i].Err)
		require.NoError(t, second[i].Err)
		assert.Equal(t, first[i].Match.OverallScore, second[i].Match.OverallScore)
		assert.Equal(t, first[i].Resume.Skills, second[i].Resume.Skills)
	}
}
