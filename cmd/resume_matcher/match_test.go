package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResumeText = `John Smith
john.smith@example.com

Experience

Software Engineer at Acme Corp
2019 - Present
• Built backend services in python with postgresql storage
• Deployed workloads to aws with docker

Skills

Python, SQL, Docker, Git
`

func writeMatchFixtures(t *testing.T) (resumePath, jobPath string) {
	t.Helper()
	tmpDir := t.TempDir()

	resumePath = filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResumeText), 0644))

	jobPath = filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(testJobPosting), 0644))

	return resumePath, jobPath
}

func TestMatchCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	_, jobPath := writeMatchFixtures(t)

	cmd := exec.Command(binaryPath, "match", "--job", jobPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}

func TestMatchCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath, jobPath := writeMatchFixtures(t)
	outFile := filepath.Join(t.TempDir(), "match.json")

	cmd := exec.Command(binaryPath, "match", "--resume", resumePath, "--job", jobPath, "--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"overall_score"`)
	assert.Contains(t, string(content), `"skill_gaps"`)
	assert.Contains(t, string(content), `"match_id"`)
}

func TestPlanCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath, jobPath := writeMatchFixtures(t)

	cmd := exec.Command(binaryPath, "plan", "--resume", resumePath, "--job", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	assert.Contains(t, string(output), `"learning_plan"`)
	assert.Contains(t, string(output), `"estimated_time"`)
}

func TestBatchCommand_IsolatesFailures(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath, jobPath := writeMatchFixtures(t)
	missingPath := filepath.Join(t.TempDir(), "missing.txt")

	cmd := exec.Command(binaryPath, "batch",
		"--resume", resumePath,
		"--resume", missingPath,
		"--job", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	assert.Contains(t, string(output), `"status": "ok"`)
	assert.Contains(t, string(output), `"status": "error"`)
	assert.Contains(t, string(output), "1 of 2 resumes failed")
}
