package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJobPosting = `Senior Backend Engineer

Requirements
Python and AWS skills are required
5+ years of experience required

Nice to have
Kubernetes experience is a plus
`

func TestStructureJobCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "structure-job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --job or --job-url must be provided")
}

func TestStructureJobCommand_BothFlagsProvided(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(testJobPosting), 0644))

	cmd := exec.Command(binaryPath, "structure-job", "--in", testFile, "--url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestStructureJobCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(testJobPosting), 0644))

	outFile := filepath.Join(tmpDir, "job.json")

	cmd := exec.Command(binaryPath, "structure-job", "--in", testFile, "--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"job_title": "Senior Backend Engineer"`)
	assert.Contains(t, string(content), `"experience_level": "Senior/Lead"`)
}

func TestStructureResumeCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "structure-resume")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
