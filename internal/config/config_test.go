package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"job_url": "https://example.com/jobs/123",
		"api_key": "test-key",
		"verbose": true,
		"concurrency": 8
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/123", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeTempConfig(t, "{not json")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateMutuallyExclusive(t *testing.T) {
	jobPath := writeTempConfig(t, "Senior Engineer")

	cfg := &Config{Job: jobPath, JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateBadURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidateConcurrencyRange(t *testing.T) {
	cfg := &Config{Concurrency: 500}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Concurrency: 8}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-flags"}
	defaults := Config{APIKey: "from-file", EmbeddingModel: "text-embedding-004"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "from-flags", merged.APIKey)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
	assert.Equal(t, 4, merged.Concurrency)
}
