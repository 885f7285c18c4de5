package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSkillsLowercase(t *testing.T) {
	skills := Default().AllSkills()
	require.NotEmpty(t, skills)

	seen := make(map[string]bool)
	for _, skill := range skills {
		assert.Equal(t, skill, strings.ToLower(skill), "skill not lowercase: %q", skill)
		seen[skill] = true
	}
	assert.True(t, seen["python"])
	assert.True(t, seen["kubernetes"])
	assert.True(t, seen["node.js"])
}

func TestOrdinal(t *testing.T) {
	tables := Default()

	assert.Equal(t, 1, tables.Ordinal("Entry-level"))
	assert.Equal(t, 2, tables.Ordinal("Junior"))
	assert.Equal(t, 4, tables.Ordinal("Senior/Lead"))
	assert.Equal(t, 4, tables.Ordinal("Senior"))

	// Unknown labels rank as Mid-level.
	assert.Equal(t, 3, tables.Ordinal("Unknown"))
	assert.Equal(t, 3, tables.Ordinal(""))
}

func TestCategorize(t *testing.T) {
	tables := Default()

	assert.Equal(t, "programming_languages - beginner", tables.Categorize("Python"))
	assert.Equal(t, "web_development - frontend", tables.Categorize("react"))
	assert.Equal(t, "databases - nosql", tables.Categorize("  MongoDB  "))
}

func TestCategorizeFallback(t *testing.T) {
	tables := Default()

	// Not in the tree but recognizable by keyword family.
	assert.Equal(t, "cloud_platforms", tables.Categorize("aws sagemaker studio"))
	assert.Equal(t, "other", tables.Categorize("basket weaving"))
}

func TestResourceLookup(t *testing.T) {
	tables := Default()

	res, ok := tables.Resources.Lookup("Python")
	require.True(t, ok)
	assert.Equal(t, "Beginner", res.Difficulty)
	assert.Equal(t, "2-3 months", res.TimeEstimate)
	assert.NotEmpty(t, res.Courses)

	_, ok = tables.Resources.Lookup("cobol")
	assert.False(t, ok)
}

func TestResponsibilityTopicsCoverFixedOrder(t *testing.T) {
	topics := Default().ResponsibilityTopics

	for _, topic := range []string{
		"design", "database", "api", "testing",
		"security", "performance", "deployment", "collaboration",
	} {
		assert.Contains(t, topics, topic)
	}
}
