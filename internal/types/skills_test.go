package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSkillSet(t *testing.T) {
	set := NewSkillSet([]string{"Python", "  AWS ", "python", ""})

	assert.Len(t, set, 2)
	assert.True(t, set["python"])
	assert.True(t, set["aws"])
}

func TestSortedSkills(t *testing.T) {
	set := NewSkillSet([]string{"docker", "aws", "machine learning"})
	assert.Equal(t, []string{"Aws", "Docker", "Machine Learning"}, SortedSkills(set))
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aws", "Aws"},
		{"machine learning", "Machine Learning"},
		{"node.js", "Node.Js"},
		{"401k", "401K"},
		{"ui/ux design", "Ui/Ux Design"},
		{"SQL", "Sql"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in), "TitleCase(%q)", tt.in)
	}
}
