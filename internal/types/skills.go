package types

import (
	"sort"
	"strings"
	"unicode"
)

// NewSkillSet lowercases and trims a skill list into a set. Skill comparison
// is case-insensitive everywhere; the set form is the comparison currency.
func NewSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// SortedSkills returns the set's members title-cased and sorted, the canonical
// output form for skill names.
func SortedSkills(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, TitleCase(s))
	}
	sort.Strings(out)
	return out
}

// TitleCase uppercases the first letter of every word and lowercases the rest
// ("aws" -> "Aws", "machine learning" -> "Machine Learning"). Any non-letter
// starts a new word.
func TitleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}
