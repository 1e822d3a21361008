package models

import (
	"errors"
	"strings"
)

// ErrEmptySkill is returned when a skill name is empty after trimming.
var ErrEmptySkill = errors.New("skill name cannot be empty")

// SkillSet is an insertion-ordered set of skill names. Entries are trimmed
// and unique under case-sensitive exact match; ordering is preserved for
// display only and carries no matching semantics.
type SkillSet []string

// Add appends the trimmed skill to the set. Adding a skill that is already
// present is a no-op, not an error.
func (s SkillSet) Add(skill string) (SkillSet, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return s, ErrEmptySkill
	}
	if s.Contains(skill) {
		return s, nil
	}
	return append(s, skill), nil
}

// Remove deletes the exact-match entry if present. Removing an absent skill
// is a no-op.
func (s SkillSet) Remove(skill string) SkillSet {
	for i, existing := range s {
		if existing == skill {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// Contains reports whether the set holds skill under case-sensitive exact
// match.
func (s SkillSet) Contains(skill string) bool {
	for _, existing := range s {
		if existing == skill {
			return true
		}
	}
	return false
}

// ContainsFold reports whether any entry contains substr case-insensitively.
// This is the matching rule used by the directory search.
func (s SkillSet) ContainsFold(substr string) bool {
	substr = strings.ToLower(substr)
	for _, existing := range s {
		if strings.Contains(strings.ToLower(existing), substr) {
			return true
		}
	}
	return false
}
