// Package match implements skills normalization and opportunity matching.
//
// Skill lists arrive from the backend in several raw shapes: a proper JSON
// array of strings, a single comma-separated string, and occasionally a
// JSON-encoded string of an array. DecodeSkills is the single boundary where
// those shapes are interpreted; the rest of the client only ever sees a
// normalized SkillSet.
package match

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is a set of lower-cased, trimmed skill names.
type SkillSet map[string]struct{}

// DecodeSkills converts any raw skills representation into a SkillSet.
// Unrecognized shapes degrade to an empty set rather than failing.
func DecodeSkills(raw any) SkillSet {
	set := SkillSet{}

	switch v := raw.(type) {
	case nil:
		return set
	case []string:
		for _, s := range v {
			set.add(s)
		}
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				set.add(s)
			}
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") {
			// JSON-encoded array smuggled inside a string
			var arr []any
			if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
				return DecodeSkills(arr)
			}
		}
		for _, s := range strings.Split(v, ",") {
			set.add(s)
		}
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err == nil {
			return DecodeSkills(decoded)
		}
	}

	return set
}

func (s SkillSet) add(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill != "" {
		s[skill] = struct{}{}
	}
}

// Contains reports whether the normalized form of skill is in the set.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Intersects reports whether the two sets share at least one skill.
func (s SkillSet) Intersects(other SkillSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for skill := range small {
		if _, ok := large[skill]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int { return len(s) }

// Sorted returns the skills in lexical order, for stable display.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
