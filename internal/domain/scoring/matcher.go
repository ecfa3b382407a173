package scoring

import "strings"

// SkillMatcher decides whether a candidate skill satisfies a required skill.
// The engine takes the strategy as a dependency so exact or token-normalized
// matching can replace the default without touching scorer logic.
type SkillMatcher interface {
	Match(candidateSkill, requiredSkill string) bool
}

// FuzzyMatcher is the default strategy: case-insensitive substring match in
// either direction, so "ReactJS" satisfies "react" and "react" satisfies
// "React Native". Deliberately loose.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(candidateSkill, requiredSkill string) bool {
	cs := strings.ToLower(strings.TrimSpace(candidateSkill))
	rs := strings.ToLower(strings.TrimSpace(requiredSkill))
	if cs == "" || rs == "" {
		return false
	}
	return strings.Contains(cs, rs) || strings.Contains(rs, cs)
}

// ExactMatcher matches on the normalized full skill name only.
type ExactMatcher struct{}

func (ExactMatcher) Match(candidateSkill, requiredSkill string) bool {
	cs := strings.ToLower(strings.TrimSpace(candidateSkill))
	rs := strings.ToLower(strings.TrimSpace(requiredSkill))
	if cs == "" {
		return false
	}
	return cs == rs
}
