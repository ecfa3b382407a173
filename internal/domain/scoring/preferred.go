package scoring

import "math"

const (
	preferredSkillPoints   = 2.0
	maxPreferredSkillBonus = 10.0
)

type preferredBonusResult struct {
	bonus   float64
	matched []string
}

// preferredSkillsBonus is additive on top of the weighted sum, never part of
// it. Preferred skills are unweighted and never mandatory.
func preferredSkillsBonus(m SkillMatcher, skills []HardSkill, preferred []string) preferredBonusResult {
	res := preferredBonusResult{matched: make([]string, 0, len(preferred))}

	for _, p := range preferred {
		if _, ok := findHardSkill(m, skills, p); ok {
			res.matched = append(res.matched, p)
		}
	}

	res.bonus = math.Min(maxPreferredSkillBonus, preferredSkillPoints*float64(len(res.matched)))
	return res
}
