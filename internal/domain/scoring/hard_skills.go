package scoring

import "math"

const (
	hardSkillMandatoryPenalty = 15.0
	maxSkillExperienceBonus   = 0.2
)

type hardSkillsResult struct {
	score            float64
	matched          []string
	missingMandatory []string
}

// scoreHardSkills scores the candidate's hard skills against the job's
// weighted requirements, falling back to the legacy flat skill list when no
// weighted requirements exist. The result is not clamped above: a matched
// skill's proficiency plus experience bonus can exceed its weight, modeling
// overqualification. Only the final aggregate is clamped.
func scoreHardSkills(m SkillMatcher, skills []HardSkill, required []SkillRequirement, legacy []string) hardSkillsResult {
	res := hardSkillsResult{
		matched:          make([]string, 0, len(required)),
		missingMandatory: make([]string, 0),
	}

	if len(required) == 0 {
		res.score = scoreLegacySkills(m, skills, legacy)
		return res
	}

	var totalWeight, achievedWeight, penalty float64

	for _, req := range required {
		weight := req.Weight
		if weight <= 0 {
			weight = 1
		}
		totalWeight += weight

		cs, ok := findHardSkill(m, skills, req.Skill)
		if ok {
			proficiency := ProficiencyWeight(cs.ProficiencyLevel, DefaultHardProficiency)
			years := cs.YearsExperience
			if years < 0 {
				years = 0
			}
			experienceBonus := math.Min(maxSkillExperienceBonus, years/10*maxSkillExperienceBonus)
			achievedWeight += weight * (proficiency + experienceBonus)
			res.matched = append(res.matched, req.Skill)
			continue
		}

		if req.Mandatory {
			penalty += hardSkillMandatoryPenalty
			res.missingMandatory = append(res.missingMandatory, req.Skill)
		}
	}

	base := 0.0
	if totalWeight > 0 {
		base = achievedWeight / totalWeight * 100
	}
	res.score = math.Max(0, base-penalty)
	return res
}

// scoreLegacySkills handles the unweighted flat skill list. An empty list is
// trivially satisfied.
func scoreLegacySkills(m SkillMatcher, skills []HardSkill, legacy []string) float64 {
	if len(legacy) == 0 {
		return 100
	}

	matched := 0
	for _, req := range legacy {
		if _, ok := findHardSkill(m, skills, req); ok {
			matched++
		}
	}
	return math.Min(100, float64(matched)/float64(len(legacy))*100)
}

func findHardSkill(m SkillMatcher, skills []HardSkill, required string) (HardSkill, bool) {
	for _, cs := range skills {
		if m.Match(cs.Name, required) {
			return cs, true
		}
	}
	return HardSkill{}, false
}
