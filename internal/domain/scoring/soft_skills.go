package scoring

import "math"

const softSkillMandatoryPenalty = 10.0

type softSkillsResult struct {
	score            float64
	matched          []string
	missingMandatory []string
}

// scoreSoftSkills mirrors the hard-skill scorer without the per-skill
// experience bonus (soft skills carry no years) and with a lighter penalty
// for missing mandatory requirements. There is no legacy fallback: an empty
// requirement list scores 100.
func scoreSoftSkills(m SkillMatcher, skills []SoftSkill, required []SkillRequirement) softSkillsResult {
	res := softSkillsResult{
		matched:          make([]string, 0, len(required)),
		missingMandatory: make([]string, 0),
	}

	if len(required) == 0 {
		res.score = 100
		return res
	}

	var totalWeight, achievedWeight, penalty float64

	for _, req := range required {
		weight := req.Weight
		if weight <= 0 {
			weight = 1
		}
		totalWeight += weight

		cs, ok := findSoftSkill(m, skills, req.Skill)
		if ok {
			achievedWeight += weight * ProficiencyWeight(cs.ProficiencyLevel, DefaultSoftProficiency)
			res.matched = append(res.matched, req.Skill)
			continue
		}

		if req.Mandatory {
			penalty += softSkillMandatoryPenalty
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

func findSoftSkill(m SkillMatcher, skills []SoftSkill, required string) (SoftSkill, bool) {
	for _, cs := range skills {
		if m.Match(cs.Name, required) {
			return cs, true
		}
	}
	return SoftSkill{}, false
}
