package scoring

import (
	"fmt"
	"math"
)

// Engine computes the deterministic 0-100 match score between one candidate
// and one job. It is pure and stateless; a single Engine is safe for
// concurrent use.
type Engine struct {
	weights Weights
	matcher SkillMatcher
}

func NewEngine(weights Weights, matcher SkillMatcher) *Engine {
	if weights.isZero() {
		weights = DefaultWeights()
	}
	if matcher == nil {
		matcher = FuzzyMatcher{}
	}
	return &Engine{weights: weights, matcher: matcher}
}

// Score runs the five component scorers and the preferred-skills bonus, then
// aggregates via the weight table. Component scores are not clamped (hard
// skills can exceed 100 through the experience bonus, experience can reach
// 110 before its flat bonuses); only the final total is clamped to [0,100],
// after the preferred-skills bonus is added.
func (e *Engine) Score(c Candidate, j Job) MatchScore {
	hard := scoreHardSkills(e.matcher, c.HardSkills, j.RequiredHardSkills, j.LegacySkills)
	soft := scoreSoftSkills(e.matcher, c.SoftSkills, j.RequiredSoftSkills)
	experience := scoreExperience(c, j)
	communication := scoreCommunication(c)
	role := scoreRoleAlignment(c, j)
	preferred := preferredSkillsBonus(e.matcher, c.HardSkills, j.PreferredSkills)

	weighted := hard.score*e.weights.HardSkills +
		soft.score*e.weights.SoftSkills +
		experience.score*e.weights.Experience +
		communication*e.weights.Communication +
		role.score*e.weights.RoleAlignment

	total := clamp(weighted+preferred.bonus, 0, 100)

	return MatchScore{
		JobID:              j.ID,
		CandidateID:        c.ID,
		JobTitle:           j.Title,
		Company:            j.Company,
		Location:           j.Location,
		MatchScore:         round2(total),
		HardSkillsScore:    round2(hard.score),
		SoftSkillsScore:    round2(soft.score),
		ExperienceScore:    round2(experience.score),
		CommunicationScore: round2(communication),
		RoleAlignmentScore: round2(role.score),
		Breakdown:          assembleBreakdown(hard, soft, experience, role, preferred),
	}
}

func assembleBreakdown(hard hardSkillsResult, soft softSkillsResult, experience experienceResult, role roleAlignmentResult, preferred preferredBonusResult) Breakdown {
	penalties := make([]string, 0, 3)
	if n := len(hard.missingMandatory); n > 0 {
		penalties = append(penalties, fmt.Sprintf("Missing %d mandatory hard skills", n))
	}
	if n := len(soft.missingMandatory); n > 0 {
		penalties = append(penalties, fmt.Sprintf("Missing %d mandatory soft skills", n))
	}
	if experience.gap > 0 {
		penalties = append(penalties, fmt.Sprintf("%d years experience gap", experience.gap))
	}

	bonuses := make([]string, 0, 3)
	if n := len(preferred.matched); n > 0 {
		bonuses = append(bonuses, fmt.Sprintf("%d preferred skills matched", n))
	}
	bonuses = append(bonuses, role.bonuses...)

	return Breakdown{
		MatchedHardSkills:          hard.matched,
		MissingMandatoryHardSkills: hard.missingMandatory,
		MatchedSoftSkills:          soft.matched,
		MissingMandatorySoftSkills: soft.missingMandatory,
		MatchedPreferredSkills:     preferred.matched,
		ExperienceGap:              experience.gap,
		PenaltiesApplied:           penalties,
		BonusesApplied:             bonuses,
	}
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
