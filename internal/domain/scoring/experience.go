package scoring

import "math"

type experienceResult struct {
	score float64
	gap   int
}

// scoreExperience scores years of experience against the job minimum, with a
// small overqualification bonus when the candidate exceeds it and flat
// bonuses for company diversity and project portfolio either way. An
// under-qualified candidate tops out at 80 points before the flat bonuses.
func scoreExperience(c Candidate, j Job) experienceResult {
	minYears := j.MinimumYearsExperience
	if minYears < 0 {
		minYears = 0
	}
	candidateYears := c.YearsOfExperience
	if candidateYears < 0 {
		candidateYears = 0
	}

	var score float64
	var gap int

	if candidateYears >= minYears {
		score = 100
		if minYears > 0 {
			bonus := math.Min(10, float64(candidateYears-minYears)/float64(minYears)*10)
			score = math.Min(110, score+bonus)
		}
	} else {
		gap = minYears - candidateYears
		score = float64(candidateYears) / float64(minYears) * 80
	}

	companyBonus := math.Min(10, float64(c.NumberOfCompanies)*2)
	if companyBonus < 0 {
		companyBonus = 0
	}
	projectBonus := math.Min(10, float64(c.ProjectsHandled))
	if projectBonus < 0 {
		projectBonus = 0
	}

	return experienceResult{
		score: math.Min(100, score+companyBonus+projectBonus),
		gap:   gap,
	}
}
