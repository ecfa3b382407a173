package scoring

import (
	"math"
	"strings"
)

const (
	roleAlignmentBase        = 50.0
	desiredRoleBonus         = 30.0
	preferredDomainBonus     = 20.0
	desiredRoleBonusText     = "Desired role matches job title"
	preferredDomainBonusText = "Preferred domain matches job domain"
)

type roleAlignmentResult struct {
	score   float64
	bonuses []string
}

// scoreRoleAlignment starts from a neutral base and awards two independent
// bonuses: desired role cross-containing the job title, and preferred domain
// appearing in the job description.
func scoreRoleAlignment(c Candidate, j Job) roleAlignmentResult {
	score := roleAlignmentBase
	bonuses := make([]string, 0, 2)

	desired := strings.ToLower(strings.TrimSpace(c.DesiredRole))
	title := strings.ToLower(strings.TrimSpace(j.Title))
	if desired != "" && title != "" &&
		(strings.Contains(desired, title) || strings.Contains(title, desired)) {
		score += desiredRoleBonus
		bonuses = append(bonuses, desiredRoleBonusText)
	}

	domain := strings.ToLower(strings.TrimSpace(c.PreferredDomain))
	description := strings.ToLower(j.Description)
	if domain != "" && description != "" && strings.Contains(description, domain) {
		score += preferredDomainBonus
		bonuses = append(bonuses, preferredDomainBonusText)
	}

	return roleAlignmentResult{score: math.Min(100, score), bonuses: bonuses}
}
