package dto

import (
	"talent-match/internal/domain/scoring"

	"github.com/google/uuid"
)

type MatchScoreResponse struct {
	JobID              uuid.UUID         `json:"job_id"`
	JobTitle           string            `json:"job_title"`
	Company            string            `json:"company"`
	Location           string            `json:"location"`
	MatchScore         float64           `json:"match_score"`
	HardSkillsScore    float64           `json:"hard_skills_score"`
	SoftSkillsScore    float64           `json:"soft_skills_score"`
	ExperienceScore    float64           `json:"experience_score"`
	CommunicationScore float64           `json:"communication_score"`
	RoleAlignmentScore float64           `json:"role_alignment_score"`
	ScoreBreakdown     scoring.Breakdown `json:"score_breakdown"`
}

type ComputeMatchesResponse struct {
	Matches           []MatchScoreResponse `json:"matches"`
	TotalJobsAnalyzed int                  `json:"total_jobs_analyzed"`
	CandidateName     string               `json:"candidate_name"`
}

func NewMatchScoreResponse(s scoring.MatchScore) MatchScoreResponse {
	return MatchScoreResponse{
		JobID:              s.JobID,
		JobTitle:           s.JobTitle,
		Company:            s.Company,
		Location:           s.Location,
		MatchScore:         s.MatchScore,
		HardSkillsScore:    s.HardSkillsScore,
		SoftSkillsScore:    s.SoftSkillsScore,
		ExperienceScore:    s.ExperienceScore,
		CommunicationScore: s.CommunicationScore,
		RoleAlignmentScore: s.RoleAlignmentScore,
		ScoreBreakdown:     s.Breakdown,
	}
}
