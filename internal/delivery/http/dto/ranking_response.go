package dto

import (
	"talent-match/internal/domain/scoring"

	"github.com/google/uuid"
)

type RankedCandidateResponse struct {
	CandidateID           uuid.UUID         `json:"candidate_id"`
	FullName              string            `json:"full_name"`
	Email                 string            `json:"email"`
	Location              string            `json:"location"`
	Designation           string            `json:"designation"`
	YearsOfExperience     int               `json:"years_of_experience"`
	AvatarURL             string            `json:"avatar_url"`
	OverallCandidateScore float64           `json:"overall_candidate_score"`
	MatchScore            float64           `json:"match_score"`
	HardSkillsScore       float64           `json:"hard_skills_score"`
	SoftSkillsScore       float64           `json:"soft_skills_score"`
	ExperienceScore       float64           `json:"experience_score"`
	CommunicationScore    float64           `json:"communication_score"`
	RoleAlignmentScore    float64           `json:"role_alignment_score"`
	ScoreBreakdown        scoring.Breakdown `json:"score_breakdown"`
}

type RankCandidatesResponse struct {
	Candidates        []RankedCandidateResponse `json:"candidates"`
	TotalAnalyzed     int                       `json:"total_analyzed"`
	TotalQualified    int                       `json:"total_qualified"`
	JobTitle          string                    `json:"job_title"`
	MinScoreThreshold float64                   `json:"min_score_threshold"`
}
