package scoring

import "github.com/google/uuid"

type HardSkill struct {
	Name             string
	ProficiencyLevel string
	YearsExperience  float64
}

type SoftSkill struct {
	Name             string
	ProficiencyLevel string
}

type Candidate struct {
	ID                 uuid.UUID
	FullName           string
	YearsOfExperience  int
	NumberOfCompanies  int
	ProjectsHandled    int
	DesiredRole        string
	PreferredDomain    string
	KnowledgeScore     float64
	CommunicationScore float64
	BehavioralScore    float64
	HardSkills         []HardSkill
	SoftSkills         []SoftSkill
}

type SkillRequirement struct {
	Skill     string
	Weight    float64
	Mandatory bool
}

type Job struct {
	ID                     uuid.UUID
	EmployerID             uuid.UUID
	Title                  string
	Company                string
	Location               string
	Description            string
	MinimumYearsExperience int
	// LegacySkills is consulted only when RequiredHardSkills is empty.
	LegacySkills       []string
	RequiredHardSkills []SkillRequirement
	RequiredSoftSkills []SkillRequirement
	PreferredSkills    []string
}

// Breakdown is persisted verbatim as the score_breakdown JSONB column, so the
// field names are part of the external contract.
type Breakdown struct {
	MatchedHardSkills          []string `json:"matched_hard_skills"`
	MissingMandatoryHardSkills []string `json:"missing_mandatory_hard_skills"`
	MatchedSoftSkills          []string `json:"matched_soft_skills"`
	MissingMandatorySoftSkills []string `json:"missing_mandatory_soft_skills"`
	MatchedPreferredSkills     []string `json:"matched_preferred_skills"`
	ExperienceGap              int      `json:"experience_gap"`
	PenaltiesApplied           []string `json:"penalties_applied"`
	BonusesApplied             []string `json:"bonuses_applied"`
}

type MatchScore struct {
	JobID              uuid.UUID
	CandidateID        uuid.UUID
	JobTitle           string
	Company            string
	Location           string
	MatchScore         float64
	HardSkillsScore    float64
	SoftSkillsScore    float64
	ExperienceScore    float64
	CommunicationScore float64
	RoleAlignmentScore float64
	Breakdown          Breakdown
}
