package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateProfile is the read-only projection of a candidate the scoring
// engine consumes. Profiles and skills are owned and mutated by the external
// profile-management subsystem; this service never writes them.
type CandidateProfile struct {
	UserID                uuid.UUID
	FullName              string
	Email                 string
	Location              string
	Designation           string
	AvatarURL             string
	YearsOfExperience     int
	NumberOfCompanies     int
	ProjectsHandled       int
	DesiredRole           string
	PreferredDomain       string
	KnowledgeScore        float64
	CommunicationScore    float64
	BehavioralScore       float64
	OverallCandidateScore float64
}

type CandidateHardSkill struct {
	SkillName        string
	ProficiencyLevel string
	YearsExperience  float64
}

type CandidateSoftSkill struct {
	SkillName        string
	ProficiencyLevel string
}

type CandidateRepository interface {
	FindProfileByID(ctx context.Context, candidateID uuid.UUID) (CandidateProfile, error)
	FindHardSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateHardSkill, error)
	FindSoftSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSoftSkill, error)
	ListCandidatePool(ctx context.Context) ([]CandidateProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateProfileColumns = `user_id, COALESCE(full_name, ''), COALESCE(email, ''),
	 COALESCE(location, ''), COALESCE(designation, ''), COALESCE(avatar_url, ''),
	 COALESCE(years_of_experience, 0), COALESCE(number_of_companies, 0), COALESCE(projects_handled, 0),
	 COALESCE(desired_role, ''), COALESCE(preferred_domain, ''),
	 COALESCE(knowledge_score, 0), COALESCE(communication_score, 0), COALESCE(behavioral_score, 0),
	 COALESCE(overall_candidate_score, 0)`

func scanCandidateProfile(row database.Row, p *CandidateProfile) error {
	return row.Scan(
		&p.UserID, &p.FullName, &p.Email,
		&p.Location, &p.Designation, &p.AvatarURL,
		&p.YearsOfExperience, &p.NumberOfCompanies, &p.ProjectsHandled,
		&p.DesiredRole, &p.PreferredDomain,
		&p.KnowledgeScore, &p.CommunicationScore, &p.BehavioralScore,
		&p.OverallCandidateScore,
	)
}

func (r *PostgresCandidateRepository) FindProfileByID(ctx context.Context, candidateID uuid.UUID) (CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateProfileColumns+`
		 FROM profiles
		 WHERE user_id = $1`,
		candidateID,
	)

	var p CandidateProfile
	if err := scanCandidateProfile(row, &p); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return CandidateProfile{}, ErrCandidateNotFound
		}
		return CandidateProfile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) FindHardSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateHardSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(skill_name, ''), COALESCE(proficiency_level, ''), COALESCE(years_experience, 0)
		 FROM candidate_skills
		 WHERE candidate_id = $1
		 ORDER BY skill_name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateHardSkill, 0)
	for rows.Next() {
		var s CandidateHardSkill
		if err := rows.Scan(&s.SkillName, &s.ProficiencyLevel, &s.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) FindSoftSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSoftSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(skill_name, ''), COALESCE(proficiency_level, '')
		 FROM candidate_soft_skills
		 WHERE candidate_id = $1
		 ORDER BY skill_name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateSoftSkill, 0)
	for rows.Next() {
		var s CandidateSoftSkill
		if err := rows.Scan(&s.SkillName, &s.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) ListCandidatePool(ctx context.Context) ([]CandidateProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateProfileColumns+`
		 FROM profiles
		 WHERE role = 'candidate'
		 ORDER BY user_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateProfile, 0)
	for rows.Next() {
		var p CandidateProfile
		if err := rows.Scan(
			&p.UserID, &p.FullName, &p.Email,
			&p.Location, &p.Designation, &p.AvatarURL,
			&p.YearsOfExperience, &p.NumberOfCompanies, &p.ProjectsHandled,
			&p.DesiredRole, &p.PreferredDomain,
			&p.KnowledgeScore, &p.CommunicationScore, &p.BehavioralScore,
			&p.OverallCandidateScore,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
