package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobSkillRequirement mirrors the JSONB requirement entries stored on the
// jobs row.
type JobSkillRequirement struct {
	Skill     string  `json:"skill"`
	Weight    float64 `json:"weight"`
	Mandatory bool    `json:"mandatory"`
}

type Job struct {
	ID                     uuid.UUID
	EmployerID             uuid.UUID
	Title                  string
	Company                string
	Location               string
	Description            string
	Status                 string
	ExperienceLevel        string
	JobCategory            string
	MinimumYearsExperience int
	LegacySkills           []string
	RequiredHardSkills     []JobSkillRequirement
	RequiredSoftSkills     []JobSkillRequirement
	PreferredSkills        []string
}

// JobFilter narrows the active-job listing. JobID restricts to a single
// posting; ExperienceLevel and JobCategory match exactly, Location matches as
// a case-insensitive substring.
type JobFilter struct {
	JobID           uuid.UUID
	ExperienceLevel string
	Location        string
	JobCategory     string
}

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (Job, error)
	ListActive(ctx context.Context, filter JobFilter) ([]Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, employer_id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	 COALESCE(description, ''), COALESCE(status, ''), COALESCE(experience_level, ''), COALESCE(job_category, ''),
	 COALESCE(minimum_years_experience, 0), COALESCE(skills, '{}'),
	 COALESCE(required_hard_skills, '[]'), COALESCE(required_soft_skills, '[]'), COALESCE(preferred_skills, '{}')`

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`,
		jobID,
	)

	j, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, filter JobFilter) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'active'`
	args := make([]any, 0, 4)

	if filter.JobID != uuid.Nil {
		args = append(args, filter.JobID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	if lvl := strings.TrimSpace(filter.ExperienceLevel); lvl != "" {
		args = append(args, lvl)
		query += fmt.Sprintf(" AND experience_level = $%d", len(args))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if cat := strings.TrimSpace(filter.JobCategory); cat != "" {
		args = append(args, cat)
		query += fmt.Sprintf(" AND job_category = $%d", len(args))
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(scan func(dest ...any) error) (Job, error) {
	var j Job
	var hardRaw, softRaw []byte

	if err := scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.Status, &j.ExperienceLevel, &j.JobCategory,
		&j.MinimumYearsExperience, &j.LegacySkills,
		&hardRaw, &softRaw, &j.PreferredSkills,
	); err != nil {
		return Job{}, err
	}

	if len(hardRaw) > 0 {
		if err := json.Unmarshal(hardRaw, &j.RequiredHardSkills); err != nil {
			return Job{}, fmt.Errorf("decode required_hard_skills for job %s: %w", j.ID, err)
		}
	}
	if len(softRaw) > 0 {
		if err := json.Unmarshal(softRaw, &j.RequiredSoftSkills); err != nil {
			return Job{}, fmt.Errorf("decode required_soft_skills for job %s: %w", j.ID, err)
		}
	}
	return j, nil
}
