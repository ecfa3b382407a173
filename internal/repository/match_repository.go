package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match not found")

// CachedMatch is the persisted projection of a computed match, uniquely keyed
// on (candidate_id, job_id). A write replaces any prior row for the pair:
// last-write-wins, no history, no version column. Readers must treat it as a
// best-effort hint of the most recent computation, never as a source of
// truth.
type CachedMatch struct {
	CandidateID        uuid.UUID
	JobID              uuid.UUID
	MatchScore         float64
	HardSkillsScore    float64
	SoftSkillsScore    float64
	ExperienceScore    float64
	CommunicationScore float64
	ScoreBreakdown     []byte
	MatchedAt          time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, m CachedMatch) error
	FindByPair(ctx context.Context, candidateID, jobID uuid.UUID) (CachedMatch, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m CachedMatch) error {
	if m.CandidateID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_matches (id, candidate_id, job_id, match_score, hard_skills_score,
			soft_skills_score, experience_score, communication_score, score_breakdown, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			hard_skills_score = EXCLUDED.hard_skills_score,
			soft_skills_score = EXCLUDED.soft_skills_score,
			experience_score = EXCLUDED.experience_score,
			communication_score = EXCLUDED.communication_score,
			score_breakdown = EXCLUDED.score_breakdown,
			matched_at = EXCLUDED.matched_at`,
		uuid.New(),
		m.CandidateID,
		m.JobID,
		m.MatchScore,
		m.HardSkillsScore,
		m.SoftSkillsScore,
		m.ExperienceScore,
		m.CommunicationScore,
		m.ScoreBreakdown,
		m.MatchedAt,
	)
	return err
}

func (r *PostgresMatchRepository) FindByPair(ctx context.Context, candidateID, jobID uuid.UUID) (CachedMatch, error) {
	row := r.db.QueryRow(ctx,
		`SELECT candidate_id, job_id, match_score, hard_skills_score, soft_skills_score,
			experience_score, communication_score, score_breakdown, matched_at
		 FROM job_matches
		 WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	)

	var m CachedMatch
	if err := row.Scan(
		&m.CandidateID, &m.JobID, &m.MatchScore, &m.HardSkillsScore, &m.SoftSkillsScore,
		&m.ExperienceScore, &m.CommunicationScore, &m.ScoreBreakdown, &m.MatchedAt,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return CachedMatch{}, ErrMatchNotFound
		}
		return CachedMatch{}, err
	}
	return m, nil
}
