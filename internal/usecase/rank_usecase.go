package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"
	"talent-match/internal/worker"

	"github.com/google/uuid"
)

const (
	defaultRankLimit = 20
	maxRankLimit     = 100
	DefaultMinScore  = 50.0
)

type RankCandidatesParams struct {
	JobID      uuid.UUID
	EmployerID uuid.UUID
	Limit      int
	MinScore   float64
}

type RankedCandidate struct {
	Profile repository.CandidateProfile
	Score   scoring.MatchScore
}

type RankCandidatesResult struct {
	Candidates        []RankedCandidate
	TotalAnalyzed     int
	TotalQualified    int
	JobTitle          string
	MinScoreThreshold float64
}

type RankingUsecase interface {
	RankCandidates(ctx context.Context, params RankCandidatesParams) (RankCandidatesResult, error)
}

// Ranking scans the whole candidate pool against one job by calling directly
// into the match orchestrator's core, one in-process invocation per
// candidate, fanned out over a bounded pool.
type Ranking struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	matching   MatchingUsecase
	logger     *log.Logger
	workers    int
}

func NewRankingUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	matching MatchingUsecase,
	logger *log.Logger,
	workers int,
) *Ranking {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = 8
	}
	return &Ranking{
		jobs:       jobs,
		candidates: candidates,
		matching:   matching,
		logger:     logger,
		workers:    workers,
	}
}

// RankCandidates returns the pool's top candidates for one job. Candidates
// whose scoring pass fails are skipped and still count toward TotalAnalyzed;
// no entry below MinScore is ever returned.
func (u *Ranking) RankCandidates(ctx context.Context, params RankCandidatesParams) (RankCandidatesResult, error) {
	if params.EmployerID == uuid.Nil {
		return RankCandidatesResult{}, ErrUnauthorized
	}
	if params.JobID == uuid.Nil {
		return RankCandidatesResult{}, ErrJobNotFound
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultRankLimit
	}
	if limit > maxRankLimit {
		limit = maxRankLimit
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	job, err := u.jobs.FindByID(ctx, params.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return RankCandidatesResult{}, ErrJobNotFound
		}
		return RankCandidatesResult{}, ErrInternal
	}
	if job.EmployerID != params.EmployerID {
		return RankCandidatesResult{}, ErrForbidden
	}

	pool, err := u.candidates.ListCandidatePool(ctx)
	if err != nil {
		return RankCandidatesResult{}, ErrInternal
	}

	result := RankCandidatesResult{
		Candidates:        make([]RankedCandidate, 0, len(pool)),
		TotalAnalyzed:     len(pool),
		JobTitle:          job.Title,
		MinScoreThreshold: minScore,
	}
	if len(pool) == 0 {
		return result, nil
	}

	qualified, err := u.scoreCandidates(ctx, pool, params.JobID, minScore)
	if err != nil {
		return RankCandidatesResult{}, err
	}

	// Descending by score; ascending candidate id breaks ties.
	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].Score.MatchScore != qualified[j].Score.MatchScore {
			return qualified[i].Score.MatchScore > qualified[j].Score.MatchScore
		}
		return qualified[i].Profile.UserID.String() < qualified[j].Profile.UserID.String()
	})

	result.TotalQualified = len(qualified)
	if len(qualified) > limit {
		qualified = qualified[:limit]
	}
	result.Candidates = qualified

	return result, nil
}

func (u *Ranking) scoreCandidates(ctx context.Context, profiles []repository.CandidateProfile, jobID uuid.UUID, minScore float64) ([]RankedCandidate, error) {
	var mu sync.Mutex
	qualified := make([]RankedCandidate, 0, len(profiles))

	pool := worker.NewPool(u.workers, len(profiles))
	results := pool.Run(ctx)

	for _, profile := range profiles {
		p := profile
		pool.Submit(func(taskCtx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("ranking panic for candidate %s: %v", p.UserID, r)
				}
			}()

			res, err := u.matching.ComputeMatches(taskCtx, ComputeMatchesParams{
				CandidateID: p.UserID,
				JobID:       jobID,
				Limit:       1,
			})
			if err != nil {
				return fmt.Errorf("candidate %s: %w", p.UserID, err)
			}
			if len(res.Matches) == 0 {
				return nil
			}

			match := res.Matches[0]
			if match.MatchScore < minScore {
				return nil
			}

			mu.Lock()
			qualified = append(qualified, RankedCandidate{Profile: p, Score: match})
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			// Skip-and-continue: the failed candidate stays in TotalAnalyzed
			// and out of TotalQualified.
			u.logger.Printf("Candidate ranking | candidate skipped err=%v", res.Err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return qualified, nil
}
