package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"talent-match/internal/domain/scoring"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"
	"talent-match/internal/worker"
	"talent-match/internal/ws"

	"github.com/google/uuid"
)

const (
	defaultMatchLimit = 10
	maxMatchLimit     = 50
)

type MatchFilters struct {
	ExperienceLevel string
	Location        string
	JobCategory     string
}

type ComputeMatchesParams struct {
	CandidateID uuid.UUID
	// JobID restricts scoring to a single posting when set.
	JobID   uuid.UUID
	Limit   int
	Filters MatchFilters
}

type ComputeMatchesResult struct {
	Matches           []scoring.MatchScore
	TotalJobsAnalyzed int
	CandidateName     string
}

type MatchingUsecase interface {
	ComputeMatches(ctx context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error)
	GetMatches(ctx context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error)
}

type Matching struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	matches    repository.MatchRepository
	engine     *scoring.Engine
	responses  *cache.Redis
	logger     *log.Logger
	workers    int
}

func NewMatchingUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	engine *scoring.Engine,
	responses *cache.Redis,
	logger *log.Logger,
	workers int,
) *Matching {
	if engine == nil {
		engine = scoring.NewEngine(scoring.DefaultWeights(), nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = 8
	}
	return &Matching{
		candidates: candidates,
		jobs:       jobs,
		matches:    matches,
		engine:     engine,
		responses:  responses,
		logger:     logger,
		workers:    workers,
	}
}

// ComputeMatches scores one candidate against the filtered active-job set,
// sorts descending, truncates, and persists one cached match row per result.
// Zero surviving jobs is a success with zero matches, not an error.
func (u *Matching) ComputeMatches(ctx context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error) {
	if params.CandidateID == uuid.Nil {
		return ComputeMatchesResult{}, ErrCandidateNotFound
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultMatchLimit
	}
	if limit > maxMatchLimit {
		limit = maxMatchLimit
	}

	profile, err := u.candidates.FindProfileByID(ctx, params.CandidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ComputeMatchesResult{}, ErrCandidateNotFound
		}
		return ComputeMatchesResult{}, ErrInternal
	}

	candidate := u.loadCandidate(ctx, profile)

	jobs, err := u.jobs.ListActive(ctx, repository.JobFilter{
		JobID:           params.JobID,
		ExperienceLevel: params.Filters.ExperienceLevel,
		Location:        params.Filters.Location,
		JobCategory:     params.Filters.JobCategory,
	})
	if err != nil {
		return ComputeMatchesResult{}, ErrInternal
	}

	result := ComputeMatchesResult{
		Matches:           make([]scoring.MatchScore, 0, len(jobs)),
		TotalJobsAnalyzed: len(jobs),
		CandidateName:     profile.FullName,
	}
	if len(jobs) == 0 {
		return result, nil
	}

	scores, err := u.scoreJobs(ctx, candidate, jobs)
	if err != nil {
		return ComputeMatchesResult{}, err
	}

	// Descending by score; ascending job id breaks ties so rankings are
	// deterministic across runs.
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].MatchScore != scores[j].MatchScore {
			return scores[i].MatchScore > scores[j].MatchScore
		}
		return scores[i].JobID.String() < scores[j].JobID.String()
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	result.Matches = scores

	u.persistMatches(ctx, params.CandidateID, scores)
	u.cacheResponse(ctx, params, result)
	ws.NotifyMatchesUpdated(params.CandidateID.String())

	return result, nil
}

// GetMatches serves a candidate's current matches without forcing a fresh
// computation: the redis response hint first, then the persisted match row
// when the lookup is scoped to a single job, then a full recompute.
func (u *Matching) GetMatches(ctx context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error) {
	if params.CandidateID == uuid.Nil {
		return ComputeMatchesResult{}, ErrCandidateNotFound
	}

	if u.responses != nil {
		scope := ""
		if params.JobID != uuid.Nil {
			scope = params.JobID.String()
		}
		key := cache.MatchesKey(params.CandidateID.String(), scope)

		var cached ComputeMatchesResult
		hit, err := u.responses.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("Match lookup | response cache read failed key=%s err=%v", key, err)
		}
		if hit {
			return cached, nil
		}
	}

	if params.JobID != uuid.Nil {
		if res, ok := u.lastKnownMatch(ctx, params.CandidateID, params.JobID); ok {
			return res, nil
		}
	}

	return u.ComputeMatches(ctx, params)
}

// lastKnownMatch rebuilds a single-pair response from the persisted match
// row. Display fields come from the live profile and job; a missing row
// reports false so the caller falls through to a recompute.
func (u *Matching) lastKnownMatch(ctx context.Context, candidateID, jobID uuid.UUID) (ComputeMatchesResult, bool) {
	row, err := u.matches.FindByPair(ctx, candidateID, jobID)
	if err != nil {
		if !errors.Is(err, repository.ErrMatchNotFound) {
			u.logger.Printf("Match lookup | cached row read failed candidate=%s job=%s err=%v", candidateID, jobID, err)
		}
		return ComputeMatchesResult{}, false
	}

	var breakdown scoring.Breakdown
	if len(row.ScoreBreakdown) > 0 {
		if err := json.Unmarshal(row.ScoreBreakdown, &breakdown); err != nil {
			u.logger.Printf("Match lookup | breakdown decode failed candidate=%s job=%s err=%v", candidateID, jobID, err)
		}
	}

	result := ComputeMatchesResult{
		Matches: []scoring.MatchScore{{
			JobID:              row.JobID,
			CandidateID:        row.CandidateID,
			MatchScore:         row.MatchScore,
			HardSkillsScore:    row.HardSkillsScore,
			SoftSkillsScore:    row.SoftSkillsScore,
			ExperienceScore:    row.ExperienceScore,
			CommunicationScore: row.CommunicationScore,
			Breakdown:          breakdown,
		}},
		TotalJobsAnalyzed: 1,
	}

	if profile, err := u.candidates.FindProfileByID(ctx, candidateID); err == nil {
		result.CandidateName = profile.FullName
	}
	if job, err := u.jobs.FindByID(ctx, jobID); err == nil {
		result.Matches[0].JobTitle = job.Title
		result.Matches[0].Company = job.Company
		result.Matches[0].Location = job.Location
	}

	return result, true
}

// loadCandidate assembles the engine input. Skill fetch failures degrade to
// empty skill lists rather than failing the whole computation.
func (u *Matching) loadCandidate(ctx context.Context, profile repository.CandidateProfile) scoring.Candidate {
	c := scoring.Candidate{
		ID:                 profile.UserID,
		FullName:           profile.FullName,
		YearsOfExperience:  profile.YearsOfExperience,
		NumberOfCompanies:  profile.NumberOfCompanies,
		ProjectsHandled:    profile.ProjectsHandled,
		DesiredRole:        profile.DesiredRole,
		PreferredDomain:    profile.PreferredDomain,
		KnowledgeScore:     profile.KnowledgeScore,
		CommunicationScore: profile.CommunicationScore,
		BehavioralScore:    profile.BehavioralScore,
	}

	hard, err := u.candidates.FindHardSkills(ctx, profile.UserID)
	if err != nil {
		u.logger.Printf("Match compute | hard skill load failed candidate=%s err=%v", profile.UserID, err)
	}
	for _, s := range hard {
		c.HardSkills = append(c.HardSkills, scoring.HardSkill{
			Name:             s.SkillName,
			ProficiencyLevel: s.ProficiencyLevel,
			YearsExperience:  s.YearsExperience,
		})
	}

	soft, err := u.candidates.FindSoftSkills(ctx, profile.UserID)
	if err != nil {
		u.logger.Printf("Match compute | soft skill load failed candidate=%s err=%v", profile.UserID, err)
	}
	for _, s := range soft {
		c.SoftSkills = append(c.SoftSkills, scoring.SoftSkill{
			Name:             s.SkillName,
			ProficiencyLevel: s.ProficiencyLevel,
		})
	}

	return c
}

// scoreJobs fans the per-job computations out over a bounded pool. A panic in
// one job's pass skips that job and leaves the rest of the batch intact.
func (u *Matching) scoreJobs(ctx context.Context, candidate scoring.Candidate, jobs []repository.Job) ([]scoring.MatchScore, error) {
	var mu sync.Mutex
	scores := make([]scoring.MatchScore, 0, len(jobs))

	pool := worker.NewPool(u.workers, len(jobs))
	results := pool.Run(ctx)

	for _, job := range jobs {
		j := job
		pool.Submit(func(taskCtx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("scoring panic for job %s: %v", j.ID, r)
				}
			}()

			score := u.engine.Score(candidate, toScoringJob(j))
			mu.Lock()
			scores = append(scores, score)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			u.logger.Printf("Match compute | job skipped err=%v", res.Err)
		}
	}

	// Cancellation discards partial results; completed cache rows from a
	// previous run stay valid either way.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// persistMatches upserts one cached row per produced match. Writes are
// best-effort: a failed pair is logged and must not abort the others or the
// response.
func (u *Matching) persistMatches(ctx context.Context, candidateID uuid.UUID, scores []scoring.MatchScore) {
	for _, s := range scores {
		breakdown, err := json.Marshal(s.Breakdown)
		if err != nil {
			u.logger.Printf("Match persist | breakdown marshal failed candidate=%s job=%s err=%v", candidateID, s.JobID, err)
			continue
		}

		err = u.matches.Upsert(ctx, repository.CachedMatch{
			CandidateID:        candidateID,
			JobID:              s.JobID,
			MatchScore:         s.MatchScore,
			HardSkillsScore:    s.HardSkillsScore,
			SoftSkillsScore:    s.SoftSkillsScore,
			ExperienceScore:    s.ExperienceScore,
			CommunicationScore: s.CommunicationScore,
			ScoreBreakdown:     breakdown,
		})
		if err != nil {
			u.logger.Printf("Match persist | cache write failed candidate=%s job=%s err=%v", candidateID, s.JobID, err)
		}
	}
}

// cacheResponse replaces every cached scope for the candidate with the fresh
// result: a recompute supersedes older entries regardless of job filter.
func (u *Matching) cacheResponse(ctx context.Context, params ComputeMatchesParams, result ComputeMatchesResult) {
	if u.responses == nil {
		return
	}
	if err := u.responses.InvalidateCandidateMatches(ctx, params.CandidateID.String()); err != nil {
		u.logger.Printf("Match compute | response cache invalidate failed candidate=%s err=%v", params.CandidateID, err)
	}
	scope := ""
	if params.JobID != uuid.Nil {
		scope = params.JobID.String()
	}
	key := cache.MatchesKey(params.CandidateID.String(), scope)
	if err := u.responses.SetJSON(ctx, key, result, 0); err != nil {
		u.logger.Printf("Match compute | response cache write failed key=%s err=%v", key, err)
	}
}

func toScoringJob(j repository.Job) scoring.Job {
	reqHard := make([]scoring.SkillRequirement, 0, len(j.RequiredHardSkills))
	for _, r := range j.RequiredHardSkills {
		reqHard = append(reqHard, scoring.SkillRequirement{Skill: r.Skill, Weight: r.Weight, Mandatory: r.Mandatory})
	}
	reqSoft := make([]scoring.SkillRequirement, 0, len(j.RequiredSoftSkills))
	for _, r := range j.RequiredSoftSkills {
		reqSoft = append(reqSoft, scoring.SkillRequirement{Skill: r.Skill, Weight: r.Weight, Mandatory: r.Mandatory})
	}

	return scoring.Job{
		ID:                     j.ID,
		EmployerID:             j.EmployerID,
		Title:                  j.Title,
		Company:                j.Company,
		Location:               j.Location,
		Description:            j.Description,
		MinimumYearsExperience: j.MinimumYearsExperience,
		LegacySkills:           j.LegacySkills,
		RequiredHardSkills:     reqHard,
		RequiredSoftSkills:     reqSoft,
		PreferredSkills:        j.PreferredSkills,
	}
}
