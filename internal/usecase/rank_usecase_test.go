package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockMatching struct {
	scores map[uuid.UUID]float64
	errs   map[uuid.UUID]error
}

func (m mockMatching) ComputeMatches(_ context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error) {
	if err, ok := m.errs[params.CandidateID]; ok {
		return ComputeMatchesResult{}, err
	}
	score, ok := m.scores[params.CandidateID]
	if !ok {
		return ComputeMatchesResult{TotalJobsAnalyzed: 0}, nil
	}
	return ComputeMatchesResult{
		Matches: []scoring.MatchScore{{
			JobID:      params.JobID,
			MatchScore: score,
		}},
		TotalJobsAnalyzed: 1,
	}, nil
}

func (m mockMatching) GetMatches(ctx context.Context, params ComputeMatchesParams) (ComputeMatchesResult, error) {
	return m.ComputeMatches(ctx, params)
}

func poolOf(ids ...uuid.UUID) []repository.CandidateProfile {
	out := make([]repository.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, repository.CandidateProfile{UserID: id, FullName: "Candidate " + id.String()[:8]})
	}
	return out
}

func TestRankCandidates_NilEmployer(t *testing.T) {
	uc := NewRankingUsecase(mockJobRepo{}, mockCandidateRepo{}, mockMatching{}, nil, 2)

	_, err := uc.RankCandidates(context.Background(), RankCandidatesParams{JobID: uuid.New()})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRankCandidates_JobNotFound(t *testing.T) {
	uc := NewRankingUsecase(
		mockJobRepo{findErr: repository.ErrJobNotFound},
		mockCandidateRepo{}, mockMatching{}, nil, 2,
	)

	_, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      uuid.New(),
		EmployerID: uuid.New(),
	})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRankCandidates_ForbiddenForOtherEmployer(t *testing.T) {
	jobID := uuid.New()
	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: uuid.New()}},
		mockCandidateRepo{}, mockMatching{}, nil, 2,
	)

	_, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: uuid.New(),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRankCandidates_EmptyPool(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: employerID, Title: "Data Engineer"}},
		mockCandidateRepo{}, mockMatching{}, nil, 2,
	)

	res, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Candidates) != 0 || res.TotalAnalyzed != 0 || res.TotalQualified != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if res.JobTitle != "Data Engineer" {
		t.Fatalf("expected job title, got %q", res.JobTitle)
	}
}

func TestRankCandidates_MinScoreFilterAndOrdering(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	strong := uuid.New()
	middling := uuid.New()
	weak := uuid.New()

	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer"}},
		mockCandidateRepo{pool: poolOf(strong, middling, weak)},
		mockMatching{scores: map[uuid.UUID]float64{strong: 92.5, middling: 61, weak: 24}},
		nil, 2,
	)

	res, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
		MinScore:   50,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalAnalyzed != 3 {
		t.Fatalf("expected 3 analyzed, got %d", res.TotalAnalyzed)
	}
	if res.TotalQualified != 2 {
		t.Fatalf("expected 2 qualified, got %d", res.TotalQualified)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(res.Candidates))
	}
	if res.Candidates[0].Profile.UserID != strong || res.Candidates[1].Profile.UserID != middling {
		t.Fatalf("expected descending score order, got %s then %s",
			res.Candidates[0].Profile.UserID, res.Candidates[1].Profile.UserID)
	}
	if res.MinScoreThreshold != 50 {
		t.Fatalf("expected threshold echoed back, got %v", res.MinScoreThreshold)
	}
}

func TestRankCandidates_TieBreaksOnCandidateID(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	first := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	second := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: employerID}},
		mockCandidateRepo{pool: poolOf(second, first)},
		mockMatching{scores: map[uuid.UUID]float64{first: 75, second: 75}},
		nil, 2,
	)

	res, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(res.Candidates))
	}
	if res.Candidates[0].Profile.UserID != first {
		t.Fatalf("expected lower candidate id first, got %s", res.Candidates[0].Profile.UserID)
	}
}

func TestRankCandidates_FailedCandidateIsSkipped(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	good := uuid.New()
	broken := uuid.New()

	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: employerID}},
		mockCandidateRepo{pool: poolOf(good, broken)},
		mockMatching{
			scores: map[uuid.UUID]float64{good: 88},
			errs:   map[uuid.UUID]error{broken: errors.New("profile corrupted")},
		},
		nil, 2,
	)

	res, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalAnalyzed != 2 {
		t.Fatalf("expected 2 analyzed, got %d", res.TotalAnalyzed)
	}
	if res.TotalQualified != 1 {
		t.Fatalf("expected 1 qualified, got %d", res.TotalQualified)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Profile.UserID != good {
		t.Fatalf("expected only the healthy candidate, got %+v", res.Candidates)
	}
}

func TestRankCandidates_LimitTruncatesAfterCounting(t *testing.T) {
	jobID := uuid.New()
	employerID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	uc := NewRankingUsecase(
		mockJobRepo{job: repository.Job{ID: jobID, EmployerID: employerID}},
		mockCandidateRepo{pool: poolOf(a, b, c)},
		mockMatching{scores: map[uuid.UUID]float64{a: 90, b: 80, c: 70}},
		nil, 2,
	)

	res, err := uc.RankCandidates(context.Background(), RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
		Limit:      2,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalQualified != 3 {
		t.Fatalf("expected 3 qualified before truncation, got %d", res.TotalQualified)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("expected 2 returned, got %d", len(res.Candidates))
	}
	if res.Candidates[0].Profile.UserID != a || res.Candidates[1].Profile.UserID != b {
		t.Fatalf("expected top two by score, got %+v", res.Candidates)
	}
}
