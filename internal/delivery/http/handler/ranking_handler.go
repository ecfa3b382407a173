package handler

import (
	"errors"
	"strconv"
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/candidates", h.RankCandidates)
}

func (h *RankingHandler) RankCandidates(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := queryInt(c, "limit", 0)
	minScore := queryFloat(c, "min_score", usecase.DefaultMinScore)

	res, err := h.uc.RankCandidates(c.Context(), usecase.RankCandidatesParams{
		JobID:      jobID,
		EmployerID: employerID,
		Limit:      limit,
		MinScore:   minScore,
	})
	if err != nil {
		return mapRankingError(err)
	}

	out := dto.RankCandidatesResponse{
		Candidates:        make([]dto.RankedCandidateResponse, 0, len(res.Candidates)),
		TotalAnalyzed:     res.TotalAnalyzed,
		TotalQualified:    res.TotalQualified,
		JobTitle:          res.JobTitle,
		MinScoreThreshold: res.MinScoreThreshold,
	}
	for _, rc := range res.Candidates {
		out.Candidates = append(out.Candidates, dto.RankedCandidateResponse{
			CandidateID:           rc.Profile.UserID,
			FullName:              rc.Profile.FullName,
			Email:                 rc.Profile.Email,
			Location:              rc.Profile.Location,
			Designation:           rc.Profile.Designation,
			YearsOfExperience:     rc.Profile.YearsOfExperience,
			AvatarURL:             rc.Profile.AvatarURL,
			OverallCandidateScore: rc.Profile.OverallCandidateScore,
			MatchScore:            rc.Score.MatchScore,
			HardSkillsScore:       rc.Score.HardSkillsScore,
			SoftSkillsScore:       rc.Score.SoftSkillsScore,
			ExperienceScore:       rc.Score.ExperienceScore,
			CommunicationScore:    rc.Score.CommunicationScore,
			RoleAlignmentScore:    rc.Score.RoleAlignmentScore,
			ScoreBreakdown:        rc.Score.Breakdown,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageCandidatesRanked, out)
}

func mapRankingError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Job not found or access denied", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func queryFloat(c fiber.Ctx, key string, fallback float64) float64 {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
