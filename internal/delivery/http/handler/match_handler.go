package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Get("", h.GetMatches)
	grp.Post("/compute", h.ComputeMatches)
}

type computeMatchesRequest struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Limit       int    `json:"limit"`
	Filters     struct {
		ExperienceLevel string `json:"experience_level"`
		Location        string `json:"location"`
		JobCategory     string `json:"job_category"`
	} `json:"filters"`
}

func (h *MatchHandler) ComputeMatches(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := c.Locals(middleware.CtxRoleKey).(string)

	var req computeMatchesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// Candidates always score themselves; employers and admins must name the
	// candidate explicitly.
	candidateID := userID
	if role != jwt.RoleCandidate {
		parsed, err := uuid.Parse(req.CandidateID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate_id", nil, err)
		}
		candidateID = parsed
	}

	var jobID uuid.UUID
	if req.JobID != "" {
		parsed, err := uuid.Parse(req.JobID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_id", nil, err)
		}
		jobID = parsed
	}

	res, err := h.uc.ComputeMatches(c.Context(), usecase.ComputeMatchesParams{
		CandidateID: candidateID,
		JobID:       jobID,
		Limit:       req.Limit,
		Filters: usecase.MatchFilters{
			ExperienceLevel: req.Filters.ExperienceLevel,
			Location:        req.Filters.Location,
			JobCategory:     req.Filters.JobCategory,
		},
	})
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageMatchesComputed, toComputeMatchesResponse(res))
}

// GetMatches serves the cached view of a candidate's matches, recomputing
// only when no cached response or persisted pair row exists.
func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := c.Locals(middleware.CtxRoleKey).(string)

	candidateID := userID
	if role != jwt.RoleCandidate {
		parsed, err := uuid.Parse(c.Query("candidate_id"))
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate_id", nil, err)
		}
		candidateID = parsed
	}

	var jobID uuid.UUID
	if q := c.Query("job_id"); q != "" {
		parsed, err := uuid.Parse(q)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_id", nil, err)
		}
		jobID = parsed
	}

	res, err := h.uc.GetMatches(c.Context(), usecase.ComputeMatchesParams{
		CandidateID: candidateID,
		JobID:       jobID,
		Limit:       queryInt(c, "limit", 0),
	})
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageMatchesRetrieved, toComputeMatchesResponse(res))
}

func toComputeMatchesResponse(res usecase.ComputeMatchesResult) dto.ComputeMatchesResponse {
	out := dto.ComputeMatchesResponse{
		Matches:           make([]dto.MatchScoreResponse, 0, len(res.Matches)),
		TotalJobsAnalyzed: res.TotalJobsAnalyzed,
		CandidateName:     res.CandidateName,
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, dto.NewMatchScoreResponse(m))
	}
	return out
}

func mapMatchingError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
