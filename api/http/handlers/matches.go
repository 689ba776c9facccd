package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumescanner/resume-match/api/http/presenter"
	"github.com/resumescanner/resume-match/pkg/job"
	"github.com/resumescanner/resume-match/pkg/match"
	"github.com/resumescanner/resume-match/pkg/resume"
)

type MatchesHandler struct {
	uc match.UseCase
}

func NewMatchesHandler(uc match.UseCase) *MatchesHandler { return &MatchesHandler{uc: uc} }

type createMatchRequest struct {
	ResumeID string `json:"resumeId"`
	JobID    string `json:"jobId"`
}

// Create scores a resume against a job posting.
// @Summary Score a resume against a job
// @Tags    matches
// @Accept  json
// @Produce json
// @Param   input body createMatchRequest true "resumeId + jobId pair"
// @Security BearerAuth
// @Success 201 {object} match.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /matches [post]
func (h *MatchesHandler) Create(c *fiber.Ctx) error {
	var req createMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resumeId")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid jobId")
	}
	userIDStr, _ := c.Locals("userId").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}

	out, err := h.uc.Create(c.Context(), userID, resumeID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNotFound), errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, match.ErrResumeNotReady):
			return presenter.Error(c, http.StatusConflict, err.Error())
		case errors.Is(err, match.ErrJobUnavailable):
			return presenter.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to score match")
		}
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns one match result by id.
// @Summary Get a match result
// @Tags    matches
// @Produce json
// @Param   id path string true "Match ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} match.Result
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /matches/{id} [get]
func (h *MatchesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "match result not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load match result")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// History returns the caller's match results, newest first.
// @Summary Match history
// @Tags    matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} match.Result
// @Router  /matches [get]
func (h *MatchesHandler) History(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.History(c.Context(), userID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list match history")
	}
	if items == nil {
		items = []match.Result{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}
