package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumescanner/resume-match/api/http/presenter"
	"github.com/resumescanner/resume-match/pkg/job"
)

type JobsHandler struct {
	uc       job.UseCase
	validate *validator.Validate
}

func NewJobsHandler(uc job.UseCase) *JobsHandler {
	return &JobsHandler{uc: uc, validate: validator.New()}
}

type jobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company" validate:"required"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	RequiredSkills []string `json:"requiredSkills"`

	ExperienceLevel    string `json:"experienceLevel" validate:"omitempty,oneof=Entry Mid Senior Executive"`
	MinExperienceYears *int   `json:"minExperienceYears" validate:"omitempty,gte=0"`
	MaxExperienceYears *int   `json:"maxExperienceYears" validate:"omitempty,gte=0"`

	MinSalary      *float64 `json:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary      *float64 `json:"maxSalary" validate:"omitempty,gte=0"`
	SalaryCurrency string   `json:"salaryCurrency"`

	Location      string `json:"location"`
	RemoteAllowed bool   `json:"remoteAllowed"`
	JobType       string `json:"jobType" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`

	Benefits       []string `json:"benefits"`
	Qualifications []string `json:"qualifications"`
}

func (r jobRequest) toDomain() job.Job {
	return job.Job{
		Title:              r.Title,
		Company:            r.Company,
		Description:        r.Description,
		Requirements:       r.Requirements,
		RequiredSkills:     r.RequiredSkills,
		ExperienceLevel:    r.ExperienceLevel,
		MinExperienceYears: r.MinExperienceYears,
		MaxExperienceYears: r.MaxExperienceYears,
		MinSalary:          r.MinSalary,
		MaxSalary:          r.MaxSalary,
		SalaryCurrency:     r.SalaryCurrency,
		Location:           r.Location,
		RemoteAllowed:      r.RemoteAllowed,
		JobType:            job.Type(r.JobType),
		Benefits:           r.Benefits,
		Qualifications:     r.Qualifications,
	}
}

// Create adds a posting to the catalog.
// @Summary Create a job posting
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body jobRequest true "Job posting"
// @Security BearerAuth
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	j := req.toDomain()
	userIDStr, _ := c.Locals("userId").(string)
	j.PostedBy, _ = uuid.Parse(userIDStr)

	out, err := h.uc.Create(c.Context(), j)
	if err != nil {
		var verr job.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create job")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns one posting by id.
// @Summary Get a job posting
// @Tags    jobs
// @Produce json
// @Param   id path string true "Job ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load job")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// List returns active postings, newest first.
// @Summary List active job postings
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Router  /jobs [get]
func (h *JobsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.ListActive(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	if items == nil {
		items = []job.Job{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Update replaces a posting's mutable fields.
// @Summary Update a job posting
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "Job ID (UUID)"
// @Param   input body jobRequest true "Job posting"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	j := req.toDomain()
	j.ID = id

	out, err := h.uc.Update(c.Context(), j)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update job")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Delete deactivates a posting.
// @Summary Deactivate a job posting
// @Tags    jobs
// @Param   id path string true "Job ID (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Deactivate(c.Context(), id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to deactivate job")
	}
	return c.SendStatus(http.StatusNoContent)
}
