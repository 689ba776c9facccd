package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumescanner/resume-match/api/http/presenter"
	"github.com/resumescanner/resume-match/pkg/extract"
	"github.com/resumescanner/resume-match/pkg/resume"
)

type ResumesHandler struct {
	uc resume.UseCase
}

func NewResumesHandler(uc resume.UseCase) *ResumesHandler {
	return &ResumesHandler{uc: uc}
}

// Upload accepts a PDF/DOCX resume, stores it and runs the extraction
// pipeline. The response carries the record in whatever terminal status the
// pipeline reached.
// @Summary Upload a resume
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF or DOCX)"
// @Security BearerAuth
// @Success 201 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, extract.MaxDocumentBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)

	rec, err := h.uc.Upload(c.Context(), resume.UploadInput{
		OwnerID:   ownerID,
		Filename:  fh.Filename,
		MediaType: declaredMediaType(fh),
		Data:      data,
	})
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrEmptyDocument),
			errors.Is(err, extract.ErrPayloadTooLarge),
			errors.Is(err, extract.ErrUnsupportedMediaType):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to store resume")
		}
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}

// Get returns the full record including extracted fields and children.
// @Summary Get a resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "Resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// List returns the caller's resumes, newest first.
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, err := uuid.Parse(ownerIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	if items == nil {
		items = []resume.Resume{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Delete removes a resume and its stored file.
// @Summary Delete a resume
// @Tags    resumes
// @Param   id path string true "Resume ID (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete resume")
	}
	return c.SendStatus(http.StatusNoContent)
}

// declaredMediaType prefers the part's Content-Type header and falls back to
// the filename extension for clients that do not set one.
func declaredMediaType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".pdf":
		return extract.MediaTypePDF
	case ".docx":
		return extract.MediaTypeDOCX
	}
	return ""
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, extract.ErrPayloadTooLarge
	}
	return b, nil
}
