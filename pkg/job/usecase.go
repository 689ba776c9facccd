package job

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase is the thin application layer over the job catalog.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Title == "" {
		return Job{}, ErrValidation("title is required")
	}
	if j.Company == "" {
		return Job{}, ErrValidation("company is required")
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.JobType == "" {
		j.JobType = TypeFullTime
	}
	if j.SalaryCurrency == "" {
		j.SalaryCurrency = "USD"
	}
	now := time.Now().UTC()
	j.Active = true
	j.CreatedAt = now
	j.UpdatedAt = now
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.repo.ListActive(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, j Job) (Job, error) {
	current, err := s.repo.GetByID(ctx, j.ID)
	if err != nil {
		return Job{}, err
	}
	j.Active = current.Active
	j.CreatedAt = current.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
