package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type is the employment kind of a posting.
type Type string

const (
	TypeFullTime   Type = "FULL_TIME"
	TypePartTime   Type = "PART_TIME"
	TypeContract   Type = "CONTRACT"
	TypeInternship Type = "INTERNSHIP"
)

// Job is a posting in the catalog. The scoring engine only reads it.
type Job struct {
	ID uuid.UUID `json:"id"`

	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description,omitempty"`
	Requirements   string   `json:"requirements,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`

	ExperienceLevel    string `json:"experienceLevel,omitempty"` // Entry, Mid, Senior, Executive
	MinExperienceYears *int   `json:"minExperienceYears,omitempty"`
	MaxExperienceYears *int   `json:"maxExperienceYears,omitempty"`

	MinSalary      *float64 `json:"minSalary,omitempty"`
	MaxSalary      *float64 `json:"maxSalary,omitempty"`
	SalaryCurrency string   `json:"salaryCurrency,omitempty"`

	Location      string `json:"location,omitempty"`
	RemoteAllowed bool   `json:"remoteAllowed"`
	JobType       Type   `json:"jobType"`

	Benefits       []string `json:"benefits,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`

	Active   bool      `json:"isActive"`
	PostedBy uuid.UUID `json:"postedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrNotFound signals an unknown job id.
var ErrNotFound = errors.New("job not found")

// Repository is the persistence port for the job catalog.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]Job, error)
	Update(ctx context.Context, j Job) error
	// Deactivate soft-deletes a posting; it stays readable by id.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
