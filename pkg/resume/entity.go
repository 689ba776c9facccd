package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the processing lifecycle of an uploaded resume.
// UPLOADED → PROCESSING → {COMPLETED, FAILED}; the last two are terminal.
type Status string

const (
	StatusUploaded   Status = "UPLOADED"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// WorkExperience is one employment entry owned by a resume.
type WorkExperience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"startDate,omitempty"` // YYYY-MM or free text
	EndDate          string   `json:"endDate,omitempty"`
	IsCurrent        bool     `json:"isCurrent"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Location         string   `json:"location,omitempty"`
}

// Education is one education entry owned by a resume.
type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree,omitempty"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
}

// Resume is the single domain record for an uploaded document: provenance,
// lifecycle status and the fields extracted from its text. Extracted fields
// stay unset until the record reaches COMPLETED.
type Resume struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`

	Filename    string `json:"filename"`
	MediaType   string `json:"mediaType"`
	Size        int64  `json:"sizeBytes"`
	StoragePath string `json:"storagePath,omitempty"`

	Status Status `json:"status"`

	FullName       string           `json:"fullName,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Experience     []WorkExperience `json:"experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Certifications []string         `json:"certifications,omitempty"`
	Languages      []string         `json:"languages,omitempty"`
	RawText        string           `json:"rawText,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ParsedAt  *time.Time `json:"parsedAt,omitempty"`
}

// ErrNotFound signals an unknown resume id ("absent", not "broken").
var ErrNotFound = errors.New("resume not found")

// Repository is the persistence port for resumes. GetByID loads the record
// together with its owned experience and education children in one call.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	// SaveExtracted persists raw text, extracted fields, parsed-at and the
	// terminal status in a single atomic update.
	SaveExtracted(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// Delete removes the record and returns its meta for file cleanup.
	Delete(ctx context.Context, id uuid.UUID) (Resume, error)
}
