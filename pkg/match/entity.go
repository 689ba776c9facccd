package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is one scored (resume, job, user) triple. It references both records
// by identity only and is persisted fully populated or not at all.
type Result struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	ResumeID uuid.UUID `json:"resumeId"`
	JobID    uuid.UUID `json:"jobId"`

	OverallScore    float64 `json:"overallScore"`
	KeywordScore    float64 `json:"keywordScore"`
	SkillsScore     float64 `json:"skillsScore"`
	SemanticScore   float64 `json:"semanticScore"`
	ExperienceScore float64 `json:"experienceScore"`
	EducationScore  float64 `json:"educationScore"`
	ATSScore        float64 `json:"atsScore"`

	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
	MissingKeywords []string `json:"missingKeywords,omitempty"`

	Recommendation string `json:"recommendation,omitempty"`
	Strengths      string `json:"strengths,omitempty"`
	Improvements   string `json:"improvements,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

var (
	// ErrNotFound signals an unknown match result id.
	ErrNotFound = errors.New("match result not found")
	// ErrJobUnavailable signals that the job catalog could not be reached in
	// time; the caller decides whether to retry.
	ErrJobUnavailable = errors.New("job catalog unavailable")
	// ErrResumeNotReady signals that the resume has not completed parsing.
	ErrResumeNotReady = errors.New("resume is not parsed yet")
)

// Repository is the persistence port for match results.
type Repository interface {
	Create(ctx context.Context, r Result) (Result, error)
	GetByID(ctx context.Context, id uuid.UUID) (Result, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Result, error)
}
