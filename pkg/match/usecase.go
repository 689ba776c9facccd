package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumescanner/resume-match/pkg/job"
	"github.com/resumescanner/resume-match/pkg/resume"
)

// defaultJobFetchTimeout bounds the only blocking call scoring makes.
const defaultJobFetchTimeout = 3 * time.Second

// UseCase scores resumes against jobs and serves match history.
type UseCase interface {
	Create(ctx context.Context, userID, resumeID, jobID uuid.UUID) (Result, error)
	Get(ctx context.Context, id uuid.UUID) (Result, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Result, error)
}

// ResumeSource provides the finalized resume record to score.
type ResumeSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
}

// JobSource provides job records; in a split deployment this is a remote
// catalog, so calls through it are failure-isolated with a timeout.
type JobSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
}

type service struct {
	repo       Repository
	resumes    ResumeSource
	jobs       JobSource
	scorer     *Scorer
	jobTimeout time.Duration
	log        *zap.Logger
}

func NewService(repo Repository, resumes ResumeSource, jobs JobSource, scorer *Scorer, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:       repo,
		resumes:    resumes,
		jobs:       jobs,
		scorer:     scorer,
		jobTimeout: defaultJobFetchTimeout,
		log:        log,
	}
}

// Create scores the resume against the job and persists the result. The
// result is stored fully populated or not at all; a failed job fetch is
// surfaced as ErrJobUnavailable without touching the resume's state.
func (s *service) Create(ctx context.Context, userID, resumeID, jobID uuid.UUID) (Result, error) {
	r, err := s.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return Result{}, err
	}
	if r.Status != resume.StatusCompleted {
		return Result{}, fmt.Errorf("%w: status is %s", ErrResumeNotReady, r.Status)
	}

	jctx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()
	j, err := s.jobs.GetByID(jctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return Result{}, err
		}
		s.log.Warn("job catalog fetch failed",
			zap.String("jobId", jobID.String()), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrJobUnavailable, err)
	}

	res := s.scorer.Score(r, j)
	GenerateRecommendations(&res)

	res.ID = uuid.New()
	res.UserID = userID
	res.ResumeID = resumeID
	res.JobID = jobID
	res.CreatedAt = time.Now().UTC()

	saved, err := s.repo.Create(ctx, res)
	if err != nil {
		return Result{}, err
	}
	s.log.Info("match scored",
		zap.String("matchId", saved.ID.String()),
		zap.String("resumeId", resumeID.String()),
		zap.String("jobId", jobID.String()),
		zap.Float64("overall", saved.OverallScore))
	return saved, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Result, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Result, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}
