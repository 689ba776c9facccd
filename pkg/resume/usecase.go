package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumescanner/resume-match/pkg/extract"
)

// UploadInput carries everything the upload boundary hands over.
type UploadInput struct {
	OwnerID   uuid.UUID
	Filename  string
	MediaType string
	Data      []byte
}

// UseCase covers the resume pipeline: validated upload with synchronous
// extraction, plus catalog reads and delete.
type UseCase interface {
	Upload(ctx context.Context, in UploadInput) (Resume, error)
	Get(ctx context.Context, id uuid.UUID) (Resume, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlobStore keeps the original uploaded bytes around as provenance.
type BlobStore interface {
	Save(id uuid.UUID, filename string, data []byte) (path string, err error)
	Remove(path string) error
}

type service struct {
	repo   Repository
	blobs  BlobStore
	fields extract.FieldExtractor
	log    *zap.Logger
}

func NewService(repo Repository, blobs BlobStore, fields extract.FieldExtractor, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, blobs: blobs, fields: fields, log: log}
}

// Upload validates the payload, durably creates the record with its raw text,
// then runs field extraction exactly once. Validation errors are returned
// before anything is written; extraction errors leave the record FAILED and
// are not returned as errors (the caller gets the FAILED record).
func (s *service) Upload(ctx context.Context, in UploadInput) (Resume, error) {
	if err := extract.Validate(in.MediaType, int64(len(in.Data))); err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	r := Resume{
		ID:        uuid.New(),
		OwnerID:   in.OwnerID,
		Filename:  in.Filename,
		MediaType: in.MediaType,
		Size:      int64(len(in.Data)),
		Status:    StatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}

	path, err := s.blobs.Save(r.ID, in.Filename, in.Data)
	if err != nil {
		return Resume{}, err
	}
	r.StoragePath = path

	if err := s.repo.Create(ctx, r); err != nil {
		return Resume{}, err
	}

	text, err := extract.Text(in.MediaType, in.Data)
	if err != nil {
		s.log.Error("text extraction failed",
			zap.String("resumeId", r.ID.String()),
			zap.String("mediaType", in.MediaType),
			zap.Error(err))
		s.fail(ctx, &r)
		return r, nil
	}
	r.RawText = text

	s.process(ctx, &r)
	return r, nil
}

// process runs the PROCESSING stage: field extraction over the raw text and
// the single atomic transition into a terminal status. It must be invoked at
// most once per record id.
func (s *service) process(ctx context.Context, r *Resume) {
	if err := s.repo.SetStatus(ctx, r.ID, StatusProcessing); err != nil {
		s.log.Error("status transition failed",
			zap.String("resumeId", r.ID.String()), zap.Error(err))
		s.fail(ctx, r)
		return
	}
	r.Status = StatusProcessing

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("field extraction panicked",
				zap.String("resumeId", r.ID.String()), zap.Any("panic", rec))
			s.fail(ctx, r)
		}
	}()

	f := s.fields.Extract(r.RawText)
	r.FullName = f.FullName
	r.Email = f.Email
	r.Phone = f.Phone
	r.Skills = f.Skills

	now := time.Now().UTC()
	r.ParsedAt = &now
	r.UpdatedAt = now
	r.Status = StatusCompleted
	if err := s.repo.SaveExtracted(ctx, *r); err != nil {
		s.log.Error("saving extracted fields failed",
			zap.String("resumeId", r.ID.String()), zap.Error(err))
		r.ParsedAt = nil
		s.fail(ctx, r)
	}
}

func (s *service) fail(ctx context.Context, r *Resume) {
	r.Status = StatusFailed
	if err := s.repo.SetStatus(ctx, r.ID, StatusFailed); err != nil {
		s.log.Error("marking resume failed",
			zap.String("resumeId", r.ID.String()), zap.Error(err))
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Resume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	meta, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if meta.StoragePath != "" {
		if err := s.blobs.Remove(meta.StoragePath); err != nil {
			s.log.Warn("removing stored file",
				zap.String("resumeId", id.String()), zap.Error(err))
		}
	}
	return nil
}
