package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumescanner/resume-match/pkg/extract"
)

type fakeRepo struct {
	records  map[uuid.UUID]Resume
	statuses []Status // every transition, in order
	saveErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]Resume)}
}

func (f *fakeRepo) Create(_ context.Context, r Resume) error {
	f.records[r.ID] = r
	f.statuses = append(f.statuses, r.Status)
	return nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id uuid.UUID, st Status) error {
	r, ok := f.records[id]
	if !ok {
		return ErrNotFound
	}
	r.Status = st
	f.records[id] = r
	f.statuses = append(f.statuses, st)
	return nil
}

func (f *fakeRepo) SaveExtracted(_ context.Context, r Resume) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.records[r.ID]; !ok {
		return ErrNotFound
	}
	f.records[r.ID] = r
	f.statuses = append(f.statuses, r.Status)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (Resume, error) {
	r, ok := f.records[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]Resume, error) {
	var out []Resume
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) (Resume, error) {
	r, ok := f.records[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	delete(f.records, id)
	return r, nil
}

type fakeBlobs struct {
	saved   map[string][]byte
	removed []string
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{saved: make(map[string][]byte)} }

func (f *fakeBlobs) Save(id uuid.UUID, _ string, data []byte) (string, error) {
	path := "blob/" + id.String()
	f.saved[path] = data
	return path, nil
}

func (f *fakeBlobs) Remove(path string) error {
	f.removed = append(f.removed, path)
	delete(f.saved, path)
	return nil
}

func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	for _, p := range paragraphs {
		_, err = w.Write([]byte(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newTestService(repo Repository, blobs BlobStore) UseCase {
	return NewService(repo, blobs, extract.NewHeuristicExtractor(nil), nil)
}

func TestUpload_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	blobs := newFakeBlobs()
	svc := newTestService(repo, blobs)

	data := docxBytes(t, "John Doe", "john.doe@example.com 555-123-4567", "Skills: Java, Docker")
	got, err := svc.Upload(context.Background(), UploadInput{
		OwnerID:   uuid.New(),
		Filename:  "resume.docx",
		MediaType: extract.MediaTypeDOCX,
		Data:      data,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "John Doe", got.FullName)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Equal(t, "555-123-4567", got.Phone)
	assert.Contains(t, got.Skills, "java")
	assert.Contains(t, got.Skills, "docker")
	assert.NotEmpty(t, got.RawText)
	require.NotNil(t, got.ParsedAt)

	// UPLOADED -> PROCESSING -> COMPLETED, no skips, no repeats.
	assert.Equal(t, []Status{StatusUploaded, StatusProcessing, StatusCompleted}, repo.statuses)

	stored, err := repo.GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.Contains(t, blobs.saved, got.StoragePath)
}

func TestUpload_ValidationRejectsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name string
		in   UploadInput
		want error
	}{
		{
			"empty payload",
			UploadInput{Filename: "r.pdf", MediaType: extract.MediaTypePDF},
			extract.ErrEmptyDocument,
		},
		{
			"oversized payload",
			UploadInput{Filename: "r.pdf", MediaType: extract.MediaTypePDF, Data: make([]byte, extract.MaxDocumentBytes+1)},
			extract.ErrPayloadTooLarge,
		},
		{
			"unsupported media type",
			UploadInput{Filename: "r.txt", MediaType: "text/plain", Data: []byte("hello")},
			extract.ErrUnsupportedMediaType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			blobs := newFakeBlobs()
			svc := newTestService(repo, blobs)

			_, err := svc.Upload(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.records)
			assert.Empty(t, blobs.saved)
		})
	}
}

func TestUpload_ExtractionFailureReturnsFailedRecordWithoutError(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeBlobs())

	got, err := svc.Upload(context.Background(), UploadInput{
		OwnerID:   uuid.New(),
		Filename:  "broken.pdf",
		MediaType: extract.MediaTypePDF,
		Data:      []byte("this is not a pdf"),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, got.Status)
	assert.Nil(t, got.ParsedAt)
	assert.Empty(t, got.RawText)

	stored, err := repo.GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestUpload_PersistFailureEndsFailed(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("disk full")
	svc := newTestService(repo, newFakeBlobs())

	got, err := svc.Upload(context.Background(), UploadInput{
		OwnerID:   uuid.New(),
		Filename:  "resume.docx",
		MediaType: extract.MediaTypeDOCX,
		Data:      docxBytes(t, "Jane Smith"),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Nil(t, got.ParsedAt)
}

func TestDelete_RemovesStoredBlob(t *testing.T) {
	repo := newFakeRepo()
	blobs := newFakeBlobs()
	svc := newTestService(repo, blobs)

	got, err := svc.Upload(context.Background(), UploadInput{
		OwnerID:   uuid.New(),
		Filename:  "resume.docx",
		MediaType: extract.MediaTypeDOCX,
		Data:      docxBytes(t, "Jane Smith"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), got.ID))
	assert.Contains(t, blobs.removed, got.StoragePath)

	_, err = svc.Get(context.Background(), got.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
