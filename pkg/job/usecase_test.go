package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	jobs map[uuid.UUID]Job
}

func newFakeRepo() *fakeRepo { return &fakeRepo{jobs: make(map[uuid.UUID]Job)} }

func (f *fakeRepo) Create(_ context.Context, j Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (f *fakeRepo) ListActive(_ context.Context, _, _ int) ([]Job, error) {
	var out []Job
	for _, j := range f.jobs {
		if j.Active {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, j Job) error {
	if _, ok := f.jobs[j.ID]; !ok {
		return ErrNotFound
	}
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	j, ok := f.jobs[id]
	if !ok {
		return ErrNotFound
	}
	j.Active = false
	f.jobs[id] = j
	return nil
}

func TestJobCreate_DefaultsAndValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	got, err := svc.Create(context.Background(), Job{Title: "  Backend Engineer ", Company: "ACME"})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, TypeFullTime, got.JobType)
	assert.Equal(t, "USD", got.SalaryCurrency)
	assert.True(t, got.Active)
	assert.NotEqual(t, uuid.Nil, got.ID)

	_, err = svc.Create(context.Background(), Job{Company: "ACME"})
	var verr ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title is required", verr.Error())

	_, err = svc.Create(context.Background(), Job{Title: "Engineer", Company: "   "})
	assert.ErrorAs(t, err, &verr)
}

func TestJobUpdate_PreservesActiveAndCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Job{Title: "Engineer", Company: "ACME"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	updated, err := svc.Update(context.Background(), Job{ID: created.ID, Title: "Senior Engineer", Company: "ACME"})
	require.NoError(t, err)

	assert.False(t, updated.Active, "update must not reactivate a posting")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestJobUpdate_UnknownID(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Update(context.Background(), Job{ID: uuid.New(), Title: "X", Company: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDeactivate_StaysReadable(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Job{Title: "Engineer", Company: "ACME"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	active, err := svc.ListActive(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Empty(t, active)
}
