package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumescanner/resume-match/pkg/job"
	"github.com/resumescanner/resume-match/pkg/resume"
)

type fakeMatchRepo struct {
	created []Result
	err     error
}

func (f *fakeMatchRepo) Create(_ context.Context, res Result) (Result, error) {
	if f.err != nil {
		return Result{}, f.err
	}
	f.created = append(f.created, res)
	return res, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id uuid.UUID) (Result, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return Result{}, ErrNotFound
}

func (f *fakeMatchRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]Result, error) {
	var out []Result
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeResumeSource struct {
	r   resume.Resume
	err error
}

func (f fakeResumeSource) GetByID(context.Context, uuid.UUID) (resume.Resume, error) {
	return f.r, f.err
}

type fakeJobSource struct {
	j   job.Job
	err error
}

func (f fakeJobSource) GetByID(context.Context, uuid.UUID) (job.Job, error) {
	return f.j, f.err
}

func completedResume() resume.Resume {
	return resume.Resume{
		ID:      uuid.New(),
		Status:  resume.StatusCompleted,
		RawText: "java developer with spring experience",
		Skills:  []string{"Java", "Spring"},
	}
}

func TestMatchCreate_PersistsFullyPopulatedResult(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := completedResume()
	j := job.Job{
		ID:             uuid.New(),
		Description:    "java developer position",
		RequiredSkills: []string{"Java", "Python"},
	}
	svc := NewService(repo, fakeResumeSource{r: r}, fakeJobSource{j: j}, NewScorer(DefaultWeights()), nil)

	userID := uuid.New()
	got, err := svc.Create(context.Background(), userID, r.ID, j.ID)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, got, repo.created[0])
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, r.ID, got.ResumeID)
	assert.Equal(t, j.ID, got.JobID)
	assert.NotEmpty(t, got.Recommendation)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, []string{"java"}, got.MatchedSkills)
	assert.Equal(t, []string{"python"}, got.MissingSkills)
}

func TestMatchCreate_ResumeNotFoundPassesThrough(t *testing.T) {
	repo := &fakeMatchRepo{}
	svc := NewService(repo, fakeResumeSource{err: resume.ErrNotFound}, fakeJobSource{}, NewScorer(DefaultWeights()), nil)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, resume.ErrNotFound)
	assert.Empty(t, repo.created)
}

func TestMatchCreate_ResumeNotReady(t *testing.T) {
	for _, status := range []resume.Status{resume.StatusUploaded, resume.StatusProcessing, resume.StatusFailed} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeMatchRepo{}
			src := fakeResumeSource{r: resume.Resume{ID: uuid.New(), Status: status}}
			svc := NewService(repo, src, fakeJobSource{}, NewScorer(DefaultWeights()), nil)

			_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())
			assert.ErrorIs(t, err, ErrResumeNotReady)
			assert.Empty(t, repo.created)
		})
	}
}

func TestMatchCreate_JobNotFoundPassesThrough(t *testing.T) {
	repo := &fakeMatchRepo{}
	svc := NewService(repo, fakeResumeSource{r: completedResume()}, fakeJobSource{err: job.ErrNotFound}, NewScorer(DefaultWeights()), nil)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)
	assert.Empty(t, repo.created)
}

func TestMatchCreate_JobFetchFailureIsUnavailable(t *testing.T) {
	repo := &fakeMatchRepo{}
	src := fakeJobSource{err: errors.New("connection refused")}
	svc := NewService(repo, fakeResumeSource{r: completedResume()}, src, NewScorer(DefaultWeights()), nil)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrJobUnavailable)
	assert.Empty(t, repo.created)
}

func TestMatchCreate_RepoFailureReturnsNothing(t *testing.T) {
	repo := &fakeMatchRepo{err: errors.New("insert failed")}
	svc := NewService(repo, fakeResumeSource{r: completedResume()}, fakeJobSource{j: job.Job{ID: uuid.New()}}, NewScorer(DefaultWeights()), nil)

	got, err := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, Result{}, got)
}

func TestMatchHistory_FiltersByUser(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := completedResume()
	j := job.Job{ID: uuid.New(), Description: "go services"}
	svc := NewService(repo, fakeResumeSource{r: r}, fakeJobSource{j: j}, NewScorer(DefaultWeights()), nil)

	alice := uuid.New()
	bob := uuid.New()
	_, err := svc.Create(context.Background(), alice, r.ID, j.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, r.ID, j.ID)
	require.NoError(t, err)

	got, err := svc.History(context.Background(), alice, 50, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alice, got[0].UserID)
}
