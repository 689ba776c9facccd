package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumescanner/resume-match/pkg/job"
)

// JobRepository stores the job catalog.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	requirements TEXT NOT NULL DEFAULT '',
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	experience_level TEXT NOT NULL DEFAULT '',
	min_experience_years INT,
	max_experience_years INT,
	min_salary DOUBLE PRECISION,
	max_salary DOUBLE PRECISION,
	salary_currency TEXT NOT NULL DEFAULT 'USD',
	location TEXT NOT NULL DEFAULT '',
	remote_allowed BOOLEAN NOT NULL DEFAULT FALSE,
	job_type TEXT NOT NULL DEFAULT 'FULL_TIME',
	benefits TEXT[] NOT NULL DEFAULT '{}',
	qualifications TEXT[] NOT NULL DEFAULT '{}',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	posted_by UUID,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const jobColumns = `id, title, company, description, requirements, required_skills,
	experience_level, min_experience_years, max_experience_years,
	min_salary, max_salary, salary_currency, location, remote_allowed, job_type,
	benefits, qualifications, is_active, posted_by, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
		j.UpdatedAt = j.CreatedAt
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
`, j.ID, j.Title, j.Company, j.Description, j.Requirements, textArray(j.RequiredSkills),
		j.ExperienceLevel, j.MinExperienceYears, j.MaxExperienceYears,
		j.MinSalary, j.MaxSalary, j.SalaryCurrency, j.Location, j.RemoteAllowed, string(j.JobType),
		textArray(j.Benefits), textArray(j.Qualifications), j.Active, j.PostedBy, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM jobs WHERE is_active
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE jobs SET
	title = $2, company = $3, description = $4, requirements = $5, required_skills = $6,
	experience_level = $7, min_experience_years = $8, max_experience_years = $9,
	min_salary = $10, max_salary = $11, salary_currency = $12, location = $13,
	remote_allowed = $14, job_type = $15, benefits = $16, qualifications = $17,
	updated_at = $18
WHERE id = $1
`, j.ID, j.Title, j.Company, j.Description, j.Requirements, textArray(j.RequiredSkills),
		j.ExperienceLevel, j.MinExperienceYears, j.MaxExperienceYears,
		j.MinSalary, j.MaxSalary, j.SalaryCurrency, j.Location,
		j.RemoteAllowed, string(j.JobType), textArray(j.Benefits), textArray(j.Qualifications),
		j.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE jobs SET is_active = FALSE, updated_at = $2 WHERE id = $1
`, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var jobType string
	var created, updated time.Time
	var postedBy *uuid.UUID
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Requirements, &j.RequiredSkills,
		&j.ExperienceLevel, &j.MinExperienceYears, &j.MaxExperienceYears,
		&j.MinSalary, &j.MaxSalary, &j.SalaryCurrency, &j.Location, &j.RemoteAllowed, &jobType,
		&j.Benefits, &j.Qualifications, &j.Active, &postedBy, &created, &updated); err != nil {
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	if postedBy != nil {
		j.PostedBy = *postedBy
	}
	j.CreatedAt = created.UTC()
	j.UpdatedAt = updated.UTC()
	return j, nil
}
