package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumescanner/resume-match/pkg/resume"
)

// ResumeRepository stores resume records and their owned children.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID,
	filename TEXT NOT NULL,
	media_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	storage_path TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	certifications TEXT[] NOT NULL DEFAULT '{}',
	languages TEXT[] NOT NULL DEFAULT '{}',
	raw_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	parsed_at TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS resume_experiences (
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	position INT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	is_current BOOLEAN NOT NULL DEFAULT FALSE,
	description TEXT NOT NULL DEFAULT '',
	responsibilities TEXT[] NOT NULL DEFAULT '{}',
	achievements TEXT[] NOT NULL DEFAULT '{}',
	location TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (resume_id, position)
);
CREATE TABLE IF NOT EXISTS resume_educations (
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	position INT NOT NULL,
	institution TEXT NOT NULL DEFAULT '',
	degree TEXT NOT NULL DEFAULT '',
	field_of_study TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	gpa DOUBLE PRECISION,
	location TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	is_current BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (resume_id, position)
);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rs resume.Resume) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = time.Now().UTC()
		rs.UpdatedAt = rs.CreatedAt
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, owner_id, filename, media_type, size_bytes, storage_path, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, rs.ID, rs.OwnerID, rs.Filename, rs.MediaType, rs.Size, rs.StoragePath, string(rs.Status), rs.CreatedAt, rs.UpdatedAt)
	return err
}

func (r *ResumeRepository) SetStatus(ctx context.Context, id uuid.UUID, status resume.Status) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes SET status = $2, updated_at = $3 WHERE id = $1
`, id, string(status), time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// SaveExtracted writes raw text, extracted fields, children and the terminal
// status in one transaction.
func (r *ResumeRepository) SaveExtracted(ctx context.Context, rs resume.Resume) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
UPDATE resumes SET
	status = $2,
	full_name = $3,
	email = $4,
	phone = $5,
	summary = $6,
	skills = $7,
	certifications = $8,
	languages = $9,
	raw_text = $10,
	updated_at = $11,
	parsed_at = $12
WHERE id = $1
`, rs.ID, string(rs.Status), rs.FullName, rs.Email, rs.Phone, rs.Summary,
		textArray(rs.Skills), textArray(rs.Certifications), textArray(rs.Languages),
		rs.RawText, rs.UpdatedAt, rs.ParsedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM resume_experiences WHERE resume_id = $1`, rs.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM resume_educations WHERE resume_id = $1`, rs.ID); err != nil {
		return err
	}
	for i, e := range rs.Experience {
		if _, err := tx.Exec(ctx, `
INSERT INTO resume_experiences (resume_id, position, company, title, start_date, end_date, is_current, description, responsibilities, achievements, location)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, rs.ID, i, e.Company, e.Title, e.StartDate, e.EndDate, e.IsCurrent, e.Description,
			textArray(e.Responsibilities), textArray(e.Achievements), e.Location); err != nil {
			return err
		}
	}
	for i, e := range rs.Education {
		if _, err := tx.Exec(ctx, `
INSERT INTO resume_educations (resume_id, position, institution, degree, field_of_study, start_date, end_date, gpa, location, description, is_current)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, rs.ID, i, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.GPA,
			e.Location, e.Description, e.IsCurrent); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// GetByID loads the record together with its experience and education
// children; children are fetched here once, never lazily.
func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, media_type, size_bytes, storage_path, status,
	full_name, email, phone, summary, skills, certifications, languages, raw_text,
	created_at, updated_at, parsed_at
FROM resumes WHERE id = $1
`, id)
	rs, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}

	if rs.Experience, err = r.loadExperience(ctx, id); err != nil {
		return resume.Resume{}, err
	}
	if rs.Education, err = r.loadEducation(ctx, id); err != nil {
		return resume.Resume{}, err
	}
	return rs, nil
}

func (r *ResumeRepository) loadExperience(ctx context.Context, id uuid.UUID) ([]resume.WorkExperience, error) {
	rows, err := r.pool.Query(ctx, `
SELECT company, title, start_date, end_date, is_current, description, responsibilities, achievements, location
FROM resume_experiences WHERE resume_id = $1 ORDER BY position
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []resume.WorkExperience
	for rows.Next() {
		var e resume.WorkExperience
		if err := rows.Scan(&e.Company, &e.Title, &e.StartDate, &e.EndDate, &e.IsCurrent,
			&e.Description, &e.Responsibilities, &e.Achievements, &e.Location); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ResumeRepository) loadEducation(ctx context.Context, id uuid.UUID) ([]resume.Education, error) {
	rows, err := r.pool.Query(ctx, `
SELECT institution, degree, field_of_study, start_date, end_date, gpa, location, description, is_current
FROM resume_educations WHERE resume_id = $1 ORDER BY position
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []resume.Education
	for rows.Next() {
		var e resume.Education
		if err := rows.Scan(&e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate,
			&e.GPA, &e.Location, &e.Description, &e.IsCurrent); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListByOwner returns records without raw text or children; use GetByID for
// the full view.
func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, media_type, size_bytes, storage_path, status,
	full_name, email, phone, summary, skills, certifications, languages, '',
	created_at, updated_at, parsed_at
FROM resumes WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []resume.Resume
	for rows.Next() {
		rs, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rs)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
DELETE FROM resumes WHERE id = $1
RETURNING id, filename, media_type, size_bytes, storage_path, status, created_at, updated_at
`, id)
	var rs resume.Resume
	var status string
	if err := row.Scan(&rs.ID, &rs.Filename, &rs.MediaType, &rs.Size, &rs.StoragePath,
		&status, &rs.CreatedAt, &rs.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	rs.Status = resume.Status(status)
	return rs, nil
}

func scanResume(row pgx.Row) (resume.Resume, error) {
	var rs resume.Resume
	var status string
	var created, updated time.Time
	var parsed *time.Time
	if err := row.Scan(&rs.ID, &rs.OwnerID, &rs.Filename, &rs.MediaType, &rs.Size, &rs.StoragePath,
		&status, &rs.FullName, &rs.Email, &rs.Phone, &rs.Summary,
		&rs.Skills, &rs.Certifications, &rs.Languages, &rs.RawText,
		&created, &updated, &parsed); err != nil {
		return resume.Resume{}, err
	}
	rs.Status = resume.Status(status)
	rs.CreatedAt = created.UTC()
	rs.UpdatedAt = updated.UTC()
	if parsed != nil {
		t := parsed.UTC()
		rs.ParsedAt = &t
	}
	return rs, nil
}

// textArray keeps NOT NULL array columns happy for nil slices.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
