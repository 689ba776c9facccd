package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumescanner/resume-match/pkg/match"
)

// MatchRepository stores scored match results.
type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) (*MatchRepository, error) {
	r := &MatchRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MatchRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS match_results (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	overall_score DOUBLE PRECISION NOT NULL,
	keyword_score DOUBLE PRECISION NOT NULL,
	skills_score DOUBLE PRECISION NOT NULL,
	semantic_score DOUBLE PRECISION NOT NULL,
	experience_score DOUBLE PRECISION NOT NULL,
	education_score DOUBLE PRECISION NOT NULL,
	ats_score DOUBLE PRECISION NOT NULL,
	matched_skills TEXT[] NOT NULL DEFAULT '{}',
	missing_skills TEXT[] NOT NULL DEFAULT '{}',
	matched_keywords TEXT[] NOT NULL DEFAULT '{}',
	missing_keywords TEXT[] NOT NULL DEFAULT '{}',
	recommendation TEXT NOT NULL DEFAULT '',
	strengths TEXT NOT NULL DEFAULT '',
	improvements TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_results_user ON match_results (user_id, created_at DESC);
`)
	return err
}

const matchColumns = `id, user_id, resume_id, job_id,
	overall_score, keyword_score, skills_score, semantic_score, experience_score, education_score, ats_score,
	matched_skills, missing_skills, matched_keywords, missing_keywords,
	recommendation, strengths, improvements, created_at`

func (r *MatchRepository) Create(ctx context.Context, m match.Result) (match.Result, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO match_results (`+matchColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`, m.ID, m.UserID, m.ResumeID, m.JobID,
		m.OverallScore, m.KeywordScore, m.SkillsScore, m.SemanticScore, m.ExperienceScore, m.EducationScore, m.ATSScore,
		textArray(m.MatchedSkills), textArray(m.MissingSkills), textArray(m.MatchedKeywords), textArray(m.MissingKeywords),
		m.Recommendation, m.Strengths, m.Improvements, m.CreatedAt)
	if err != nil {
		return match.Result{}, err
	}
	return m, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Result, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM match_results WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Result{}, match.ErrNotFound
		}
		return match.Result{}, err
	}
	return m, nil
}

func (r *MatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]match.Result, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+matchColumns+` FROM match_results WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []match.Result
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMatch(row pgx.Row) (match.Result, error) {
	var m match.Result
	var created time.Time
	if err := row.Scan(&m.ID, &m.UserID, &m.ResumeID, &m.JobID,
		&m.OverallScore, &m.KeywordScore, &m.SkillsScore, &m.SemanticScore,
		&m.ExperienceScore, &m.EducationScore, &m.ATSScore,
		&m.MatchedSkills, &m.MissingSkills, &m.MatchedKeywords, &m.MissingKeywords,
		&m.Recommendation, &m.Strengths, &m.Improvements, &created); err != nil {
		return match.Result{}, err
	}
	m.CreatedAt = created.UTC()
	return m, nil
}
