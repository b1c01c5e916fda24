package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobPosting struct {
	ID          uuid.UUID
	Title       string
	Description string
	CareerID    *uuid.UUID
	CreatedAt   time.Time
}

type PostingRepository interface {
	Create(ctx context.Context, posting JobPosting) (JobPosting, error)
	FindByID(ctx context.Context, id uuid.UUID) (JobPosting, error)
	ListAll(ctx context.Context) ([]JobPosting, error)
	// LinkedSkills returns the confirmed skills of a posting.
	LinkedSkills(ctx context.Context, postingID uuid.UUID) ([]Skill, error)
}

type PostgresPostingRepository struct {
	q database.Querier
}

func NewPostgresPostingRepository(q database.Querier) *PostgresPostingRepository {
	return &PostgresPostingRepository{q: q}
}

const postingSelect = `SELECT id, title, description, career_id, created_at FROM job_postings`

func (r *PostgresPostingRepository) Create(ctx context.Context, posting JobPosting) (JobPosting, error) {
	if posting.ID == uuid.Nil {
		posting.ID = uuid.New()
	}
	posting.CreatedAt = time.Now().UTC()

	_, err := r.q.Exec(ctx,
		`INSERT INTO job_postings (id, title, description, career_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		posting.ID, posting.Title, posting.Description, posting.CareerID, posting.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return JobPosting{}, ErrDuplicateDescription
		}
		if isForeignKeyViolation(err) {
			return JobPosting{}, ErrCareerNotFound
		}
		return JobPosting{}, err
	}
	return posting, nil
}

func (r *PostgresPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (JobPosting, error) {
	row := r.q.QueryRow(ctx, postingSelect+` WHERE id = $1`, id)
	return scanPosting(row)
}

func (r *PostgresPostingRepository) ListAll(ctx context.Context) ([]JobPosting, error) {
	rows, err := r.q.Query(ctx, postingSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobPosting, 0)
	for rows.Next() {
		var p JobPosting
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CareerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) LinkedSkills(ctx context.Context, postingID uuid.UUID) ([]Skill, error) {
	rows, err := r.q.Query(ctx,
		`SELECT s.id, s.name, s.category_id, c.name, s.updated_at
		 FROM job_posting_skills jps
		 JOIN skills s ON s.id = jps.skill_id
		 JOIN categories c ON c.id = s.category_id
		 WHERE jps.job_posting_id = $1
		 ORDER BY s.name ASC`,
		postingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (JobPosting, error) {
	var p JobPosting
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CareerID, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return JobPosting{}, ErrPostingNotFound
		}
		return JobPosting{}, err
	}
	return p, nil
}
