package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Career struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// CareerSkillRow is one weighted demand entry of a career.
type CareerSkillRow struct {
	SkillID   uuid.UUID
	SkillName string
	Frequency int
}

// CareerDemandRow is the per-category aggregation of a career's demand,
// used by the course↔career mapping engine.
type CareerDemandRow struct {
	CareerID   uuid.UUID
	CategoryID uuid.UUID
	Frequency  int
}

type CareerRepository interface {
	ListAll(ctx context.Context) ([]Career, error)
	FindByID(ctx context.Context, id uuid.UUID) (Career, error)
	SkillWeights(ctx context.Context, careerID uuid.UUID) ([]CareerSkillRow, error)
	// DemandByCategory aggregates every career's demand per category in a
	// single pass.
	DemandByCategory(ctx context.Context) ([]CareerDemandRow, error)
}

type PostgresCareerRepository struct {
	q database.Querier
}

func NewPostgresCareerRepository(q database.Querier) *PostgresCareerRepository {
	return &PostgresCareerRepository{q: q}
}

func (r *PostgresCareerRepository) ListAll(ctx context.Context) ([]Career, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM careers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Career, 0)
	for rows.Next() {
		var c Career
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerRepository) FindByID(ctx context.Context, id uuid.UUID) (Career, error) {
	row := r.q.QueryRow(ctx, `SELECT id, name, COALESCE(description, '') FROM careers WHERE id = $1`, id)

	var c Career
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Career{}, ErrCareerNotFound
		}
		return Career{}, err
	}
	return c, nil
}

func (r *PostgresCareerRepository) SkillWeights(ctx context.Context, careerID uuid.UUID) ([]CareerSkillRow, error) {
	rows, err := r.q.Query(ctx,
		`SELECT cs.skill_id, s.name, cs.frequency
		 FROM career_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.career_id = $1
		 ORDER BY cs.frequency DESC, s.name ASC`,
		careerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerSkillRow, 0)
	for rows.Next() {
		var row CareerSkillRow
		if err := rows.Scan(&row.SkillID, &row.SkillName, &row.Frequency); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerRepository) DemandByCategory(ctx context.Context) ([]CareerDemandRow, error) {
	rows, err := r.q.Query(ctx,
		`SELECT cs.career_id, s.category_id, SUM(cs.frequency)
		 FROM career_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE s.category_id IS NOT NULL
		 GROUP BY cs.career_id, s.category_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerDemandRow, 0)
	for rows.Next() {
		var row CareerDemandRow
		if err := rows.Scan(&row.CareerID, &row.CategoryID, &row.Frequency); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
