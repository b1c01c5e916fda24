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

type Skill struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	UpdatedAt    time.Time
}

type SkillRepository interface {
	ListAll(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (Skill, error)
	// FindByName matches the canonical name case-insensitively.
	FindByName(ctx context.Context, name string) (Skill, error)
}

type PostgresSkillRepository struct {
	q database.Querier
}

func NewPostgresSkillRepository(q database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{q: q}
}

const skillSelect = `
	SELECT s.id, s.name, s.category_id, c.name, s.updated_at
	FROM skills s
	JOIN categories c ON c.id = s.category_id`

func (r *PostgresSkillRepository) ListAll(ctx context.Context) ([]Skill, error) {
	rows, err := r.q.Query(ctx, skillSelect+` ORDER BY s.name ASC`)
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

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	row := r.q.QueryRow(ctx, skillSelect+` WHERE s.id = $1`, id)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (Skill, error) {
	row := r.q.QueryRow(ctx, skillSelect+` WHERE LOWER(s.name) = LOWER($1)`, name)
	return scanSkill(row)
}

func scanSkill(row database.Row) (Skill, error) {
	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}
