package repository

import (
	"context"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
)

type UserSkillRepository interface {
	SkillIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// ListUserIDs returns every user that declared at least one skill.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type PostgresUserSkillRepository struct {
	q database.Querier
}

func NewPostgresUserSkillRepository(q database.Querier) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{q: q}
}

func (r *PostgresUserSkillRepository) SkillIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.q.Query(ctx, `SELECT skill_id FROM user_skills WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT user_id FROM user_skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
