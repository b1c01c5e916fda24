package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PendingCategoryName is the lazily created fallback for skills with no
// usable category suggestion.
const PendingCategoryName = "Pending"

type Category struct {
	ID   uuid.UUID
	Name string
}

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]Category, error)
	FindByName(ctx context.Context, name string) (Category, error)
	// EnsureByName returns the category with the given name, creating it
	// when absent. Safe under concurrent callers.
	EnsureByName(ctx context.Context, name string) (Category, error)
}

type PostgresCategoryRepository struct {
	q database.Querier
}

func NewPostgresCategoryRepository(q database.Querier) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{q: q}
}

func (r *PostgresCategoryRepository) ListAll(ctx context.Context) ([]Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) FindByName(ctx context.Context, name string) (Category, error) {
	row := r.q.QueryRow(ctx, `SELECT id, name FROM categories WHERE LOWER(name) = LOWER($1)`, name)

	var c Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) EnsureByName(ctx context.Context, name string) (Category, error) {
	c, err := r.FindByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return Category{}, err
	}

	_, err = r.q.Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name,
	)
	if err != nil {
		return Category{}, err
	}

	return r.FindByName(ctx, name)
}
