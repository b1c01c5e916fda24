package repository

import (
	"context"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// CourseSupplyRow is the per-category aggregation of what a course
// teaches: knowledge-unit weights summed per category.
type CourseSupplyRow struct {
	CourseID   uuid.UUID
	CategoryID uuid.UUID
	Weight     int
}

type CourseRepository interface {
	ListAll(ctx context.Context) ([]Course, error)
	// SupplyByCategory aggregates every course's taught weight per
	// category in a single pass.
	SupplyByCategory(ctx context.Context) ([]CourseSupplyRow, error)
}

type PostgresCourseRepository struct {
	q database.Querier
}

func NewPostgresCourseRepository(q database.Querier) *PostgresCourseRepository {
	return &PostgresCourseRepository{q: q}
}

func (r *PostgresCourseRepository) ListAll(ctx context.Context) ([]Course, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM courses ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Course, 0)
	for rows.Next() {
		var c Course
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

func (r *PostgresCourseRepository) SupplyByCategory(ctx context.Context) ([]CourseSupplyRow, error) {
	rows, err := r.q.Query(ctx,
		`SELECT cku.course_id, kc.category_id, COALESCE(SUM(kc.weight), 0)
		 FROM course_knowledge_units cku
		 JOIN knowledge_categories kc ON kc.knowledge_unit_id = cku.knowledge_unit_id
		 GROUP BY cku.course_id, kc.category_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CourseSupplyRow, 0)
	for rows.Next() {
		var row CourseSupplyRow
		if err := rows.Scan(&row.CourseID, &row.CategoryID, &row.Weight); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
