package repository

import (
	"context"

	"skill-bridge/internal/database"
	"skill-bridge/internal/domain/normalize"
)

type RuleRepository interface {
	// ListOrdered returns the normalization rules in application order.
	ListOrdered(ctx context.Context) ([]normalize.RuleSpec, error)
}

type PostgresRuleRepository struct {
	q database.Querier
}

func NewPostgresRuleRepository(q database.Querier) *PostgresRuleRepository {
	return &PostgresRuleRepository{q: q}
}

func (r *PostgresRuleRepository) ListOrdered(ctx context.Context) ([]normalize.RuleSpec, error) {
	rows, err := r.q.Query(ctx, `SELECT pattern, canonical_name FROM normalization_rules ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]normalize.RuleSpec, 0)
	for rows.Next() {
		var spec normalize.RuleSpec
		if err := rows.Scan(&spec.Pattern, &spec.Canonical); err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
