package seeder

import (
	"context"
	"fmt"

	"skill-bridge/internal/database"
	"skill-bridge/internal/domain/normalize"
)

// RulesSeeder loads the default normalization rules on first boot. Rule
// order matters, so each rule carries its position explicitly.
type RulesSeeder struct{}

func (RulesSeeder) Name() string { return "normalization_rules" }

func (RulesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "normalization_rules", "id", "position", "pattern", "canonical_name"); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM normalization_rules`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, spec := range normalize.DefaultRuleSpecs() {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO normalization_rules (id, position, pattern, canonical_name)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (position) DO NOTHING`,
			i, spec.Pattern, spec.Canonical,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
