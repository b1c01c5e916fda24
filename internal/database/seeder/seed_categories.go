package seeder

import (
	"context"
	"fmt"

	"skill-bridge/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "categories", "id", "name"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Programming Languages",
		"Frameworks",
		"Databases",
		"DevOps",
		"Cloud",
		"Data",
		"Soft Skills",
		"Pending",
	}

	for _, name := range names {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO categories (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
