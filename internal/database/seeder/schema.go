package seeder

import (
	"context"

	"skill-bridge/internal/database"
)

// SchemaSeeder applies the idempotent DDL for every table the service
// owns. Runs first; the other seeders assume the tables exist.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL UNIQUE,
		category_id uuid NOT NULL REFERENCES categories(id),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS careers (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		description text
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		description text
	)`,
	`CREATE TABLE IF NOT EXISTS knowledge_units (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS career_skills (
		career_id uuid NOT NULL REFERENCES careers(id) ON DELETE CASCADE,
		skill_id uuid NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		frequency int NOT NULL DEFAULT 1 CHECK (frequency >= 0),
		PRIMARY KEY (career_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS knowledge_categories (
		knowledge_unit_id uuid NOT NULL REFERENCES knowledge_units(id) ON DELETE CASCADE,
		category_id uuid NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		weight int NOT NULL CHECK (weight BETWEEN 0 AND 3),
		PRIMARY KEY (knowledge_unit_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS course_knowledge_units (
		course_id uuid NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		knowledge_unit_id uuid NOT NULL REFERENCES knowledge_units(id) ON DELETE CASCADE,
		PRIMARY KEY (course_id, knowledge_unit_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_skills (
		user_id uuid NOT NULL,
		skill_id uuid NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS job_postings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title text NOT NULL,
		description text NOT NULL UNIQUE,
		career_id uuid REFERENCES careers(id) ON DELETE SET NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_posting_skills (
		job_posting_id uuid NOT NULL REFERENCES job_postings(id) ON DELETE CASCADE,
		skill_id uuid NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (job_posting_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS normalization_rules (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		position int NOT NULL UNIQUE,
		pattern text NOT NULL,
		canonical_name text NOT NULL
	)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
