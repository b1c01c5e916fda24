package repository

import (
	"context"
	"time"

	"skill-bridge/internal/database"

	"github.com/google/uuid"
)

// ReconcileStore scopes the write side of posting reconciliation to a
// single transaction: either every skill row, posting link and career
// counter mutation lands, or none of them do.
type ReconcileStore interface {
	InTx(ctx context.Context, fn func(tx ReconcileTx) error) error
}

// ReconcileTx exposes the primitives the reconciliation workflow composes
// inside one transaction. Counter mutations are single-statement upserts
// and guarded decrements so concurrent confirmations never lose updates.
type ReconcileTx interface {
	FindPosting(ctx context.Context, id uuid.UUID) (JobPosting, error)

	FindSkillByID(ctx context.Context, id uuid.UUID) (Skill, error)
	FindSkillByName(ctx context.Context, name string) (Skill, error)
	CreateSkill(ctx context.Context, name string, categoryID uuid.UUID) (Skill, error)
	RenameSkill(ctx context.Context, id uuid.UUID, name string) error
	UpdateSkillCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error

	EnsureCategory(ctx context.Context, name string) (Category, error)

	// LinkSkill inserts the (posting, skill) association; reports false
	// when the link already existed.
	LinkSkill(ctx context.Context, postingID, skillID uuid.UUID) (bool, error)
	UnlinkSkill(ctx context.Context, postingID, skillID uuid.UUID) (bool, error)
	LinkedSkillIDs(ctx context.Context, postingID uuid.UUID) ([]uuid.UUID, error)
	DeleteLinks(ctx context.Context, postingID uuid.UUID) error

	// IncrementCareerSkill adds 1 to the (career, skill) frequency,
	// creating the row at frequency 1 when absent.
	IncrementCareerSkill(ctx context.Context, careerID, skillID uuid.UUID) error
	// DecrementCareerSkill subtracts 1 and removes the row when the
	// counter reaches zero; the frequency never goes negative.
	DecrementCareerSkill(ctx context.Context, careerID, skillID uuid.UUID) error

	DeletePosting(ctx context.Context, id uuid.UUID) error
}

type PostgresReconcileStore struct {
	db database.DB
}

func NewPostgresReconcileStore(db database.DB) *PostgresReconcileStore {
	return &PostgresReconcileStore{db: db}
}

func (s *PostgresReconcileStore) InTx(ctx context.Context, fn func(tx ReconcileTx) error) error {
	return s.db.InTx(ctx, func(q database.Querier) error {
		return fn(&pgReconcileTx{q: q})
	})
}

type pgReconcileTx struct {
	q database.Querier
}

func (t *pgReconcileTx) FindPosting(ctx context.Context, id uuid.UUID) (JobPosting, error) {
	return NewPostgresPostingRepository(t.q).FindByID(ctx, id)
}

func (t *pgReconcileTx) FindSkillByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	return NewPostgresSkillRepository(t.q).FindByID(ctx, id)
}

func (t *pgReconcileTx) FindSkillByName(ctx context.Context, name string) (Skill, error) {
	return NewPostgresSkillRepository(t.q).FindByName(ctx, name)
}

func (t *pgReconcileTx) CreateSkill(ctx context.Context, name string, categoryID uuid.UUID) (Skill, error) {
	id := uuid.New()
	_, err := t.q.Exec(ctx,
		`INSERT INTO skills (id, name, category_id, updated_at) VALUES ($1, $2, $3, $4)`,
		id, name, categoryID, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Skill{}, ErrSkillNameTaken
		}
		if isForeignKeyViolation(err) {
			return Skill{}, ErrCategoryNotFound
		}
		return Skill{}, err
	}
	return t.FindSkillByID(ctx, id)
}

func (t *pgReconcileTx) RenameSkill(ctx context.Context, id uuid.UUID, name string) error {
	affected, err := t.q.Exec(ctx,
		`UPDATE skills SET name = $1, updated_at = $2 WHERE id = $3`,
		name, time.Now().UTC(), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSkillNameTaken
		}
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (t *pgReconcileTx) UpdateSkillCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	affected, err := t.q.Exec(ctx,
		`UPDATE skills SET category_id = $1, updated_at = $2 WHERE id = $3`,
		categoryID, time.Now().UTC(), id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (t *pgReconcileTx) EnsureCategory(ctx context.Context, name string) (Category, error) {
	return NewPostgresCategoryRepository(t.q).EnsureByName(ctx, name)
}

func (t *pgReconcileTx) LinkSkill(ctx context.Context, postingID, skillID uuid.UUID) (bool, error) {
	affected, err := t.q.Exec(ctx,
		`INSERT INTO job_posting_skills (job_posting_id, skill_id)
		 VALUES ($1, $2)
		 ON CONFLICT (job_posting_id, skill_id) DO NOTHING`,
		postingID, skillID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (t *pgReconcileTx) UnlinkSkill(ctx context.Context, postingID, skillID uuid.UUID) (bool, error) {
	affected, err := t.q.Exec(ctx,
		`DELETE FROM job_posting_skills WHERE job_posting_id = $1 AND skill_id = $2`,
		postingID, skillID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (t *pgReconcileTx) LinkedSkillIDs(ctx context.Context, postingID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := t.q.Query(ctx,
		`SELECT skill_id FROM job_posting_skills WHERE job_posting_id = $1`,
		postingID,
	)
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

func (t *pgReconcileTx) DeleteLinks(ctx context.Context, postingID uuid.UUID) error {
	_, err := t.q.Exec(ctx, `DELETE FROM job_posting_skills WHERE job_posting_id = $1`, postingID)
	return err
}

func (t *pgReconcileTx) IncrementCareerSkill(ctx context.Context, careerID, skillID uuid.UUID) error {
	_, err := t.q.Exec(ctx,
		`INSERT INTO career_skills (career_id, skill_id, frequency)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (career_id, skill_id) DO UPDATE SET frequency = career_skills.frequency + 1`,
		careerID, skillID,
	)
	return err
}

func (t *pgReconcileTx) DecrementCareerSkill(ctx context.Context, careerID, skillID uuid.UUID) error {
	_, err := t.q.Exec(ctx,
		`UPDATE career_skills SET frequency = frequency - 1
		 WHERE career_id = $1 AND skill_id = $2 AND frequency > 0`,
		careerID, skillID,
	)
	if err != nil {
		return err
	}

	_, err = t.q.Exec(ctx,
		`DELETE FROM career_skills WHERE career_id = $1 AND skill_id = $2 AND frequency <= 0`,
		careerID, skillID,
	)
	return err
}

func (t *pgReconcileTx) DeletePosting(ctx context.Context, id uuid.UUID) error {
	affected, err := t.q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostingNotFound
	}
	return nil
}
