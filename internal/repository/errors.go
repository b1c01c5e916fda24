package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCareerNotFound   = errors.New("career not found")
	ErrPostingNotFound  = errors.New("job posting not found")

	ErrDuplicateDescription = errors.New("job posting description already exists")
	ErrSkillNameTaken       = errors.New("skill name already taken")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
