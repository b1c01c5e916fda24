package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	CodeDuplicatePostingDescription = "DUPLICATE_POSTING_DESCRIPTION"
	CodeSkillNameConflict           = "SKILL_NAME_CONFLICT"
)

// ConflictError carries a stable machine-readable code so callers can
// distinguish conflicts without parsing messages.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(code, message string) *ConflictError {
	return &ConflictError{Code: code, Message: message}
}

// AsConflict unwraps err into a ConflictError when it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
