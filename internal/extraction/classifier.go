package extraction

import "context"

// Classifier is the external text-classification collaborator. It receives
// a job description plus instructions and returns a raw response expected
// to contain a single JSON payload with the candidate skills. The contract
// is best effort: callers must tolerate any shape deviation.
type Classifier interface {
	Classify(ctx context.Context, description string, instructions string) (string, error)
}
