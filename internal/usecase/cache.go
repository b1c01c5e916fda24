package usecase

import (
	"context"
	"time"
)

// Cache is the read-through cache contract the usecases depend on.
// Implementations are best effort; a miss and an unavailable cache look
// the same to callers.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	compatCacheKeyPrefix = "compat:user:"
	mappingMatrixKey     = "mapping:matrix"
)
