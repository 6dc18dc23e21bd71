package usecase

import (
	"context"
	"time"

	"pennyledger/internal/domain"
)

// EntryRepository defines data access for entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	List(ctx context.Context) ([]*domain.Entry, error)
	Delete(ctx context.Context, id string) (*domain.Entry, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
