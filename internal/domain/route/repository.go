package route

import (
	"context"

	"github.com/google/uuid"
)

// TokenRepository defines the persistence contract for issued route tokens.
type TokenRepository interface {
	// FindByID retrieves a token record by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*TokenRecord, error)

	// ListAll retrieves all token records, newest first, with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*TokenRecord, int64, error)

	// Save persists a new token record.
	Save(ctx context.Context, record *TokenRecord) error
}
