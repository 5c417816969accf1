package model

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository persists the entry IDs of a cart session so a reload within
// the session lifetime can restore it.
type CartRepository interface {
	// Save replaces the stored entries for the session.
	Save(ctx context.Context, sessionID string, ids []uuid.UUID) error

	// Load returns the stored entries in cart order; an unknown session yields none.
	Load(ctx context.Context, sessionID string) ([]uuid.UUID, error)

	// Delete drops the stored session.
	Delete(ctx context.Context, sessionID string) error
}
