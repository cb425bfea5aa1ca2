package villages

import (
	"context"

	"github.com/darkdepths/darkdepths/internal/domain/village"
)

// Repository defines the interface for village storage operations. Villages
// are keyed by their owning character: one village per character.
type Repository interface {
	// Create creates a village; fails if the character already has one
	Create(ctx context.Context, v *village.Village) error

	// Get retrieves the village owned by a character
	Get(ctx context.Context, characterID string) (*village.Village, error)

	// Update updates an existing village
	Update(ctx context.Context, v *village.Village) error

	// Delete removes a character's village
	Delete(ctx context.Context, characterID string) error
}
