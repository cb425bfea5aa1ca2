package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/darkdepths/darkdepths/internal/domain/character"
)

// Repository defines the interface for character storage operations
type Repository interface {
	// Create creates a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// Update updates an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// List retrieves all characters
	List(ctx context.Context) ([]*character.Character, error)
}
