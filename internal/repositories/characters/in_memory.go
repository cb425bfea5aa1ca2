package characters

import (
	"context"
	"sync"

	"github.com/darkdepths/darkdepths/internal/domain/character"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create creates a new character
func (r *inMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.Validation("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperrors.AlreadyExistsf("character with ID %s already exists", char.ID)
	}

	r.characters[char.ID] = copyCharacter(char)
	return nil
}

// Get retrieves a character by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperrors.NotFoundf("character not found: %s", id)
	}
	return copyCharacter(char), nil
}

// Update updates an existing character
func (r *inMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.Validation("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperrors.NotFoundf("character not found: %s", char.ID)
	}

	r.characters[char.ID] = copyCharacter(char)
	return nil
}

// Delete removes a character
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperrors.NotFoundf("character not found: %s", id)
	}

	delete(r.characters, id)
	return nil
}

// List retrieves all characters
func (r *inMemoryRepository) List(ctx context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := make([]*character.Character, 0, len(r.characters))
	for _, char := range r.characters {
		chars = append(chars, copyCharacter(char))
	}
	return chars, nil
}

// copyCharacter deep-copies a character so callers cannot mutate stored state
func copyCharacter(char *character.Character) *character.Character {
	copied := *char
	if char.Skills != nil {
		copied.Skills = make(character.Skills, len(char.Skills))
		for k, v := range char.Skills {
			copied.Skills[k] = v
		}
	}
	return &copied
}
