package villages

import (
	"context"
	"sync"

	"github.com/darkdepths/darkdepths/internal/domain/village"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	villages map[string]*village.Village // keyed by character ID
}

// NewInMemoryRepository creates a new in-memory village repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		villages: make(map[string]*village.Village),
	}
}

// Create creates a village; fails if the character already has one
func (r *inMemoryRepository) Create(ctx context.Context, v *village.Village) error {
	if v == nil {
		return apperrors.Validation("village cannot be nil")
	}
	if v.CharacterID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.villages[v.CharacterID]; exists {
		return apperrors.AlreadyExistsf("village already exists for character %s", v.CharacterID)
	}

	r.villages[v.CharacterID] = copyVillage(v)
	return nil
}

// Get retrieves the village owned by a character
func (r *inMemoryRepository) Get(ctx context.Context, characterID string) (*village.Village, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.villages[characterID]
	if !exists {
		return nil, apperrors.NotFoundf("village not found for character: %s", characterID)
	}
	return copyVillage(v), nil
}

// Update updates an existing village
func (r *inMemoryRepository) Update(ctx context.Context, v *village.Village) error {
	if v == nil {
		return apperrors.Validation("village cannot be nil")
	}
	if v.CharacterID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.villages[v.CharacterID]; !exists {
		return apperrors.NotFoundf("village not found for character: %s", v.CharacterID)
	}

	r.villages[v.CharacterID] = copyVillage(v)
	return nil
}

// Delete removes a character's village
func (r *inMemoryRepository) Delete(ctx context.Context, characterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.villages[characterID]; !exists {
		return apperrors.NotFoundf("village not found for character: %s", characterID)
	}

	delete(r.villages, characterID)
	return nil
}

// copyVillage deep-copies a village so callers cannot mutate stored state
func copyVillage(v *village.Village) *village.Village {
	copied := *v
	if v.Services != nil {
		copied.Services = make(map[village.ServiceKind]*village.ServiceState, len(v.Services))
		for kind, state := range v.Services {
			stateCopy := *state
			copied.Services[kind] = &stateCopy
		}
	}
	if v.LastEventRoll != nil {
		rollCopy := *v.LastEventRoll
		copied.LastEventRoll = &rollCopy
	}
	return &copied
}
