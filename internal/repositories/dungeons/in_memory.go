package dungeons

import (
	"context"
	"sync"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	dungeons map[string]*dungeon.Dungeon
	rooms    map[string]map[string]*dungeon.Room // dungeon ID -> "x:y" -> room
}

// NewInMemoryRepository creates a new in-memory dungeon repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		dungeons: make(map[string]*dungeon.Dungeon),
		rooms:    make(map[string]map[string]*dungeon.Room),
	}
}

// CreateWithRooms persists the dungeon and its rooms under one lock so a
// partially written level is never observable.
func (r *inMemoryRepository) CreateWithRooms(ctx context.Context, d *dungeon.Dungeon, rooms []*dungeon.Room) error {
	if err := validateRooms(d, rooms); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dungeons[d.ID]; exists {
		return apperrors.AlreadyExistsf("dungeon with ID %s already exists", d.ID)
	}

	dungeonCopy := *d
	r.dungeons[d.ID] = &dungeonCopy

	byCoord := make(map[string]*dungeon.Room, len(rooms))
	for _, room := range rooms {
		roomCopy := *room
		byCoord[roomKeyPart(room.X, room.Y)] = &roomCopy
	}
	r.rooms[d.ID] = byCoord

	return nil
}

// Get retrieves a dungeon by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*dungeon.Dungeon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.dungeons[id]
	if !exists {
		return nil, apperrors.NotFoundf("dungeon not found: %s", id)
	}

	dungeonCopy := *d
	return &dungeonCopy, nil
}

// GetRoom retrieves a single room by coordinate
func (r *inMemoryRepository) GetRoom(ctx context.Context, dungeonID string, x, y int) (*dungeon.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.getRoomLocked(dungeonID, x, y)
}

func (r *inMemoryRepository) getRoomLocked(dungeonID string, x, y int) (*dungeon.Room, error) {
	byCoord, exists := r.rooms[dungeonID]
	if !exists {
		return nil, apperrors.NotFoundf("dungeon not found: %s", dungeonID)
	}
	room, exists := byCoord[roomKeyPart(x, y)]
	if !exists {
		return nil, apperrors.NotFoundf("room (%d,%d) not found in dungeon %s", x, y, dungeonID)
	}

	roomCopy := *room
	return &roomCopy, nil
}

// GetRooms retrieves every room of a dungeon in row-major order
func (r *inMemoryRepository) GetRooms(ctx context.Context, dungeonID string) ([]*dungeon.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.dungeons[dungeonID]
	if !exists {
		return nil, apperrors.NotFoundf("dungeon not found: %s", dungeonID)
	}

	rooms := make([]*dungeon.Room, 0, d.Width*d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			room, err := r.getRoomLocked(dungeonID, x, y)
			if err != nil {
				return nil, err
			}
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

// MarkVisited sets a room's explored and visible flags. Idempotent.
func (r *inMemoryRepository) MarkVisited(ctx context.Context, dungeonID string, x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byCoord, exists := r.rooms[dungeonID]
	if !exists {
		return apperrors.NotFoundf("dungeon not found: %s", dungeonID)
	}
	room, exists := byCoord[roomKeyPart(x, y)]
	if !exists {
		return apperrors.NotFoundf("room (%d,%d) not found in dungeon %s", x, y, dungeonID)
	}

	room.Explored = true
	room.Visible = true
	return nil
}

// FindByCharacterAndLevel returns the newest instance at a level
func (r *inMemoryRepository) FindByCharacterAndLevel(ctx context.Context, characterID string, level int) (*dungeon.Dungeon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *dungeon.Dungeon
	for _, d := range r.dungeons {
		if d.CharacterID != characterID || d.Level != level {
			continue
		}
		if newest == nil || d.CreatedAt.After(newest.CreatedAt) {
			newest = d
		}
	}
	if newest == nil {
		return nil, apperrors.NotFoundf("no dungeon at level %d for character %s", level, characterID)
	}

	dungeonCopy := *newest
	return &dungeonCopy, nil
}
