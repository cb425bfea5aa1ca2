package dungeons

//go:generate mockgen -destination=mock/mock_repository.go -package=mockdungeons -source=repository.go

import (
	"context"
	"fmt"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

// Repository is the dungeon level store: it persists generated instances
// atomically and tracks per-room exploration state.
type Repository interface {
	// CreateWithRooms persists a dungeon and its full room set as one unit.
	// Partial writes must never be observable.
	CreateWithRooms(ctx context.Context, d *dungeon.Dungeon, rooms []*dungeon.Room) error

	// Get retrieves a dungeon by ID
	Get(ctx context.Context, id string) (*dungeon.Dungeon, error)

	// GetRoom retrieves a single room by coordinate
	GetRoom(ctx context.Context, dungeonID string, x, y int) (*dungeon.Room, error)

	// GetRooms retrieves every room of a dungeon in row-major order
	GetRooms(ctx context.Context, dungeonID string) ([]*dungeon.Room, error)

	// MarkVisited sets a room's explored and visible flags. Idempotent.
	MarkVisited(ctx context.Context, dungeonID string, x, y int) error

	// FindByCharacterAndLevel returns the most recently created instance a
	// character owns at the given level depth
	FindByCharacterAndLevel(ctx context.Context, characterID string, level int) (*dungeon.Dungeon, error)
}

// validateRooms enforces the store's create contract: every room in bounds,
// one room per coordinate, all coordinates covered.
func validateRooms(d *dungeon.Dungeon, rooms []*dungeon.Room) error {
	if d == nil {
		return apperrors.Validation("dungeon cannot be nil")
	}
	if d.ID == "" {
		return apperrors.Validation("dungeon ID cannot be empty")
	}
	if d.Width < 2 || d.Height < 2 {
		return apperrors.Validationf("dungeon dimensions must be at least 2x2, got %dx%d", d.Width, d.Height)
	}
	if len(rooms) != d.Width*d.Height {
		return apperrors.Validationf("expected %d rooms for %dx%d dungeon, got %d",
			d.Width*d.Height, d.Width, d.Height, len(rooms))
	}

	seen := make(map[[2]int]bool, len(rooms))
	for _, room := range rooms {
		if room == nil {
			return apperrors.Validation("room cannot be nil")
		}
		if !d.Contains(room.X, room.Y) {
			return apperrors.Validationf("room (%d,%d) out of bounds for %dx%d dungeon",
				room.X, room.Y, d.Width, d.Height)
		}
		key := [2]int{room.X, room.Y}
		if seen[key] {
			return apperrors.Validationf("duplicate room at (%d,%d)", room.X, room.Y)
		}
		seen[key] = true
	}
	return nil
}

func roomKeyPart(x, y int) string {
	return fmt.Sprintf("%d:%d", x, y)
}
