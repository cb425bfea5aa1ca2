package dungeon

import (
	"fmt"
	"time"
)

// Dungeon represents a single generated level instance. Once written it is
// immutable except through its rooms' explored/visible flags.
type Dungeon struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	ParentID    string    `json:"parent_id,omitempty"` // instance descended from, empty for level 1
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Difficulty  int       `json:"difficulty"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ExitX       int       `json:"exit_x"`
	ExitY       int       `json:"exit_y"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultName returns the display name for a level depth
func DefaultName(level int) string {
	return fmt.Sprintf("The Dark Depths - Level %d", level)
}

// Contains reports whether (x, y) lies inside the grid
func (d *Dungeon) Contains(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}
