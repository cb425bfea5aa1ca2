// Package maze carves perfect mazes and classifies their rooms. It is pure:
// all randomness comes from the caller's rand source and no I/O happens here.
package maze

import (
	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
)

// Grid is a carved level before it is bound to a dungeon instance
type Grid struct {
	Width  int
	Height int
	cells  [][]*dungeon.Room // indexed [y][x]
}

func newGrid(width, height int) *Grid {
	cells := make([][]*dungeon.Room, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]*dungeon.Room, width)
		for x := 0; x < width; x++ {
			cells[y][x] = &dungeon.Room{
				X:         x,
				Y:         y,
				Type:      dungeon.RoomTypeEmpty,
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// At returns the cell at (x, y), or nil when out of bounds
func (g *Grid) At(x, y int) *dungeon.Room {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.cells[y][x]
}

// Rooms flattens the grid in row-major order
func (g *Grid) Rooms() []*dungeon.Room {
	rooms := make([]*dungeon.Room, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		rooms = append(rooms, g.cells[y]...)
	}
	return rooms
}
