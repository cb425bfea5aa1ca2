package maze

import (
	"math/rand"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
)

type point struct {
	x, y int
}

// Carve builds a perfect maze over a width x height grid using randomized
// depth-first search. Every cell starts fully walled; passages are knocked
// out symmetrically until the passage graph is a spanning tree: connected,
// cycle-free, exactly width*height-1 openings.
func Carve(width, height int, rng *rand.Rand) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, apperrors.Validationf("dungeon dimensions must be at least 2x2, got %dx%d", width, height)
	}

	grid := newGrid(width, height)

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	stack := []point{{0, 0}}
	visited[0][0] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		neighbors := unvisitedNeighbors(current, visited, width, height)
		if len(neighbors) == 0 {
			// Dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		dir := neighbors[rng.Intn(len(neighbors))]
		dx, dy := dir.Delta()
		next := point{current.x + dx, current.y + dy}

		grid.At(current.x, current.y).SetWall(dir, false)
		grid.At(next.x, next.y).SetWall(dir.Opposite(), false)

		visited[next.y][next.x] = true
		stack = append(stack, next)
	}

	return grid, nil
}

// unvisitedNeighbors returns the directions from p that lead to an in-bounds,
// not yet visited cell
func unvisitedNeighbors(p point, visited [][]bool, width, height int) []dungeon.Direction {
	var dirs []dungeon.Direction
	for _, dir := range dungeon.Directions() {
		dx, dy := dir.Delta()
		nx, ny := p.x+dx, p.y+dy
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		if !visited[ny][nx] {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
