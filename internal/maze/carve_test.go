package maze_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarve_RejectsDegenerateDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, dims := range [][2]int{{1, 5}, {5, 1}, {0, 0}, {-3, 4}} {
		_, err := maze.Carve(dims[0], dims[1], rng)
		require.Error(t, err, "dims %v", dims)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestCarve_Connectivity(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 9}, {9, 2}, {5, 5}, {20, 20}, {13, 7}}

	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d-seed%d", size[0], size[1], seed), func(t *testing.T) {
				rng := rand.New(rand.NewSource(seed))
				grid, err := maze.Carve(size[0], size[1], rng)
				require.NoError(t, err)

				assert.Equal(t, size[0]*size[1], reachableFromOrigin(grid),
					"breadth-first traversal from (0,0) must visit every cell")
			})
		}
	}
}

func TestCarve_Acyclicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range [][2]int{{2, 2}, {8, 8}, {20, 20}} {
		grid, err := maze.Carve(size[0], size[1], rng)
		require.NoError(t, err)

		// A spanning tree over N cells has exactly N-1 edges. Count each
		// wall-free adjacent pair once, from its east/south side.
		edges := 0
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				cell := grid.At(x, y)
				if !cell.EastWall {
					edges++
				}
				if !cell.SouthWall {
					edges++
				}
			}
		}
		assert.Equal(t, size[0]*size[1]-1, edges)
	}
}

func TestCarve_WallSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid, err := maze.Carve(12, 9, rng)
	require.NoError(t, err)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := grid.At(x, y)
			for _, dir := range dungeon.Directions() {
				dx, dy := dir.Delta()
				neighbor := grid.At(x+dx, y+dy)
				if neighbor == nil {
					// Border sides must keep their wall
					assert.True(t, cell.Wall(dir), "border wall missing at (%d,%d) %s", x, y, dir)
					continue
				}
				assert.Equal(t, cell.Wall(dir), neighbor.Wall(dir.Opposite()),
					"wall mismatch between (%d,%d) and (%d,%d)", x, y, x+dx, y+dy)
			}
		}
	}
}

func TestCarve_EveryCellHasAnOpening(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	grid, err := maze.Carve(10, 10, rng)
	require.NoError(t, err)

	for _, room := range grid.Rooms() {
		assert.GreaterOrEqual(t, room.Openings(), 1, "cell (%d,%d)", room.X, room.Y)
	}
}

func TestCarve_DeterministicForSeed(t *testing.T) {
	first, err := maze.Carve(15, 15, rand.New(rand.NewSource(1234)))
	require.NoError(t, err)
	second, err := maze.Carve(15, 15, rand.New(rand.NewSource(1234)))
	require.NoError(t, err)

	for y := 0; y < first.Height; y++ {
		for x := 0; x < first.Width; x++ {
			assert.Equal(t, *first.At(x, y), *second.At(x, y))
		}
	}
}

// reachableFromOrigin walks the passage graph breadth-first from (0,0)
func reachableFromOrigin(grid *maze.Grid) int {
	seen := make(map[[2]int]bool)
	queue := [][2]int{{0, 0}}
	seen[[2]int{0, 0}] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cell := grid.At(p[0], p[1])

		for _, dir := range dungeon.Directions() {
			if cell.Wall(dir) {
				continue
			}
			dx, dy := dir.Delta()
			next := [2]int{p[0] + dx, p[1] + dy}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen)
}
