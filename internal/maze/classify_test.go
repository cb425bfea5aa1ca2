package maze_test

import (
	"math/rand"
	"testing"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	"github.com/darkdepths/darkdepths/internal/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRoomTypes_FixedAnchors(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, err := maze.Carve(10, 8, rng)
		require.NoError(t, err)

		maze.AssignRoomTypes(grid, 3, rng)

		assert.Equal(t, dungeon.RoomTypeEntrance, grid.At(0, 0).Type)
		assert.Equal(t, dungeon.RoomTypeExit, grid.At(9, 7).Type)
	}
}

func TestAssignRoomTypes_DoesNotTouchWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	grid, err := maze.Carve(10, 10, rng)
	require.NoError(t, err)

	type walls struct{ n, s, e, w bool }
	before := make(map[[2]int]walls)
	for _, room := range grid.Rooms() {
		before[[2]int{room.X, room.Y}] = walls{room.NorthWall, room.SouthWall, room.EastWall, room.WestWall}
	}

	maze.AssignRoomTypes(grid, 5, rng)

	for _, room := range grid.Rooms() {
		assert.Equal(t, before[[2]int{room.X, room.Y}],
			walls{room.NorthWall, room.SouthWall, room.EastWall, room.WestWall})
	}
}

func TestAssignRoomTypes_NoBossRooms(t *testing.T) {
	// BOSS is reserved; generation must never emit it
	rng := rand.New(rand.NewSource(11))
	grid, err := maze.Carve(20, 20, rng)
	require.NoError(t, err)
	maze.AssignRoomTypes(grid, 10, rng)

	for _, room := range grid.Rooms() {
		assert.NotEqual(t, dungeon.RoomTypeBoss, room.Type)
	}
}

func TestChancesForDifficulty(t *testing.T) {
	shallow := maze.ChancesForDifficulty(1)
	assert.InDelta(t, 0.3, shallow.Combat, 1e-9)
	assert.InDelta(t, 0.27, shallow.Treasure, 1e-9)
	assert.InDelta(t, 0.13, shallow.Merchant, 1e-9)

	// Deep levels hit the clamps
	deep := maze.ChancesForDifficulty(50)
	assert.InDelta(t, 0.6, deep.Combat, 1e-9)
	assert.InDelta(t, 0.15, deep.Treasure, 1e-9)
	assert.InDelta(t, 0.05, deep.Merchant, 1e-9)
}

func TestAssignRoomTypes_DifficultyMonotonicity(t *testing.T) {
	// Statistical: across many generations the combat fraction should rise
	// with difficulty while the treasure fraction falls.
	fractionAt := func(difficulty int) (combat, treasure float64) {
		rng := rand.New(rand.NewSource(int64(difficulty) * 1000))
		var combatCount, treasureCount, total int
		for i := 0; i < 30; i++ {
			grid, err := maze.Carve(20, 20, rng)
			require.NoError(t, err)
			maze.AssignRoomTypes(grid, difficulty, rng)

			for _, room := range grid.Rooms() {
				switch room.Type {
				case dungeon.RoomTypeEntrance, dungeon.RoomTypeExit:
					continue
				case dungeon.RoomTypeCombat:
					combatCount++
				case dungeon.RoomTypeTreasure:
					treasureCount++
				}
				total++
			}
		}
		return float64(combatCount) / float64(total), float64(treasureCount) / float64(total)
	}

	shallowCombat, shallowTreasure := fractionAt(1)
	deepCombat, deepTreasure := fractionAt(8)

	assert.Greater(t, deepCombat, shallowCombat)
	assert.Less(t, deepTreasure, shallowTreasure)
}
