package maze

import (
	"math/rand"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
)

// RoomChances holds the per-cell probabilities derived from level difficulty
type RoomChances struct {
	Combat   float64
	Treasure float64
	Merchant float64
}

// ChancesForDifficulty scales room probabilities with depth: deeper levels
// trend toward more combat and scarcer treasure and merchants.
func ChancesForDifficulty(difficulty int) RoomChances {
	return RoomChances{
		Combat:   min(0.6, 0.2+0.1*float64(difficulty)),
		Treasure: max(0.15, 0.3-0.03*float64(difficulty)),
		Merchant: max(0.05, 0.15-0.02*float64(difficulty)),
	}
}

// AssignRoomTypes stamps a semantic type on every cell of a carved grid.
// (0,0) is always the entrance and the far corner always the exit; every
// other cell rolls against the difficulty table based on its degree in the
// passage graph. Walls are never altered.
func AssignRoomTypes(grid *Grid, difficulty int, rng *rand.Rand) {
	chances := ChancesForDifficulty(difficulty)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := grid.At(x, y)

			if x == 0 && y == 0 {
				cell.Type = dungeon.RoomTypeEntrance
				continue
			}
			if x == grid.Width-1 && y == grid.Height-1 {
				cell.Type = dungeon.RoomTypeExit
				continue
			}

			cell.Type = rollRoomType(cell, chances, rng)
		}
	}
}

func rollRoomType(cell *dungeon.Room, chances RoomChances, rng *rand.Rand) dungeon.RoomType {
	r := rng.Float64()

	switch {
	case cell.IsDeadEnd():
		// Dead ends are good spots for treasure and merchants
		switch {
		case r < chances.Treasure:
			return dungeon.RoomTypeTreasure
		case r < chances.Treasure+chances.Merchant:
			return dungeon.RoomTypeMerchant
		case r < chances.Treasure+chances.Merchant+chances.Combat:
			return dungeon.RoomTypeCombat
		}
	case cell.IsJunction():
		// Intersections are more dangerous
		switch {
		case r < chances.Combat:
			return dungeon.RoomTypeCombat
		case r < chances.Combat+0.2:
			return dungeon.RoomTypeTrap
		}
	default:
		// Plain corridor
		switch {
		case r < chances.Combat*0.5:
			return dungeon.RoomTypeCombat
		case r < chances.Combat*0.5+0.1:
			return dungeon.RoomTypeTrap
		case r < chances.Combat*0.5+0.1+chances.Treasure:
			return dungeon.RoomTypeTreasure
		}
	}

	return dungeon.RoomTypeEmpty
}
