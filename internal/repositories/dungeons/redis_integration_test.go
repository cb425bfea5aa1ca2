//go:build integration
// +build integration

package dungeons_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/maze"
	"github.com/darkdepths/darkdepths/internal/repositories/dungeons"
	"github.com/darkdepths/darkdepths/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := dungeons.NewRedisRepository(&dungeons.RedisRepoConfig{Client: client})
	ctx := context.Background()

	carveLevel := func(t *testing.T, id string, level int, createdAt time.Time) (*dungeon.Dungeon, []*dungeon.Room) {
		grid, err := maze.Carve(8, 8, rand.New(rand.NewSource(int64(level))))
		require.NoError(t, err)
		maze.AssignRoomTypes(grid, level, rand.New(rand.NewSource(int64(level))))

		d := &dungeon.Dungeon{
			ID:          id,
			CharacterID: "char-int",
			Name:        dungeon.DefaultName(level),
			Level:       level,
			Difficulty:  level,
			Width:       8,
			Height:      8,
			ExitX:       7,
			ExitY:       7,
			CreatedAt:   createdAt,
		}
		rooms := grid.Rooms()
		for _, room := range rooms {
			room.DungeonID = id
		}
		return d, rooms
	}

	t.Run("full level round trip", func(t *testing.T) {
		d, rooms := carveLevel(t, "int-d1", 1, time.Now())
		require.NoError(t, repo.CreateWithRooms(ctx, d, rooms))

		got, err := repo.Get(ctx, "int-d1")
		require.NoError(t, err)
		assert.Equal(t, d.Name, got.Name)

		all, err := repo.GetRooms(ctx, "int-d1")
		require.NoError(t, err)
		assert.Len(t, all, 64)
		assert.Equal(t, dungeon.RoomTypeEntrance, all[0].Type)
		assert.Equal(t, dungeon.RoomTypeExit, all[63].Type)
	})

	t.Run("mark visited is idempotent", func(t *testing.T) {
		require.NoError(t, repo.MarkVisited(ctx, "int-d1", 3, 4))
		require.NoError(t, repo.MarkVisited(ctx, "int-d1", 3, 4))

		room, err := repo.GetRoom(ctx, "int-d1", 3, 4)
		require.NoError(t, err)
		assert.True(t, room.Explored)
		assert.True(t, room.Visible)
	})

	t.Run("newest instance wins at a level", func(t *testing.T) {
		older, olderRooms := carveLevel(t, "int-old", 2, time.Now().Add(-time.Hour))
		newer, newerRooms := carveLevel(t, "int-new", 2, time.Now())
		require.NoError(t, repo.CreateWithRooms(ctx, older, olderRooms))
		require.NoError(t, repo.CreateWithRooms(ctx, newer, newerRooms))

		got, err := repo.FindByCharacterAndLevel(ctx, "char-int", 2)
		require.NoError(t, err)
		assert.Equal(t, "int-new", got.ID)
	})

	t.Run("missing level", func(t *testing.T) {
		_, err := repo.FindByCharacterAndLevel(ctx, "char-int", 9)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
