package dungeons

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/redis/go-redis/v9"
)

// Key layout:
//
//	dungeon:<id>                        JSON dungeon metadata
//	dungeon:<id>:room:<x>:<y>           JSON room
//	character:<id>:level:<n>:dungeons   ZSET of dungeon IDs scored by CreatedAt
type redisRepository struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func dungeonKey(id string) string {
	return fmt.Sprintf("dungeon:%s", id)
}

func roomKey(dungeonID string, x, y int) string {
	return fmt.Sprintf("dungeon:%s:room:%s", dungeonID, roomKeyPart(x, y))
}

func levelIndexKey(characterID string, level int) string {
	return fmt.Sprintf("character:%s:level:%d:dungeons", characterID, level)
}

// CreateWithRooms persists the dungeon, all rooms and the level index in a
// single MULTI/EXEC so a partially written level is never observable.
func (r *redisRepository) CreateWithRooms(ctx context.Context, d *dungeon.Dungeon, rooms []*dungeon.Room) error {
	if err := validateRooms(d, rooms); err != nil {
		return err
	}

	dungeonData, err := json.Marshal(d)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal dungeon")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, dungeonKey(d.ID), dungeonData, 0)
	for _, room := range rooms {
		roomData, marshalErr := json.Marshal(room)
		if marshalErr != nil {
			return apperrors.Wrapf(marshalErr, "failed to marshal room (%d,%d)", room.X, room.Y)
		}
		pipe.Set(ctx, roomKey(d.ID, room.X, room.Y), roomData, 0)
	}
	// Microseconds, not nanos: nanosecond epochs exceed float64 precision, and
	// two near-simultaneous scores collapsing to one value would break the
	// newest-wins ordering of the index.
	pipe.ZAdd(ctx, levelIndexKey(d.CharacterID, d.Level), redis.Z{
		Score:  float64(d.CreatedAt.UnixMicro()),
		Member: d.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to persist dungeon level").
			WithMeta("dungeon_id", d.ID)
	}
	return nil
}

// Get retrieves a dungeon by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*dungeon.Dungeon, error) {
	data, err := r.client.Get(ctx, dungeonKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("dungeon not found: %s", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get dungeon '%s'", id)
	}

	var d dungeon.Dungeon
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal dungeon '%s'", id)
	}
	return &d, nil
}

// GetRoom retrieves a single room by coordinate
func (r *redisRepository) GetRoom(ctx context.Context, dungeonID string, x, y int) (*dungeon.Room, error) {
	data, err := r.client.Get(ctx, roomKey(dungeonID, x, y)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("room (%d,%d) not found in dungeon %s", x, y, dungeonID)
		}
		return nil, apperrors.Wrapf(err, "failed to get room (%d,%d) of dungeon '%s'", x, y, dungeonID)
	}

	var room dungeon.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal room (%d,%d) of dungeon '%s'", x, y, dungeonID)
	}
	return &room, nil
}

// GetRooms retrieves every room of a dungeon in row-major order
func (r *redisRepository) GetRooms(ctx context.Context, dungeonID string) ([]*dungeon.Room, error) {
	d, err := r.Get(ctx, dungeonID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, d.Width*d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			keys = append(keys, roomKey(dungeonID, x, y))
		}
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get rooms of dungeon '%s'", dungeonID)
	}

	rooms := make([]*dungeon.Room, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, apperrors.Internalf("room missing for key %s", keys[i]).
				WithMeta("dungeon_id", dungeonID)
		}
		var room dungeon.Room
		if err := json.Unmarshal([]byte(raw), &room); err != nil {
			return nil, apperrors.Wrapf(err, "failed to unmarshal room for key %s", keys[i])
		}
		rooms = append(rooms, &room)
	}
	return rooms, nil
}

// MarkVisited sets a room's explored and visible flags. Re-marking an
// already-explored room rewrites the same state.
func (r *redisRepository) MarkVisited(ctx context.Context, dungeonID string, x, y int) error {
	room, err := r.GetRoom(ctx, dungeonID, x, y)
	if err != nil {
		return err
	}

	room.Explored = true
	room.Visible = true

	data, err := json.Marshal(room)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal room (%d,%d)", x, y)
	}
	if err := r.client.Set(ctx, roomKey(dungeonID, x, y), data, 0).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to mark room (%d,%d) visited", x, y)
	}
	return nil
}

// FindByCharacterAndLevel returns the newest instance at a level, resolved
// from the CreatedAt-scored index
func (r *redisRepository) FindByCharacterAndLevel(ctx context.Context, characterID string, level int) (*dungeon.Dungeon, error) {
	ids, err := r.client.ZRevRange(ctx, levelIndexKey(characterID, level), 0, 0).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to query level index for character '%s'", characterID)
	}
	if len(ids) == 0 {
		return nil, apperrors.NotFoundf("no dungeon at level %d for character %s", level, characterID)
	}
	return r.Get(ctx, ids[0])
}
