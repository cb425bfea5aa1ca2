package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/darkdepths/darkdepths/internal/domain/character"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/redis/go-redis/v9"
)

const characterIndexKey = "characters"

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create creates a new character
func (r *redisRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.Validation("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, characterKey(char.ID)).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to check character '%s'", char.ID)
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("character with ID %s already exists", char.ID)
	}

	return r.set(ctx, char)
}

// Get retrieves a character by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("character not found: %s", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get character '%s'", id)
	}

	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal character '%s'", id)
	}
	return &char, nil
}

// Update updates an existing character
func (r *redisRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.Validation("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, characterKey(char.ID)).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to check character '%s'", char.ID)
	}
	if exists == 0 {
		return apperrors.NotFoundf("character not found: %s", char.ID)
	}

	return r.set(ctx, char)
}

func (r *redisRepository) set(ctx context.Context, char *character.Character) error {
	data, err := json.Marshal(char)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal character '%s'", char.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, characterKey(char.ID), data, 0)
	pipe.SAdd(ctx, characterIndexKey, char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to store character '%s'", char.ID)
	}
	return nil
}

// Delete removes a character
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, characterIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete character '%s'", id)
	}
	return nil
}

// List retrieves all characters
func (r *redisRepository) List(ctx context.Context) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list characters")
	}

	var chars []*character.Character
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			// Index entry without a record; skip rather than fail the listing
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		chars = append(chars, char)
	}
	return chars, nil
}
