package villages

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/darkdepths/darkdepths/internal/domain/village"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/redis/go-redis/v9"
)

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed village repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func villageKey(characterID string) string {
	return fmt.Sprintf("village:char:%s", characterID)
}

// Create creates a village; SETNX keeps the one-per-character invariant
func (r *redisRepository) Create(ctx context.Context, v *village.Village) error {
	if v == nil {
		return apperrors.Validation("village cannot be nil")
	}
	if v.CharacterID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal village")
	}

	created, err := r.client.SetNX(ctx, villageKey(v.CharacterID), data, 0).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to store village for character '%s'", v.CharacterID)
	}
	if !created {
		return apperrors.AlreadyExistsf("village already exists for character %s", v.CharacterID)
	}
	return nil
}

// Get retrieves the village owned by a character
func (r *redisRepository) Get(ctx context.Context, characterID string) (*village.Village, error) {
	data, err := r.client.Get(ctx, villageKey(characterID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("village not found for character: %s", characterID)
		}
		return nil, apperrors.Wrapf(err, "failed to get village for character '%s'", characterID)
	}

	var v village.Village
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal village for character '%s'", characterID)
	}
	return &v, nil
}

// Update updates an existing village
func (r *redisRepository) Update(ctx context.Context, v *village.Village) error {
	if v == nil {
		return apperrors.Validation("village cannot be nil")
	}
	if v.CharacterID == "" {
		return apperrors.Validation("character ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, villageKey(v.CharacterID)).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to check village for character '%s'", v.CharacterID)
	}
	if exists == 0 {
		return apperrors.NotFoundf("village not found for character: %s", v.CharacterID)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal village")
	}
	if err := r.client.Set(ctx, villageKey(v.CharacterID), data, 0).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to store village for character '%s'", v.CharacterID)
	}
	return nil
}

// Delete removes a character's village
func (r *redisRepository) Delete(ctx context.Context, characterID string) error {
	if err := r.client.Del(ctx, villageKey(characterID)).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to delete village for character '%s'", characterID)
	}
	return nil
}
