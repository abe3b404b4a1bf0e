package repository

import (
	"context"
	"encoding/json"
	"errors"

	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

type redisTrackedUserRepository struct {
	rdb *redis.Client
	key string
}

func NewRedisTrackedUserRepository(rdb *redis.Client, key string) TrackedUserRepository {
	return &redisTrackedUserRepository{rdb: rdb, key: key}
}

func (r *redisTrackedUserRepository) Load(ctx context.Context) ([]model.UserRecord, error) {
	payload, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, common.Errorf("redisTrackedUserRepository.Load: %w", err)
	}

	var users []model.UserRecord
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, common.Errorf("redisTrackedUserRepository.Load: decode slot %q: %w", r.key, err)
	}
	return users, nil
}

func (r *redisTrackedUserRepository) Save(ctx context.Context, users []model.UserRecord) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return common.Errorf("redisTrackedUserRepository.Save: encode slot %q: %w", r.key, err)
	}
	if err := r.rdb.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return common.Errorf("redisTrackedUserRepository.Save: %w", err)
	}
	return nil
}
