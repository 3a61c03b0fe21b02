package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ForumApp/community-service/internal/model"
	"github.com/ForumApp/community-service/internal/storage"
)

const (
	COMMUNITIES_KEY = "forum:communities"
	USERS_KEY       = "forum:users"
)

type redisStorage struct {
	rdb *redis.Client
}

// New returns a storage backend keeping each collection as one JSON blob
// under a fixed key. Documents are persistent (no TTL).
func New(rdb *redis.Client) storage.Storage {
	return &redisStorage{
		rdb: rdb,
	}
}

func (s *redisStorage) LoadCommunities(ctx context.Context) ([]*model.Community, error) {
	communities := []*model.Community{}
	if err := s.load(ctx, COMMUNITIES_KEY, &communities); err != nil {
		return nil, err
	}

	return communities, nil
}

func (s *redisStorage) SaveCommunities(ctx context.Context, communities []*model.Community) error {
	return s.save(ctx, COMMUNITIES_KEY, communities)
}

func (s *redisStorage) LoadUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := s.load(ctx, USERS_KEY, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *redisStorage) SaveUsers(ctx context.Context, users []*model.User) error {
	return s.save(ctx, USERS_KEY, users)
}

func (s *redisStorage) load(ctx context.Context, key string, out interface{}) error {
	value, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get %s from redis: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return nil
}

func (s *redisStorage) save(ctx context.Context, key string, v interface{}) error {
	valueJSON, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.rdb.Set(ctx, key, valueJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}

	return nil
}
