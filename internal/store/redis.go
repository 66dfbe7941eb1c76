package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "kmeet:"

// RedisStore implements KeyValueStore on Redis. It also caches resolved room names.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at redisURL.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func preferenceKey(namespace, key string) string {
	return keyPrefix + namespace + ":" + key
}

func roomNameKey(code string) string {
	return keyPrefix + "code:" + code
}

// Get implements KeyValueStore.
func (s *RedisStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	return s.get(ctx, preferenceKey(namespace, key))
}

// Set implements KeyValueStore.
func (s *RedisStore) Set(ctx context.Context, namespace, key, value string) error {
	return s.client.Set(ctx, preferenceKey(namespace, key), value, 0).Err()
}

// GetRoomName returns a cached room name for a room code.
func (s *RedisStore) GetRoomName(ctx context.Context, code string) (string, bool, error) {
	return s.get(ctx, roomNameKey(code))
}

// SetRoomName caches a room name for ttl.
func (s *RedisStore) SetRoomName(ctx context.Context, code, name string, ttl time.Duration) error {
	return s.client.Set(ctx, roomNameKey(code), name, ttl).Err()
}

func (s *RedisStore) get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Close closes the Redis client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
