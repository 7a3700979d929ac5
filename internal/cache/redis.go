package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fitlog/internal/models"

	"github.com/redis/go-redis/v9"
)

const exerciseListKey = "exercises:all"

// RedisClient caches the predefined-exercise catalog. The catalog is
// seeded once and never mutated by users, so a long TTL is safe.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) StoreExercises(exercises []models.Exercise, duration time.Duration) error {
	jsonData, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("failed to marshal exercises: %w", err)
	}

	if err := r.client.Set(r.ctx, exerciseListKey, jsonData, duration).Err(); err != nil {
		return fmt.Errorf("failed to store exercises in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) GetExercises() ([]models.Exercise, bool, error) {
	data, err := r.client.Get(r.ctx, exerciseListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get exercises from Redis: %w", err)
	}

	var exercises []models.Exercise
	if err := json.Unmarshal([]byte(data), &exercises); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal exercises: %w", err)
	}
	return exercises, true, nil
}

func (r *RedisClient) InvalidateExercises() error {
	return r.client.Del(r.ctx, exerciseListKey).Err()
}
