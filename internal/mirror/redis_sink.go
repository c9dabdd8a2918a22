package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const mirrorListKey = "logkeep:mirror"

// RedisSink pushes records onto a Redis list consumed by a collector
// pipeline.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(addr, password string) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSink{client: client}, nil
}

func (s *RedisSink) Forward(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.client.RPush(ctx, mirrorListKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push record to Redis: %w", err)
	}

	return nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
