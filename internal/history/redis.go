package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const historyKey = "calc:history"

// RedisRepository is a Redis-backed Repository using a capped list with a
// rolling TTL.
type RedisRepository struct {
	client *redis.Client
	limit  int64
	ttl    time.Duration
}

// RedisOptions configures the Redis connection and retention.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	Limit    int
	TTL      time.Duration
}

// NewRedisRepository connects to Redis with the given options.
func NewRedisRepository(opts RedisOptions) *RedisRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	limit := int64(opts.Limit)
	if limit <= 0 {
		limit = 1
	}

	return &RedisRepository{
		client: client,
		limit:  limit,
		ttl:    opts.TTL,
	}
}

// Save pushes the record onto the history list and trims it to the
// retention limit.
func (r *RedisRepository) Save(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode history record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, payload)
	pipe.LTrim(ctx, historyKey, 0, r.limit-1)
	if r.ttl > 0 {
		pipe.Expire(ctx, historyKey, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *RedisRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || int64(limit) > r.limit {
		limit = int(r.limit)
	}

	values, err := r.client.LRange(ctx, historyKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history records: %w", err)
	}

	records := make([]Record, 0, len(values))
	for _, value := range values {
		var record Record
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("failed to decode history record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Close releases the Redis connection.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
