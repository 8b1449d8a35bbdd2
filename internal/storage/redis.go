package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/treasure-island/pkg/state"
)

// RedisStore persists the save document in Redis under a named slot. The
// document bytes are identical to the file backend, so saves move between
// backends without conversion.
type RedisStore struct {
	client *redis.Client
	slot   string
	logger *slog.Logger
}

// Ensure RedisStore implements SaveStore interface
var _ SaveStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed save store for the given slot.
func NewRedisStore(redisURL, slot string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if slot == "" {
		slot = "default"
	}

	return &RedisStore{
		client: redis.NewClient(opt),
		slot:   slot,
		logger: logger,
	}, nil
}

func (r *RedisStore) key() string {
	return "savegame:" + r.slot
}

func (r *RedisStore) Save(ctx context.Context, player *state.Player, gs *state.GameState) error {
	data, err := encodeDocument(player, gs)
	if err != nil {
		r.logger.Error("Failed to encode save document", "slot", r.slot, "error", err)
		return fmt.Errorf("failed to encode save document: %w", err)
	}

	if err := r.client.Set(ctx, r.key(), string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save game", "slot", r.slot, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.logger.Debug("Save written", "slot", r.slot, "bytes", len(data))
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (*state.Player, *state.GameState, error) {
	data, err := r.client.Get(ctx, r.key()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil, ErrNoSave
		}
		r.logger.Error("Failed to load game", "slot", r.slot, "error", err)
		return nil, nil, ErrCorrupt
	}

	player, gs, err := decodeDocument([]byte(data))
	if err != nil {
		r.logger.Warn("Save rejected", "slot", r.slot, "error", err)
		return nil, nil, err
	}
	return player, gs, nil
}

// Name returns the slot name for user-facing messages.
func (r *RedisStore) Name() string {
	return r.slot
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}
