package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/logging"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects when redis is enabled. It returns nil when redis is disabled or
// unreachable so the caller degrades to in-memory mode.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logging.Warn().Err(err).Str("addr", cfg.Addr).Msg("⚠️ redis unavailable, falling back to memory")
		return nil
	}

	logging.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("✅ redis connected")
	return client
}

// Redis returns the shared client, or nil in memory mode.
func (s *AppService) Redis() *redis.Client {
	return s.redis
}

// RedisKey joins parts under the configured prefix: photoshare:auth:role:42.
func (s *AppService) RedisKey(parts ...string) string {
	prefix := s.redisPrefix
	if prefix == "" {
		prefix = "photoshare"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func (s *AppService) CloseRedis() error {
	if s.redis == nil {
		return nil
	}
	if err := s.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}
