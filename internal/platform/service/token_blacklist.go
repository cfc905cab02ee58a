package service

import (
	"context"
	"time"

	"github.com/Dishalex/PhotoShare/internal/logging"
)

// RevokeToken blacklists a token id until it would have expired anyway.
func (s *AppService) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if jti == "" || ttl <= 0 {
		return
	}
	if s.redis != nil {
		err := s.redis.Set(ctx, s.RedisKey("auth", "revoked", jti), "1", ttl).Err()
		if err == nil {
			return
		}
		logging.Warn().Err(err).Msg("redis revoke failed, keeping token in memory")
	}
	s.revoked.Store(jti, expiresAt)
}

// IsTokenRevoked checks redis first and falls back to the in-process list.
func (s *AppService) IsTokenRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	if s.redis != nil {
		n, err := s.redis.Exists(ctx, s.RedisKey("auth", "revoked", jti)).Result()
		if err == nil && n > 0 {
			return true
		}
	}
	v, ok := s.revoked.Load(jti)
	if !ok {
		return false
	}
	exp, _ := v.(time.Time)
	if time.Now().After(exp) {
		s.revoked.Delete(jti)
		return false
	}
	return true
}
