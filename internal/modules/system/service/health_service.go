package service

import (
	"context"
	"time"

	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
)

const healthTimeout = 3 * time.Second

// CheckHealth verifies the database answers SELECT 1.
func (s *Service) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := s.systemStore.Ping(ctx); err != nil {
		return platformservice.WrapInternalError("database is not configured correctly", err)
	}
	return nil
}
