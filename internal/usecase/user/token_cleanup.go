package user

import (
	"context"
	"time"

	"classbook/internal/logger"

	"go.uber.org/zap"
)

// StartTokenCleanupJob periodically deletes expired refresh tokens.
func (s *Service) StartTokenCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Token cleanup job started",
		zap.Duration("interval", interval),
	)

	s.cleanupExpiredTokens(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup job stopped")
			return
		case <-ticker.C:
			s.cleanupExpiredTokens(ctx)
		}
	}
}

func (s *Service) cleanupExpiredTokens(ctx context.Context) {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to delete expired tokens", zap.Error(err))
		return
	}

	if deleted > 0 {
		logger.Debug("Expired refresh tokens cleaned up",
			zap.Int64("deleted", deleted),
		)
	}
}
