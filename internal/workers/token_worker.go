package workers

import (
	"context"
	"time"

	"afrilance_backend/internal/logger"
	"afrilance_backend/internal/repositories"

	"gorm.io/gorm"
)

const cleanupInterval = time.Hour

// TokenWorker periodically purges expired refresh tokens.
type TokenWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewTokenWorker(db *gorm.DB, userRepo repositories.UserRepository) *TokenWorker {
	return &TokenWorker{db: db, userRepo: userRepo}
}

// Start runs the cleanup loop until ctx is cancelled.
func (w *TokenWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	logger.Info("token worker started", "interval", cleanupInterval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("token worker stopped")
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *TokenWorker) cleanup() {
	removed, err := w.userRepo.CleanExpiredRefreshTokens(w.db)
	logger.WorkerLog("token_worker", "clean_expired_refresh_tokens", err)
	if err == nil && removed > 0 {
		logger.Info("expired refresh tokens removed", "count", removed)
	}
}
