package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"afrilance_backend/internal/cache"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/repositories"
	"afrilance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const statsCacheTTL = time.Minute

// StatsService serves contract and platform aggregates with a short
// cache-aside layer over redis. With caching disabled every call hits the
// database.
type StatsService struct {
	statsRepo repositories.StatsRepository
	cache     *cache.Cache
}

func NewStatsService(statsRepo repositories.StatsRepository, c *cache.Cache) *StatsService {
	return &StatsService{statsRepo: statsRepo, cache: c}
}

func (s *StatsService) ContractStats(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) (*repositories.ContractStats, error) {
	key := fmt.Sprintf("stats:contracts:%s", userID)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached repositories.ContractStats
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.statsRepo.ContractStatsFor(db, userID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if raw, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, key, string(raw), statsCacheTTL)
	}
	return stats, nil
}

func (s *StatsService) PlatformStats(ctx context.Context, db *gorm.DB) (*repositories.PlatformStats, error) {
	const key = "stats:platform"

	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached repositories.PlatformStats
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.statsRepo.PlatformStats(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if raw, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, key, string(raw), statsCacheTTL)
	}
	return stats, nil
}
