package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	trainerRepo "fittribe/database/repository/trainer"
	"fittribe/models"
	"fittribe/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const rosterCacheKey = "trainerRoster"
const rosterCacheTTL = 5 * time.Minute

// DirectoryService defines the trainer directory operations.
type DirectoryService interface {
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Trainer, error)
	GetTrainer(ctx context.Context, id string) (*models.Trainer, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Trainer, error)
	ListSpecialties() []string
	CreateTrainer(ctx context.Context, trainer *models.Trainer) error
	UpdateTrainer(ctx context.Context, trainer *models.Trainer) error
	DeleteTrainer(ctx context.Context, id string) error
}

// DefaultDirectoryService implements DirectoryService over the trainer
// repository with a Redis roster cache in front of it.
type DefaultDirectoryService struct {
	Repo  trainerRepo.TrainerRepository
	Cache *redis.Client
}

// Search loads the roster and applies the pure filter to it.
func (s *DefaultDirectoryService) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Trainer, error) {
	roster, err := s.loadRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer roster: %w", err)
	}
	if criteria.MaxPrice == 0 {
		criteria.MaxPrice = DefaultMaxPrice
	}
	return Filter(roster, criteria), nil
}

// GetTrainer fetches a single trainer profile.
func (s *DefaultDirectoryService) GetTrainer(ctx context.Context, id string) (*models.Trainer, error) {
	trainer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainer: %w", err)
	}
	return trainer, nil
}

// GetFeatured returns the featured trainers shown on the landing page.
func (s *DefaultDirectoryService) GetFeatured(ctx context.Context, limit int) ([]models.Trainer, error) {
	if limit <= 0 {
		limit = 4
	}
	trainers, err := s.Repo.GetFeatured(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured trainers: %w", err)
	}
	return trainers, nil
}

// ListSpecialties returns the canonical specialty list, sentinel first.
func (s *DefaultDirectoryService) ListSpecialties() []string {
	out := make([]string, 0, len(models.Specialties)+1)
	out = append(out, models.SpecialtyAll)
	out = append(out, models.Specialties...)
	return out
}

// CreateTrainer adds a trainer to the directory and drops the roster cache.
func (s *DefaultDirectoryService) CreateTrainer(ctx context.Context, trainer *models.Trainer) error {
	if err := s.Repo.Create(trainer); err != nil {
		return err
	}
	s.invalidateRoster(ctx)
	return nil
}

// UpdateTrainer replaces a trainer profile and drops the roster cache.
func (s *DefaultDirectoryService) UpdateTrainer(ctx context.Context, trainer *models.Trainer) error {
	if err := s.Repo.Update(trainer); err != nil {
		return err
	}
	s.invalidateRoster(ctx)
	return nil
}

// DeleteTrainer removes a trainer and drops the roster cache.
func (s *DefaultDirectoryService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateRoster(ctx)
	return nil
}

// loadRoster returns the cached roster when available, falling back to the
// repository. A cache failure is logged and the repository is used directly.
func (s *DefaultDirectoryService) loadRoster(ctx context.Context) ([]models.Trainer, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, rosterCacheKey).Result()
		if err == nil {
			var roster []models.Trainer
			if err := json.Unmarshal([]byte(data), &roster); err == nil {
				return roster, nil
			}
			logger.Warn("Failed to decode cached roster, refetching", zap.Error(err))
		} else if err != redis.Nil {
			logger.Warn("Roster cache read failed", zap.Error(err))
		}
	}

	roster, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(roster); err == nil {
			if err := s.Cache.Set(ctx, rosterCacheKey, data, rosterCacheTTL).Err(); err != nil {
				logger.Warn("Roster cache write failed", zap.Error(err))
			}
		}
	}
	return roster, nil
}

func (s *DefaultDirectoryService) invalidateRoster(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, rosterCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Roster cache invalidation failed", zap.Error(err))
	}
}
