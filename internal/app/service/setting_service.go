package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"
	"backoffice/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const settingCachePrefix = "setting:"

// Defaults applied when a setting document is absent.
const (
	defaultPasswordAttempt    = true
	defaultMaxPasswordAttempt = 5
)

// SettingService reads lockout configuration through a redis cache-aside
// over the settings collection. Cache failures degrade to direct reads.
type SettingService struct {
	repo   repository.SettingRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSettingService(repo repository.SettingRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *SettingService {
	return &SettingService{repo: repo, rdb: rdb, ttl: ttl, logger: logger}
}

func (s *SettingService) GetPasswordAttempt(ctx context.Context) (bool, error) {
	value, err := s.getValue(ctx, model.SettingNamePasswordAttempt)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return defaultPasswordAttempt, nil
		}
		return false, err
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("setting %s is not a boolean: %w", model.SettingNamePasswordAttempt, err)
	}
	return enabled, nil
}

func (s *SettingService) GetMaxPasswordAttempt(ctx context.Context) (int, error) {
	value, err := s.getValue(ctx, model.SettingNameMaxPasswordAttempt)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return defaultMaxPasswordAttempt, nil
		}
		return 0, err
	}
	max, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("setting %s is not a number: %w", model.SettingNameMaxPasswordAttempt, err)
	}
	return max, nil
}

func (s *SettingService) getValue(ctx context.Context, name string) (string, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, settingCachePrefix+name).Result()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("setting cache read failed", zap.String("setting", name), zap.Error(err))
		}
	}

	setting, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return "", err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, settingCachePrefix+name, setting.Value, s.ttl).Err(); err != nil {
			s.logger.Warn("setting cache write failed", zap.String("setting", name), zap.Error(err))
		}
	}
	return setting.Value, nil
}
