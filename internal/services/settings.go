package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
)

const settingsCacheKey = "site:settings"

type SettingServiceInterface interface {
	GetSettings(ctx context.Context) (*entities.SiteSetting, error)
	UpdateSettings(ctx context.Context, payload dto.UpdateSiteSettingDTO) (*entities.SiteSetting, error)
}

// SettingService кеширует настройки в Redis: их читает каждая страница,
// а меняются они редко.
type SettingService struct {
	settingRepo repositories.SettingRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewSettingService(
	settingRepo repositories.SettingRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) SettingServiceInterface {
	return &SettingService{
		settingRepo: settingRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func (s *SettingService) GetSettings(ctx context.Context) (*entities.SiteSetting, error) {
	if cached, err := s.cacheRepo.Get(ctx, settingsCacheKey); err == nil {
		var setting entities.SiteSetting
		if err := json.Unmarshal([]byte(cached), &setting); err == nil {
			return &setting, nil
		}
		s.logger.Warn("SettingService: битые данные в кеше настроек, читаем из БД")
	}

	setting, err := s.settingRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(setting); err == nil {
		if err := s.cacheRepo.Set(ctx, settingsCacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("SettingService: не удалось закешировать настройки", zap.Error(err))
		}
	}

	return setting, nil
}

func (s *SettingService) UpdateSettings(ctx context.Context, payload dto.UpdateSiteSettingDTO) (*entities.SiteSetting, error) {
	setting, err := s.settingRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if payload.SiteName.Valid {
		setting.SiteName = payload.SiteName.String
	}
	if payload.Tagline.Valid {
		setting.Tagline = payload.Tagline.Ptr()
	}
	if payload.Phone.Valid {
		setting.Phone = payload.Phone.Ptr()
	}
	if payload.Email.Valid {
		setting.Email = payload.Email.Ptr()
	}
	if payload.Address.Valid {
		setting.Address = payload.Address.Ptr()
	}
	if payload.About.Valid {
		setting.About = payload.About.Ptr()
	}

	updated, err := s.settingRepo.UpdateSettings(ctx, setting)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Del(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("SettingService: не удалось сбросить кеш настроек", zap.Error(err))
	}

	s.logger.Info("Настройки сайта обновлены")
	return updated, nil
}
