// Файл: internal/services/settings_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
)

type fakeSettingRepository struct {
	setting  *entities.SiteSetting
	getCalls int
}

func (r *fakeSettingRepository) GetSettings(ctx context.Context) (*entities.SiteSetting, error) {
	r.getCalls++
	copied := *r.setting
	return &copied, nil
}

func (r *fakeSettingRepository) UpdateSettings(ctx context.Context, setting *entities.SiteSetting) (*entities.SiteSetting, error) {
	r.setting = setting
	return setting, nil
}

func newTestSettingService() (SettingServiceInterface, *fakeSettingRepository, *fakeCacheRepository) {
	repo := &fakeSettingRepository{setting: &entities.SiteSetting{
		ID:       1,
		SiteName: "Система учета пожертвований",
	}}
	cache := newFakeCacheRepository()
	return NewSettingService(repo, cache, zap.NewNop(), time.Minute*10), repo, cache
}

func TestGetSettings_CachesAfterFirstRead(t *testing.T) {
	svc, repo, cache := newTestSettingService()
	ctx := context.Background()

	first, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Система учета пожертвований", first.SiteName)
	assert.Equal(t, 1, repo.getCalls)
	assert.Contains(t, cache.values, "site:settings")

	// Повторное чтение идет из кеша, БД не трогается.
	second, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.SiteName, second.SiteName)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetSettings_CorruptedCacheFallsBackToDB(t *testing.T) {
	svc, repo, cache := newTestSettingService()
	ctx := context.Background()

	cache.values["site:settings"] = "{not json"

	setting, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Система учета пожертвований", setting.SiteName)
	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdateSettings_PartialAndCacheInvalidation(t *testing.T) {
	svc, repo, cache := newTestSettingService()
	ctx := context.Background()

	// Прогреваем кеш.
	_, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	require.Contains(t, cache.values, "site:settings")

	updated, err := svc.UpdateSettings(ctx, dto.UpdateSiteSettingDTO{
		Tagline: null.StringFrom("Новый девиз"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Tagline)
	assert.Equal(t, "Новый девиз", *updated.Tagline)
	assert.Equal(t, "Система учета пожертвований", updated.SiteName, "незатронутые поля сохраняются")
	assert.NotContains(t, cache.values, "site:settings", "кеш сбрасывается после обновления")

	// getCalls: прогрев + чтение перед обновлением.
	assert.Equal(t, 2, repo.getCalls)
}

func TestUpdateSettings_AbsentFieldsUntouched(t *testing.T) {
	svc, repo, _ := newTestSettingService()
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, dto.UpdateSiteSettingDTO{
		Tagline: null.StringFrom("Девиз"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.setting.Tagline)

	// Поле, не пришедшее в запросе, не трогается.
	_, err = svc.UpdateSettings(ctx, dto.UpdateSiteSettingDTO{
		Phone: null.StringFrom("+992900000000"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.setting.Tagline)
	assert.Equal(t, "Девиз", *repo.setting.Tagline)
	require.NotNil(t, repo.setting.Phone)
	assert.Equal(t, "+992900000000", *repo.setting.Phone)
}
