package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"donation-system/internal/entities"
	apperrors "donation-system/pkg/errors"
)

const settingTable = "site_settings"
const settingSelectFields = "id, site_name, tagline, phone, email, address, about, updated_at"

type SettingRepositoryInterface interface {
	GetSettings(ctx context.Context) (*entities.SiteSetting, error)
	UpdateSettings(ctx context.Context, setting *entities.SiteSetting) (*entities.SiteSetting, error)
}

type SettingRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSettingRepository(storage *pgxpool.Pool, logger *zap.Logger) SettingRepositoryInterface {
	return &SettingRepository{storage: storage, logger: logger}
}

func scanSetting(row pgx.Row) (*entities.SiteSetting, error) {
	var s entities.SiteSetting
	err := row.Scan(
		&s.ID, &s.SiteName, &s.Tagline, &s.Phone,
		&s.Email, &s.Address, &s.About, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetSettings возвращает единственную строку настроек (наименьший id).
func (r *SettingRepository) GetSettings(ctx context.Context) (*entities.SiteSetting, error) {
	query, args, err := psql.Select(settingSelectFields).From(settingTable).OrderBy("id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSetting(r.storage.QueryRow(ctx, query, args...))
}

func (r *SettingRepository) UpdateSettings(ctx context.Context, setting *entities.SiteSetting) (*entities.SiteSetting, error) {
	query, args, err := psql.Update(settingTable).
		Set("site_name", setting.SiteName).
		Set("tagline", setting.Tagline).
		Set("phone", setting.Phone).
		Set("email", setting.Email).
		Set("address", setting.Address).
		Set("about", setting.About).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": setting.ID}).
		Suffix("RETURNING " + settingSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSetting(r.storage.QueryRow(ctx, query, args...))
}
