package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"donation-system/internal/entities"
	"donation-system/internal/infrastructure/bd"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/types"
)

const userTable = "users"
const userSelectFields = "id, fio, email, password, role, is_active, last_login_at, created_at, updated_at"

// ЕДИНАЯ КАРТА ПОЛЕЙ (фильтр + сортировка)
var userFieldMap = map[string]string{
	"id":         "id",
	"fio":        "fio",
	"email":      "email",
	"role":       "role",
	"is_active":  "is_active",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
	UpdatePassword(ctx context.Context, userID uint64, newPasswordHash string) error
	UpdateLastLogin(ctx context.Context, userID uint64, at time.Time) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Fio, &user.Email, &user.Password,
		&user.Role, &user.IsActive, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	countBuilder := psql.Select("COUNT(id)").From(userTable)
	countBuilder = bd.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, userFieldMap)
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "fio", "email")

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета пользователей: %w", err)
	}
	if totalCount == 0 {
		return []entities.User{}, 0, nil
	}

	builder := psql.Select(userSelectFields).From(userTable)
	builder = bd.ApplyListParams(builder, filter, userFieldMap)
	builder = bd.ApplySearch(builder, filter.Search, "fio", "email")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}

	return users, totalCount, rows.Err()
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query, args, err := psql.Select(userSelectFields).From(userTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := psql.Select(userSelectFields).From(userTable).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := psql.Insert(userTable).
		Columns("fio", "email", "password", "role", "is_active").
		Values(user.Fio, user.Email, user.Password, user.Role, user.IsActive).
		Suffix("RETURNING " + userSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := psql.Update(userTable).
		Set("fio", user.Fio).
		Set("email", user.Email).
		Set("role", user.Role).
		Set("is_active", user.IsActive).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + userSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(userTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint64, newPasswordHash string) error {
	query, args, err := psql.Update(userTable).
		Set("password", newPasswordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateLastLogin фиксирует время успешного входа. Между параллельными
// логинами побеждает последняя запись, строгий порядок не нужен.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uint64, at time.Time) error {
	query, args, err := psql.Update(userTable).
		Set("last_login_at", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.storage.Exec(ctx, query, args...)
	return err
}
