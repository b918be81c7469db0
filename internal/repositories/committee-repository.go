package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"donation-system/internal/entities"
	"donation-system/internal/infrastructure/bd"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/types"
)

const committeeTable = "committees"
const committeeSelectFields = "id, name, designation, phone, address, display_order, is_active, created_at, updated_at"

var committeeFieldMap = map[string]string{
	"id":            "id",
	"name":          "name",
	"designation":   "designation",
	"display_order": "display_order",
	"is_active":     "is_active",
	"created_at":    "created_at",
}

type CommitteeRepositoryInterface interface {
	GetCommittees(ctx context.Context, filter types.Filter) ([]entities.Committee, uint64, error)
	FindCommittee(ctx context.Context, id uint64) (*entities.Committee, error)
	CreateCommittee(ctx context.Context, committee *entities.Committee) (*entities.Committee, error)
	UpdateCommittee(ctx context.Context, committee *entities.Committee) (*entities.Committee, error)
	DeleteCommittee(ctx context.Context, id uint64) error
	CountCommittees(ctx context.Context) (uint64, error)
}

type CommitteeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCommitteeRepository(storage *pgxpool.Pool, logger *zap.Logger) CommitteeRepositoryInterface {
	return &CommitteeRepository{storage: storage, logger: logger}
}

func scanCommittee(row pgx.Row) (*entities.Committee, error) {
	var c entities.Committee
	err := row.Scan(
		&c.ID, &c.Name, &c.Designation, &c.Phone, &c.Address,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommitteeRepository) GetCommittees(ctx context.Context, filter types.Filter) ([]entities.Committee, uint64, error) {
	countBuilder := psql.Select("COUNT(id)").From(committeeTable)
	countBuilder = bd.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, committeeFieldMap)
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "name", "designation")

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета членов комитета: %w", err)
	}
	if totalCount == 0 {
		return []entities.Committee{}, 0, nil
	}

	builder := psql.Select(committeeSelectFields).From(committeeTable)
	builder = bd.ApplyListParams(builder, filter, committeeFieldMap)
	builder = bd.ApplySearch(builder, filter.Search, "name", "designation")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("display_order ASC, id ASC")
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

	committees := make([]entities.Committee, 0)
	for rows.Next() {
		c, err := scanCommittee(rows)
		if err != nil {
			return nil, 0, err
		}
		committees = append(committees, *c)
	}

	return committees, totalCount, rows.Err()
}

func (r *CommitteeRepository) FindCommittee(ctx context.Context, id uint64) (*entities.Committee, error) {
	query, args, err := psql.Select(committeeSelectFields).From(committeeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCommittee(r.storage.QueryRow(ctx, query, args...))
}

func (r *CommitteeRepository) CreateCommittee(ctx context.Context, committee *entities.Committee) (*entities.Committee, error) {
	query, args, err := psql.Insert(committeeTable).
		Columns("name", "designation", "phone", "address", "display_order", "is_active").
		Values(committee.Name, committee.Designation, committee.Phone, committee.Address, committee.DisplayOrder, committee.IsActive).
		Suffix("RETURNING " + committeeSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCommittee(r.storage.QueryRow(ctx, query, args...))
}

func (r *CommitteeRepository) UpdateCommittee(ctx context.Context, committee *entities.Committee) (*entities.Committee, error) {
	query, args, err := psql.Update(committeeTable).
		Set("name", committee.Name).
		Set("designation", committee.Designation).
		Set("phone", committee.Phone).
		Set("address", committee.Address).
		Set("display_order", committee.DisplayOrder).
		Set("is_active", committee.IsActive).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": committee.ID}).
		Suffix("RETURNING " + committeeSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCommittee(r.storage.QueryRow(ctx, query, args...))
}

func (r *CommitteeRepository) DeleteCommittee(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(committeeTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *CommitteeRepository) CountCommittees(ctx context.Context) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(id) FROM "+committeeTable).Scan(&count)
	return count, err
}
