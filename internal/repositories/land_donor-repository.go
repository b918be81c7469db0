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

const landDonorTable = "land_donors"
const landDonorSelectFields = "id, name, father_name, address, land_amount, note, created_at, updated_at"

var landDonorFieldMap = map[string]string{
	"id":          "id",
	"name":        "name",
	"land_amount": "land_amount",
	"created_at":  "created_at",
}

type LandDonorRepositoryInterface interface {
	GetLandDonors(ctx context.Context, filter types.Filter) ([]entities.LandDonor, uint64, error)
	FindLandDonor(ctx context.Context, id uint64) (*entities.LandDonor, error)
	CreateLandDonor(ctx context.Context, donor *entities.LandDonor) (*entities.LandDonor, error)
	UpdateLandDonor(ctx context.Context, donor *entities.LandDonor) (*entities.LandDonor, error)
	DeleteLandDonor(ctx context.Context, id uint64) error
	GetTotals(ctx context.Context) (totalLand float64, count uint64, err error)
}

type LandDonorRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLandDonorRepository(storage *pgxpool.Pool, logger *zap.Logger) LandDonorRepositoryInterface {
	return &LandDonorRepository{storage: storage, logger: logger}
}

func scanLandDonor(row pgx.Row) (*entities.LandDonor, error) {
	var d entities.LandDonor
	err := row.Scan(
		&d.ID, &d.Name, &d.FatherName, &d.Address,
		&d.LandAmount, &d.Note, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *LandDonorRepository) GetLandDonors(ctx context.Context, filter types.Filter) ([]entities.LandDonor, uint64, error) {
	countBuilder := psql.Select("COUNT(id)").From(landDonorTable)
	countBuilder = bd.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, landDonorFieldMap)
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "name", "father_name", "address")

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета дарителей земли: %w", err)
	}
	if totalCount == 0 {
		return []entities.LandDonor{}, 0, nil
	}

	builder := psql.Select(landDonorSelectFields).From(landDonorTable)
	builder = bd.ApplyListParams(builder, filter, landDonorFieldMap)
	builder = bd.ApplySearch(builder, filter.Search, "name", "father_name", "address")
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

	donors := make([]entities.LandDonor, 0)
	for rows.Next() {
		d, err := scanLandDonor(rows)
		if err != nil {
			return nil, 0, err
		}
		donors = append(donors, *d)
	}

	return donors, totalCount, rows.Err()
}

func (r *LandDonorRepository) FindLandDonor(ctx context.Context, id uint64) (*entities.LandDonor, error) {
	query, args, err := psql.Select(landDonorSelectFields).From(landDonorTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanLandDonor(r.storage.QueryRow(ctx, query, args...))
}

func (r *LandDonorRepository) CreateLandDonor(ctx context.Context, donor *entities.LandDonor) (*entities.LandDonor, error) {
	query, args, err := psql.Insert(landDonorTable).
		Columns("name", "father_name", "address", "land_amount", "note").
		Values(donor.Name, donor.FatherName, donor.Address, donor.LandAmount, donor.Note).
		Suffix("RETURNING " + landDonorSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanLandDonor(r.storage.QueryRow(ctx, query, args...))
}

func (r *LandDonorRepository) UpdateLandDonor(ctx context.Context, donor *entities.LandDonor) (*entities.LandDonor, error) {
	query, args, err := psql.Update(landDonorTable).
		Set("name", donor.Name).
		Set("father_name", donor.FatherName).
		Set("address", donor.Address).
		Set("land_amount", donor.LandAmount).
		Set("note", donor.Note).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": donor.ID}).
		Suffix("RETURNING " + landDonorSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanLandDonor(r.storage.QueryRow(ctx, query, args...))
}

func (r *LandDonorRepository) DeleteLandDonor(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(landDonorTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *LandDonorRepository) GetTotals(ctx context.Context) (float64, uint64, error) {
	var totalLand float64
	var count uint64
	err := r.storage.QueryRow(ctx, "SELECT COALESCE(SUM(land_amount), 0), COUNT(id) FROM "+landDonorTable).Scan(&totalLand, &count)
	return totalLand, count, err
}
