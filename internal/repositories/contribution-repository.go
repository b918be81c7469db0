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

const contributionTable = "contributions"
const contributionSelectFields = "id, receipt_no, donor_name, phone, address, amount, purpose, note, contributed_at, created_at, updated_at"

var contributionFieldMap = map[string]string{
	"id":             "id",
	"receipt_no":     "receipt_no",
	"donor_name":     "donor_name",
	"amount":         "amount",
	"purpose":        "purpose",
	"contributed_at": "contributed_at",
	"created_at":     "created_at",
}

// ReportFilter — срез пожертвований за период для отчета.
type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Purpose  string
	Limit    int
	Offset   int
}

type ContributionRepositoryInterface interface {
	GetContributions(ctx context.Context, filter types.Filter) ([]entities.Contribution, uint64, error)
	FindContribution(ctx context.Context, id uint64) (*entities.Contribution, error)
	CreateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error)
	UpdateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error)
	DeleteContribution(ctx context.Context, id uint64) error
	GetReport(ctx context.Context, filter ReportFilter) ([]entities.Contribution, uint64, error)
	GetTotals(ctx context.Context) (totalAmount float64, count uint64, err error)
	GetRecent(ctx context.Context, limit int) ([]entities.Contribution, error)
}

type ContributionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewContributionRepository(storage *pgxpool.Pool, logger *zap.Logger) ContributionRepositoryInterface {
	return &ContributionRepository{storage: storage, logger: logger}
}

func scanContribution(row pgx.Row) (*entities.Contribution, error) {
	var c entities.Contribution
	err := row.Scan(
		&c.ID, &c.ReceiptNo, &c.DonorName, &c.Phone, &c.Address,
		&c.Amount, &c.Purpose, &c.Note, &c.ContributedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContributionRepository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Contribution, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contributions := make([]entities.Contribution, 0)
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, *c)
	}
	return contributions, rows.Err()
}

func (r *ContributionRepository) GetContributions(ctx context.Context, filter types.Filter) ([]entities.Contribution, uint64, error) {
	countBuilder := psql.Select("COUNT(id)").From(contributionTable)
	countBuilder = bd.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, contributionFieldMap)
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "donor_name", "receipt_no", "phone")

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета пожертвований: %w", err)
	}
	if totalCount == 0 {
		return []entities.Contribution{}, 0, nil
	}

	builder := psql.Select(contributionSelectFields).From(contributionTable)
	builder = bd.ApplyListParams(builder, filter, contributionFieldMap)
	builder = bd.ApplySearch(builder, filter.Search, "donor_name", "receipt_no", "phone")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("contributed_at DESC, id DESC")
	}

	contributions, err := r.queryList(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return contributions, totalCount, nil
}

func (r *ContributionRepository) FindContribution(ctx context.Context, id uint64) (*entities.Contribution, error) {
	query, args, err := psql.Select(contributionSelectFields).From(contributionTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanContribution(r.storage.QueryRow(ctx, query, args...))
}

func (r *ContributionRepository) CreateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error) {
	query, args, err := psql.Insert(contributionTable).
		Columns("receipt_no", "donor_name", "phone", "address", "amount", "purpose", "note", "contributed_at").
		Values(
			contribution.ReceiptNo, contribution.DonorName, contribution.Phone, contribution.Address,
			contribution.Amount, contribution.Purpose, contribution.Note, contribution.ContributedAt,
		).
		Suffix("RETURNING " + contributionSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanContribution(r.storage.QueryRow(ctx, query, args...))
}

func (r *ContributionRepository) UpdateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error) {
	query, args, err := psql.Update(contributionTable).
		Set("donor_name", contribution.DonorName).
		Set("phone", contribution.Phone).
		Set("address", contribution.Address).
		Set("amount", contribution.Amount).
		Set("purpose", contribution.Purpose).
		Set("note", contribution.Note).
		Set("contributed_at", contribution.ContributedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": contribution.ID}).
		Suffix("RETURNING " + contributionSelectFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanContribution(r.storage.QueryRow(ctx, query, args...))
}

func (r *ContributionRepository) DeleteContribution(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(contributionTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *ContributionRepository) reportConditions(builder sq.SelectBuilder, filter ReportFilter) sq.SelectBuilder {
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"contributed_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"contributed_at": *filter.DateTo})
	}
	if filter.Purpose != "" {
		builder = builder.Where(sq.Eq{"purpose": filter.Purpose})
	}
	return builder
}

func (r *ContributionRepository) GetReport(ctx context.Context, filter ReportFilter) ([]entities.Contribution, uint64, error) {
	countBuilder := r.reportConditions(psql.Select("COUNT(id)").From(contributionTable), filter)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	builder := r.reportConditions(psql.Select(contributionSelectFields).From(contributionTable), filter).
		OrderBy("contributed_at ASC, id ASC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	contributions, err := r.queryList(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return contributions, totalCount, nil
}

func (r *ContributionRepository) GetTotals(ctx context.Context) (float64, uint64, error) {
	var totalAmount float64
	var count uint64
	err := r.storage.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0), COUNT(id) FROM "+contributionTable).Scan(&totalAmount, &count)
	return totalAmount, count, err
}

func (r *ContributionRepository) GetRecent(ctx context.Context, limit int) ([]entities.Contribution, error) {
	builder := psql.Select(contributionSelectFields).From(contributionTable).
		OrderBy("contributed_at DESC, id DESC").
		Limit(uint64(limit))
	return r.queryList(ctx, builder)
}
