// Файл: internal/services/contribution_test.go
package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/types"
)

type fakeContributionRepository struct {
	byID   map[uint64]*entities.Contribution
	nextID uint64
}

func newFakeContributionRepository() *fakeContributionRepository {
	return &fakeContributionRepository{byID: make(map[uint64]*entities.Contribution), nextID: 1}
}

func (r *fakeContributionRepository) GetContributions(ctx context.Context, filter types.Filter) ([]entities.Contribution, uint64, error) {
	out := make([]entities.Contribution, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeContributionRepository) FindContribution(ctx context.Context, id uint64) (*entities.Contribution, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeContributionRepository) CreateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error) {
	contribution.ID = r.nextID
	r.nextID++
	r.byID[contribution.ID] = contribution
	return contribution, nil
}

func (r *fakeContributionRepository) UpdateContribution(ctx context.Context, contribution *entities.Contribution) (*entities.Contribution, error) {
	r.byID[contribution.ID] = contribution
	return contribution, nil
}

func (r *fakeContributionRepository) DeleteContribution(ctx context.Context, id uint64) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeContributionRepository) GetReport(ctx context.Context, filter repositories.ReportFilter) ([]entities.Contribution, uint64, error) {
	return nil, 0, nil
}

func (r *fakeContributionRepository) GetTotals(ctx context.Context) (float64, uint64, error) {
	return 0, 0, nil
}

func (r *fakeContributionRepository) GetRecent(ctx context.Context, limit int) ([]entities.Contribution, error) {
	return nil, nil
}

var receiptNoPattern = regexp.MustCompile(`^DN-\d{8}-[0-9A-F]{8}$`)

func TestNewReceiptNo_Format(t *testing.T) {
	at := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	receiptNo := newReceiptNo(at)
	assert.Regexp(t, receiptNoPattern, receiptNo)
	assert.Contains(t, receiptNo, "DN-20260315-")
}

func TestNewReceiptNo_Unique(t *testing.T) {
	at := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := newReceiptNo(at)
		assert.False(t, seen[no], "номер квитанции повторился: %s", no)
		seen[no] = true
	}
}

func TestCreateContribution_AssignsReceiptNo(t *testing.T) {
	repo := newFakeContributionRepository()
	svc := NewContributionService(repo, zap.NewNop())

	created, err := svc.CreateContribution(context.Background(), dto.CreateContributionDTO{
		DonorName: "Иванов И.И.",
		Amount:    150.50,
		Purpose:   "zakat",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Regexp(t, receiptNoPattern, created.ReceiptNo)
	assert.Equal(t, "Иванов И.И.", created.DonorName)
	assert.False(t, created.ContributedAt.IsZero(), "дата взноса проставляется автоматически")
}

func TestCreateContribution_ExplicitDate(t *testing.T) {
	repo := newFakeContributionRepository()
	svc := NewContributionService(repo, zap.NewNop())

	at := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)
	created, err := svc.CreateContribution(context.Background(), dto.CreateContributionDTO{
		DonorName:     "Петров П.П.",
		Amount:        10,
		Purpose:       "general",
		ContributedAt: &at,
	})
	require.NoError(t, err)

	assert.Equal(t, at, created.ContributedAt)
	assert.Contains(t, created.ReceiptNo, "DN-20260102-", "номер квитанции датируется днем взноса")
}

func TestUpdateContribution_PartialUpdate(t *testing.T) {
	repo := newFakeContributionRepository()
	svc := NewContributionService(repo, zap.NewNop())

	created, err := svc.CreateContribution(context.Background(), dto.CreateContributionDTO{
		DonorName: "Иванов И.И.",
		Amount:    100,
		Purpose:   "general",
	})
	require.NoError(t, err)

	newAmount := 250.0
	updated, err := svc.UpdateContribution(context.Background(), created.ID, dto.UpdateContributionDTO{
		Amount: &newAmount,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, updated.Amount)
	assert.Equal(t, "Иванов И.И.", updated.DonorName, "незаполненные поля не трогаются")
	assert.Equal(t, created.ReceiptNo, updated.ReceiptNo, "номер квитанции неизменяем")
}

func TestUpdateContribution_NotFound(t *testing.T) {
	svc := NewContributionService(newFakeContributionRepository(), zap.NewNop())

	newAmount := 1.0
	_, err := svc.UpdateContribution(context.Background(), 999, dto.UpdateContributionDTO{Amount: &newAmount})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
