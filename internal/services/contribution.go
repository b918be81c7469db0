package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	"donation-system/pkg/types"
)

type ContributionServiceInterface interface {
	GetContributions(ctx context.Context, filter types.Filter) ([]entities.Contribution, uint64, error)
	FindContribution(ctx context.Context, id uint64) (*entities.Contribution, error)
	CreateContribution(ctx context.Context, payload dto.CreateContributionDTO) (*entities.Contribution, error)
	UpdateContribution(ctx context.Context, id uint64, payload dto.UpdateContributionDTO) (*entities.Contribution, error)
	DeleteContribution(ctx context.Context, id uint64) error
}

type ContributionService struct {
	contributionRepo repositories.ContributionRepositoryInterface
	logger           *zap.Logger
}

func NewContributionService(contributionRepo repositories.ContributionRepositoryInterface, logger *zap.Logger) ContributionServiceInterface {
	return &ContributionService{contributionRepo: contributionRepo, logger: logger}
}

// newReceiptNo выдает человекочитаемый номер квитанции. Уникальность
// гарантирует uuid-суффикс и UNIQUE-ограничение в БД.
func newReceiptNo(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("DN-%s-%s", at.Format("20060102"), suffix)
}

func (s *ContributionService) GetContributions(ctx context.Context, filter types.Filter) ([]entities.Contribution, uint64, error) {
	return s.contributionRepo.GetContributions(ctx, filter)
}

func (s *ContributionService) FindContribution(ctx context.Context, id uint64) (*entities.Contribution, error) {
	return s.contributionRepo.FindContribution(ctx, id)
}

func (s *ContributionService) CreateContribution(ctx context.Context, payload dto.CreateContributionDTO) (*entities.Contribution, error) {
	contributedAt := time.Now()
	if payload.ContributedAt != nil {
		contributedAt = *payload.ContributedAt
	}

	contribution := &entities.Contribution{
		ReceiptNo:     newReceiptNo(contributedAt),
		DonorName:     payload.DonorName,
		Phone:         payload.Phone,
		Address:       payload.Address,
		Amount:        payload.Amount,
		Purpose:       payload.Purpose,
		Note:          payload.Note,
		ContributedAt: contributedAt,
	}

	created, err := s.contributionRepo.CreateContribution(ctx, contribution)
	if err != nil {
		s.logger.Error("CreateContribution: ошибка создания", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пожертвование зарегистрировано",
		zap.Uint64("id", created.ID),
		zap.String("receipt_no", created.ReceiptNo),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (s *ContributionService) UpdateContribution(ctx context.Context, id uint64, payload dto.UpdateContributionDTO) (*entities.Contribution, error) {
	contribution, err := s.contributionRepo.FindContribution(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.DonorName != nil {
		contribution.DonorName = *payload.DonorName
	}
	if payload.Phone != nil {
		contribution.Phone = payload.Phone
	}
	if payload.Address != nil {
		contribution.Address = payload.Address
	}
	if payload.Amount != nil {
		contribution.Amount = *payload.Amount
	}
	if payload.Purpose != nil {
		contribution.Purpose = *payload.Purpose
	}
	if payload.Note != nil {
		contribution.Note = payload.Note
	}
	if payload.ContributedAt != nil {
		contribution.ContributedAt = *payload.ContributedAt
	}

	return s.contributionRepo.UpdateContribution(ctx, contribution)
}

func (s *ContributionService) DeleteContribution(ctx context.Context, id uint64) error {
	return s.contributionRepo.DeleteContribution(ctx, id)
}
