package services

import (
	"context"

	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/repositories"
)

const recentContributionsLimit = 10

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

// DashboardService собирает сводку из трех репозиториев.
type DashboardService struct {
	contributionRepo repositories.ContributionRepositoryInterface
	committeeRepo    repositories.CommitteeRepositoryInterface
	landDonorRepo    repositories.LandDonorRepositoryInterface
	logger           *zap.Logger
}

func NewDashboardService(
	contributionRepo repositories.ContributionRepositoryInterface,
	committeeRepo repositories.CommitteeRepositoryInterface,
	landDonorRepo repositories.LandDonorRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		contributionRepo: contributionRepo,
		committeeRepo:    committeeRepo,
		landDonorRepo:    landDonorRepo,
		logger:           logger,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	totalAmount, contributionCount, err := s.contributionRepo.GetTotals(ctx)
	if err != nil {
		s.logger.Error("GetDashboard: ошибка подсчета пожертвований", zap.Error(err))
		return nil, err
	}

	committeeCount, err := s.committeeRepo.CountCommittees(ctx)
	if err != nil {
		return nil, err
	}

	totalLand, landDonorCount, err := s.landDonorRepo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.contributionRepo.GetRecent(ctx, recentContributionsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		TotalContributionAmount: totalAmount,
		ContributionCount:       contributionCount,
		CommitteeCount:          committeeCount,
		LandDonorCount:          landDonorCount,
		TotalLandAmount:         totalLand,
		RecentContributions:     recent,
	}, nil
}
