package services

import (
	"context"

	"go.uber.org/zap"

	"donation-system/internal/entities"
	"donation-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetContributionReport(ctx context.Context, filter repositories.ReportFilter) ([]entities.Contribution, uint64, error)
}

type reportService struct {
	contributionRepo repositories.ContributionRepositoryInterface
	logger           *zap.Logger
}

func NewReportService(contributionRepo repositories.ContributionRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{contributionRepo: contributionRepo, logger: logger}
}

func (s *reportService) GetContributionReport(ctx context.Context, filter repositories.ReportFilter) ([]entities.Contribution, uint64, error) {
	contributions, total, err := s.contributionRepo.GetReport(ctx, filter)
	if err != nil {
		s.logger.Error("GetContributionReport: ошибка выборки", zap.Error(err))
		return nil, 0, err
	}
	return contributions, total, nil
}
