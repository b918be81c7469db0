package services

import (
	"context"

	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	"donation-system/pkg/types"
)

type CommitteeServiceInterface interface {
	GetCommittees(ctx context.Context, filter types.Filter) ([]entities.Committee, uint64, error)
	FindCommittee(ctx context.Context, id uint64) (*entities.Committee, error)
	CreateCommittee(ctx context.Context, payload dto.CreateCommitteeDTO) (*entities.Committee, error)
	UpdateCommittee(ctx context.Context, id uint64, payload dto.UpdateCommitteeDTO) (*entities.Committee, error)
	DeleteCommittee(ctx context.Context, id uint64) error
}

type CommitteeService struct {
	committeeRepo repositories.CommitteeRepositoryInterface
	logger        *zap.Logger
}

func NewCommitteeService(committeeRepo repositories.CommitteeRepositoryInterface, logger *zap.Logger) CommitteeServiceInterface {
	return &CommitteeService{committeeRepo: committeeRepo, logger: logger}
}

func (s *CommitteeService) GetCommittees(ctx context.Context, filter types.Filter) ([]entities.Committee, uint64, error) {
	return s.committeeRepo.GetCommittees(ctx, filter)
}

func (s *CommitteeService) FindCommittee(ctx context.Context, id uint64) (*entities.Committee, error) {
	return s.committeeRepo.FindCommittee(ctx, id)
}

func (s *CommitteeService) CreateCommittee(ctx context.Context, payload dto.CreateCommitteeDTO) (*entities.Committee, error) {
	committee := &entities.Committee{
		Name:         payload.Name,
		Designation:  payload.Designation,
		Phone:        payload.Phone,
		Address:      payload.Address,
		DisplayOrder: payload.DisplayOrder,
		IsActive:     true,
	}
	if payload.IsActive != nil {
		committee.IsActive = *payload.IsActive
	}

	created, err := s.committeeRepo.CreateCommittee(ctx, committee)
	if err != nil {
		s.logger.Error("CreateCommittee: ошибка создания", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Член комитета создан", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *CommitteeService) UpdateCommittee(ctx context.Context, id uint64, payload dto.UpdateCommitteeDTO) (*entities.Committee, error) {
	committee, err := s.committeeRepo.FindCommittee(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		committee.Name = *payload.Name
	}
	if payload.Designation != nil {
		committee.Designation = *payload.Designation
	}
	if payload.Phone != nil {
		committee.Phone = payload.Phone
	}
	if payload.Address != nil {
		committee.Address = payload.Address
	}
	if payload.DisplayOrder != nil {
		committee.DisplayOrder = *payload.DisplayOrder
	}
	if payload.IsActive != nil {
		committee.IsActive = *payload.IsActive
	}

	return s.committeeRepo.UpdateCommittee(ctx, committee)
}

func (s *CommitteeService) DeleteCommittee(ctx context.Context, id uint64) error {
	return s.committeeRepo.DeleteCommittee(ctx, id)
}
