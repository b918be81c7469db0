package services

import (
	"context"

	"go.uber.org/zap"

	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	"donation-system/pkg/types"
)

type LandDonorServiceInterface interface {
	GetLandDonors(ctx context.Context, filter types.Filter) ([]entities.LandDonor, uint64, error)
	FindLandDonor(ctx context.Context, id uint64) (*entities.LandDonor, error)
	CreateLandDonor(ctx context.Context, payload dto.CreateLandDonorDTO) (*entities.LandDonor, error)
	UpdateLandDonor(ctx context.Context, id uint64, payload dto.UpdateLandDonorDTO) (*entities.LandDonor, error)
	DeleteLandDonor(ctx context.Context, id uint64) error
}

type LandDonorService struct {
	landDonorRepo repositories.LandDonorRepositoryInterface
	logger        *zap.Logger
}

func NewLandDonorService(landDonorRepo repositories.LandDonorRepositoryInterface, logger *zap.Logger) LandDonorServiceInterface {
	return &LandDonorService{landDonorRepo: landDonorRepo, logger: logger}
}

func (s *LandDonorService) GetLandDonors(ctx context.Context, filter types.Filter) ([]entities.LandDonor, uint64, error) {
	return s.landDonorRepo.GetLandDonors(ctx, filter)
}

func (s *LandDonorService) FindLandDonor(ctx context.Context, id uint64) (*entities.LandDonor, error) {
	return s.landDonorRepo.FindLandDonor(ctx, id)
}

func (s *LandDonorService) CreateLandDonor(ctx context.Context, payload dto.CreateLandDonorDTO) (*entities.LandDonor, error) {
	donor := &entities.LandDonor{
		Name:       payload.Name,
		FatherName: payload.FatherName,
		Address:    payload.Address,
		LandAmount: payload.LandAmount,
		Note:       payload.Note,
	}

	created, err := s.landDonorRepo.CreateLandDonor(ctx, donor)
	if err != nil {
		s.logger.Error("CreateLandDonor: ошибка создания", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Даритель земли создан", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *LandDonorService) UpdateLandDonor(ctx context.Context, id uint64, payload dto.UpdateLandDonorDTO) (*entities.LandDonor, error) {
	donor, err := s.landDonorRepo.FindLandDonor(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		donor.Name = *payload.Name
	}
	if payload.FatherName != nil {
		donor.FatherName = payload.FatherName
	}
	if payload.Address != nil {
		donor.Address = payload.Address
	}
	if payload.LandAmount != nil {
		donor.LandAmount = *payload.LandAmount
	}
	if payload.Note != nil {
		donor.Note = payload.Note
	}

	return s.landDonorRepo.UpdateLandDonor(ctx, donor)
}

func (s *LandDonorService) DeleteLandDonor(ctx context.Context, id uint64) error {
	return s.landDonorRepo.DeleteLandDonor(ctx, id)
}
