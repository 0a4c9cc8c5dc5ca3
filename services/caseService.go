package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"MedCenter/utils"
	"context"
	"fmt"
)

type CaseService struct {
	repository *repositories.CaseRepository
}

func NewCaseService(repository *repositories.CaseRepository) *CaseService {
	return &CaseService{repository: repository}
}

func (s *CaseService) Create(ctx context.Context, insuranceCase *models.InsuranceCase) error {
	if err := utils.ValidateCaseData(*insuranceCase); err != nil {
		return fmt.Errorf("invalid case data: %w", err)
	}
	return s.repository.Create(ctx, insuranceCase)
}

func (s *CaseService) Update(ctx context.Context, insuranceCase *models.InsuranceCase) error {
	if err := utils.ValidateCaseData(*insuranceCase); err != nil {
		return fmt.Errorf("invalid case data: %w", err)
	}
	return s.repository.Update(ctx, insuranceCase)
}

func (s *CaseService) GetByID(ctx context.Context, id uint) (*models.InsuranceCase, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *CaseService) GetAll(ctx context.Context, countryID *uint, doctorID *uint) ([]models.InsuranceCase, error) {
	return s.repository.GetAll(ctx, countryID, doctorID)
}

func (s *CaseService) MarkSeen(ctx context.Context, id uint) error {
	return s.repository.MarkSeen(ctx, id)
}

func (s *CaseService) HasReport(ctx context.Context, id uint) (bool, error) {
	return s.repository.HasReport(ctx, id)
}

func (s *CaseService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
