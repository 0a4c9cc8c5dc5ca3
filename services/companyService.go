package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"context"
)

type CompanyService struct {
	repository *repositories.CompanyRepository
}

func NewCompanyService(repository *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{repository: repository}
}

func (s *CompanyService) CreateCompany(ctx context.Context, company *models.Company) error {
	return s.repository.CreateCompany(ctx, company)
}

func (s *CompanyService) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	return s.repository.GetCompanyByID(ctx, id)
}

func (s *CompanyService) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	return s.repository.GetAllCompanies(ctx)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, company *models.Company) error {
	return s.repository.UpdateCompany(ctx, company)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uint) error {
	return s.repository.DeleteCompany(ctx, id)
}

func (s *CompanyService) CreatePriceGroup(ctx context.Context, group *models.PriceGroup) error {
	return s.repository.CreatePriceGroup(ctx, group)
}

func (s *CompanyService) GetAllPriceGroups(ctx context.Context) ([]models.PriceGroup, error) {
	return s.repository.GetAllPriceGroups(ctx)
}

func (s *CompanyService) UpdatePriceGroup(ctx context.Context, group *models.PriceGroup) error {
	return s.repository.UpdatePriceGroup(ctx, group)
}

func (s *CompanyService) DeletePriceGroup(ctx context.Context, id uint) error {
	return s.repository.DeletePriceGroup(ctx, id)
}

func (s *CompanyService) CreateTariff(ctx context.Context, tariff *models.Tariff) error {
	return s.repository.CreateTariff(ctx, tariff)
}

func (s *CompanyService) GetAllTariffs(ctx context.Context, countryID *uint) ([]models.Tariff, error) {
	return s.repository.GetAllTariffs(ctx, countryID)
}

func (s *CompanyService) DeleteTariff(ctx context.Context, id uint) error {
	return s.repository.DeleteTariff(ctx, id)
}

func (s *CompanyService) SetVisitTariff(ctx context.Context, visitTariff *models.VisitTariff) error {
	return s.repository.SetVisitTariff(ctx, visitTariff)
}

func (s *CompanyService) DeleteVisitTariff(ctx context.Context, id uint) error {
	return s.repository.DeleteVisitTariff(ctx, id)
}
