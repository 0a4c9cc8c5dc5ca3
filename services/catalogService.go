package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"context"
)

type CatalogService struct {
	repository *repositories.CatalogRepository
}

func NewCatalogService(repository *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repository: repository}
}

func (s *CatalogService) CreateDisease(ctx context.Context, disease *models.Disease) error {
	return s.repository.CreateDisease(ctx, disease)
}

func (s *CatalogService) GetAllDiseases(ctx context.Context, countryID *uint) ([]models.Disease, error) {
	return s.repository.GetAllDiseases(ctx, countryID)
}

func (s *CatalogService) UpdateDisease(ctx context.Context, disease *models.Disease) error {
	return s.repository.UpdateDisease(ctx, disease)
}

func (s *CatalogService) DeleteDisease(ctx context.Context, id uint) error {
	return s.repository.DeleteDisease(ctx, id)
}

func (s *CatalogService) CreateTypeOfVisit(ctx context.Context, typeOfVisit *models.TypeOfVisit) error {
	return s.repository.CreateTypeOfVisit(ctx, typeOfVisit)
}

func (s *CatalogService) GetAllTypesOfVisit(ctx context.Context, countryID *uint) ([]models.TypeOfVisit, error) {
	return s.repository.GetAllTypesOfVisit(ctx, countryID)
}

func (s *CatalogService) UpdateTypeOfVisit(ctx context.Context, typeOfVisit *models.TypeOfVisit) error {
	return s.repository.UpdateTypeOfVisit(ctx, typeOfVisit)
}

func (s *CatalogService) DeleteTypeOfVisit(ctx context.Context, id uint) error {
	return s.repository.DeleteTypeOfVisit(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, service *models.Service) error {
	return s.repository.CreateService(ctx, service)
}

func (s *CatalogService) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return s.repository.GetServiceByID(ctx, id)
}

func (s *CatalogService) GetAllServices(ctx context.Context, countryID *uint) ([]models.Service, error) {
	return s.repository.GetAllServices(ctx, countryID)
}

func (s *CatalogService) UpdateService(ctx context.Context, service *models.Service) error {
	return s.repository.UpdateService(ctx, service)
}

func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	return s.repository.DeleteService(ctx, id)
}
