package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"context"
)

type TerritoryService struct {
	repository *repositories.TerritoryRepository
}

func NewTerritoryService(repository *repositories.TerritoryRepository) *TerritoryService {
	return &TerritoryService{repository: repository}
}

func (s *TerritoryService) CreateCountry(ctx context.Context, country *models.Country) error {
	return s.repository.CreateCountry(ctx, country)
}

func (s *TerritoryService) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	return s.repository.GetAllCountries(ctx)
}

func (s *TerritoryService) GetCountryByID(ctx context.Context, id uint) (*models.Country, error) {
	return s.repository.GetCountryByID(ctx, id)
}

func (s *TerritoryService) UpdateCountry(ctx context.Context, country *models.Country) error {
	return s.repository.UpdateCountry(ctx, country)
}

func (s *TerritoryService) DeleteCountry(ctx context.Context, id uint) error {
	return s.repository.DeleteCountry(ctx, id)
}

func (s *TerritoryService) CreateRegion(ctx context.Context, region *models.Region) error {
	return s.repository.CreateRegion(ctx, region)
}

func (s *TerritoryService) GetAllRegions(ctx context.Context, countryID *uint) ([]models.Region, error) {
	return s.repository.GetAllRegions(ctx, countryID)
}

func (s *TerritoryService) UpdateRegion(ctx context.Context, region *models.Region) error {
	return s.repository.UpdateRegion(ctx, region)
}

func (s *TerritoryService) DeleteRegion(ctx context.Context, id uint) error {
	return s.repository.DeleteRegion(ctx, id)
}

func (s *TerritoryService) CreateDistrict(ctx context.Context, district *models.District) error {
	return s.repository.CreateDistrict(ctx, district)
}

func (s *TerritoryService) GetAllDistricts(ctx context.Context, countryID *uint) ([]models.District, error) {
	return s.repository.GetAllDistricts(ctx, countryID)
}

func (s *TerritoryService) UpdateDistrict(ctx context.Context, district *models.District) error {
	return s.repository.UpdateDistrict(ctx, district)
}

func (s *TerritoryService) DeleteDistrict(ctx context.Context, id uint) error {
	return s.repository.DeleteDistrict(ctx, id)
}

func (s *TerritoryService) CreateCity(ctx context.Context, city *models.City) error {
	return s.repository.CreateCity(ctx, city)
}

func (s *TerritoryService) GetAllCities(ctx context.Context, countryID *uint) ([]models.City, error) {
	return s.repository.GetAllCities(ctx, countryID)
}

func (s *TerritoryService) GetCityByID(ctx context.Context, id uint) (*models.City, error) {
	return s.repository.GetCityByID(ctx, id)
}

func (s *TerritoryService) UpdateCity(ctx context.Context, city *models.City) error {
	return s.repository.UpdateCity(ctx, city)
}

func (s *TerritoryService) DeleteCity(ctx context.Context, id uint) error {
	return s.repository.DeleteCity(ctx, id)
}

func (s *TerritoryService) ResolveCountryID(ctx context.Context, cityID uint) (uint, error) {
	return s.repository.ResolveCountryID(ctx, cityID)
}
