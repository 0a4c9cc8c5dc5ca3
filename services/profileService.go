package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"MedCenter/utils"
	"context"
	"fmt"
)

type ProfileService struct {
	repository *repositories.ProfileRepository
}

func NewProfileService(repository *repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repository: repository}
}

func (s *ProfileService) Create(ctx context.Context, profile *models.Profile) error {
	if err := utils.ValidateProfileData(*profile); err != nil {
		return fmt.Errorf("invalid profile data: %w", err)
	}
	return s.repository.Create(ctx, profile)
}

func (s *ProfileService) Update(ctx context.Context, profile *models.Profile) error {
	if err := utils.ValidateProfileData(*profile); err != nil {
		return fmt.Errorf("invalid profile data: %w", err)
	}
	return s.repository.Update(ctx, profile)
}

func (s *ProfileService) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.repository.GetByUserID(ctx, userID)
}

func (s *ProfileService) GetAll(ctx context.Context, countryID *uint) ([]models.Profile, error) {
	return s.repository.GetAll(ctx, countryID)
}

func (s *ProfileService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *ProfileService) ResolveCountryID(ctx context.Context, profileID uint) (uint, error) {
	return s.repository.ResolveCountryID(ctx, profileID)
}

func (s *ProfileService) CreateAutofillTemplate(ctx context.Context, template *models.ReportAutofillTemplate) error {
	return s.repository.CreateAutofillTemplate(ctx, template)
}

func (s *ProfileService) GetAutofillTemplates(ctx context.Context, profileID uint) ([]models.ReportAutofillTemplate, error) {
	return s.repository.GetAutofillTemplates(ctx, profileID)
}

func (s *ProfileService) UpdateAutofillTemplate(ctx context.Context, template *models.ReportAutofillTemplate) error {
	return s.repository.UpdateAutofillTemplate(ctx, template)
}

func (s *ProfileService) DeleteAutofillTemplate(ctx context.Context, id uint) error {
	return s.repository.DeleteAutofillTemplate(ctx, id)
}

func (s *ProfileService) CreateDoctorDistrict(ctx context.Context, district *models.DoctorDistrict) error {
	return s.repository.CreateDoctorDistrict(ctx, district)
}

func (s *ProfileService) GetDoctorDistricts(ctx context.Context, doctorID uint) ([]models.DoctorDistrict, error) {
	return s.repository.GetDoctorDistricts(ctx, doctorID)
}

func (s *ProfileService) UpdateDoctorDistrict(ctx context.Context, district *models.DoctorDistrict) error {
	return s.repository.UpdateDoctorDistrict(ctx, district)
}

func (s *ProfileService) DeleteDoctorDistrict(ctx context.Context, id uint) error {
	return s.repository.DeleteDoctorDistrict(ctx, id)
}

func (s *ProfileService) SetDistrictVisitPrice(ctx context.Context, price *models.DoctorDistrictVisitPrice) error {
	return s.repository.SetDistrictVisitPrice(ctx, price)
}

func (s *ProfileService) DeleteDistrictVisitPrice(ctx context.Context, id uint) error {
	return s.repository.DeleteDistrictVisitPrice(ctx, id)
}
