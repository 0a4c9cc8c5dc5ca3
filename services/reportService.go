package services

import (
	"MedCenter/models"
	"MedCenter/repositories"
	"MedCenter/utils"
	"context"
	"fmt"
	"io"
)

type ReportService struct {
	repository *repositories.ReportRepository
}

func NewReportService(repository *repositories.ReportRepository) *ReportService {
	return &ReportService{repository: repository}
}

func (s *ReportService) Create(ctx context.Context, report *models.Report) error {
	if err := utils.ValidateReportData(*report); err != nil {
		return fmt.Errorf("invalid report data: %w", err)
	}
	return s.repository.Create(ctx, report)
}

func (s *ReportService) Update(ctx context.Context, report *models.Report) error {
	if err := utils.ValidateReportData(*report); err != nil {
		return fmt.Errorf("invalid report data: %w", err)
	}
	return s.repository.Update(ctx, report)
}

func (s *ReportService) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ReportService) GetAll(ctx context.Context, countryID *uint) ([]models.Report, error) {
	return s.repository.GetAll(ctx, countryID)
}

func (s *ReportService) NumberOfVisit(ctx context.Context, report *models.Report) (int, error) {
	return s.repository.NumberOfVisit(ctx, report)
}

func (s *ReportService) FullCompanyRefNumber(ctx context.Context, report *models.Report) (string, error) {
	return s.repository.FullCompanyRefNumber(ctx, report)
}

func (s *ReportService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *ReportService) AddServiceItem(ctx context.Context, item *models.ServiceItem) error {
	return s.repository.AddServiceItem(ctx, item)
}

func (s *ReportService) UpdateServiceItem(ctx context.Context, item *models.ServiceItem) error {
	return s.repository.UpdateServiceItem(ctx, item)
}

func (s *ReportService) DeleteServiceItem(ctx context.Context, id uint) error {
	return s.repository.DeleteServiceItem(ctx, id)
}

func (s *ReportService) AddImage(ctx context.Context, image *models.AdditionalImage, filename string, src io.Reader) error {
	return s.repository.AddImage(ctx, image, filename, src)
}

func (s *ReportService) ReplaceImage(ctx context.Context, image *models.AdditionalImage, filename string, src io.Reader) error {
	return s.repository.ReplaceImage(ctx, image, filename, src)
}

func (s *ReportService) DeleteImage(ctx context.Context, id uint) error {
	return s.repository.DeleteImage(ctx, id)
}

func (s *ReportService) UpsertTemplate(ctx context.Context, countryID uint, src io.Reader) (*models.ReportTemplate, error) {
	return s.repository.UpsertTemplate(ctx, countryID, src)
}

func (s *ReportService) GetTemplateByCountry(ctx context.Context, countryID uint) (*models.ReportTemplate, error) {
	return s.repository.GetTemplateByCountry(ctx, countryID)
}

func (s *ReportService) DeleteTemplate(ctx context.Context, countryID uint) error {
	return s.repository.DeleteTemplate(ctx, countryID)
}
