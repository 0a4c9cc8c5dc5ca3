package repositories

import (
	"MedCenter/cache"
	"MedCenter/database"
	"MedCenter/models"
	"MedCenter/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ReportCacheExpiry = 24 * time.Hour
)

// ReportRepository manages reports, their service items and images, and the
// per-country document templates. File cleanup is an explicit call at each
// deletion site, ordered after the row transaction commits, so a crash can
// orphan a file but never dangle a row reference.
type ReportRepository struct {
	cache *cache.Cache
	store *storage.MediaStore
}

func NewReportRepository(cache *cache.Cache, store *storage.MediaStore) *ReportRepository {
	return &ReportRepository{cache: cache, store: store}
}

// Create files a report against a case. The one-report-per-case rule is
// store-enforced by the unique case index.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return withLock(ctx, fmt.Sprintf("report_lock:case_%d", report.CaseID), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(report).Error; err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}
			return r.invalidate(ctx, report.ID)
		})
	})
}

func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	return withLock(ctx, fmt.Sprintf("report_lock:%d", report.ID), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("ServiceItems", "AdditionalImages", "Diagnosis").Save(report).Error; err != nil {
				return fmt.Errorf("failed to update report: %w", err)
			}
			if err := tx.Model(report).Association("Diagnosis").Replace(report.Diagnosis); err != nil {
				return fmt.Errorf("failed to update report diagnoses: %w", err)
			}
			return r.invalidate(ctx, report.ID)
		})
	})
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getReportCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var report models.Report
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get report from cache: %v", err)
	}

	var report models.Report
	err = database.DB.WithContext(ctx).
		Preload("TypeOfVisit").
		Preload("City").
		Preload("Diagnosis").
		Preload("Case").
		Preload("Case.Company").
		Preload("Case.Doctor").
		Preload("ServiceItems").
		Preload("ServiceItems.Service").
		Preload("AdditionalImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, reportJSON, ReportCacheExpiry); err != nil {
		log.Printf("Failed to set report in cache: %v", err)
	}
	return &report, nil
}

// GetAll lists reports newest visit first, restricted to one country when
// countryID is set.
func (r *ReportRepository) GetAll(ctx context.Context, countryID *uint) ([]models.Report, error) {
	query := database.DB.WithContext(ctx).
		Preload("TypeOfVisit").
		Preload("Case").
		Preload("Case.Company").
		Preload("Case.Doctor").
		Preload("ServiceItems").
		Order("report.date_of_visit DESC")
	if countryID != nil {
		query = query.
			Joins("JOIN city ON city.id = report.city_id").
			Joins("JOIN district ON district.id = city.district_id").
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reports: %w", err)
	}
	return reports, nil
}

// NumberOfVisit exposes the repeat-visit position for a loaded report.
func (r *ReportRepository) NumberOfVisit(ctx context.Context, report *models.Report) (int, error) {
	return report.NumberOfVisit(database.DB.WithContext(ctx))
}

// FullCompanyRefNumber derives the billing reference with the repeat-visit
// suffix applied.
func (r *ReportRepository) FullCompanyRefNumber(ctx context.Context, report *models.Report) (string, error) {
	return report.FullCompanyRefNumber(database.DB.WithContext(ctx))
}

// Delete removes the report row (service items and images cascade) and then
// its whole file directory. Directory removal ignores errors: files are
// best-effort cleanup, the row deletion is what must not fail silently.
func (r *ReportRepository) Delete(ctx context.Context, id uint) error {
	err := withLock(ctx, fmt.Sprintf("report_lock:%d", id), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Select("ServiceItems", "AdditionalImages").Delete(&models.Report{ID: id}).Error; err != nil {
				return fmt.Errorf("failed to delete report: %w", err)
			}
			return r.invalidate(ctx, id)
		})
	})
	if err != nil {
		return err
	}
	r.store.RemoveReportFiles(id)
	return nil
}

// AddServiceItem attaches a service to a report, snapshotting the catalog
// prices into cost/cost_doctor unless the caller supplied explicit costs.
// Later catalog edits do not rewrite the snapshot.
func (r *ReportRepository) AddServiceItem(ctx context.Context, item *models.ServiceItem) error {
	return withLock(ctx, fmt.Sprintf("service_item_lock:%d_%d", item.ReportID, item.ServiceID), func() error {
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		if item.Cost == 0 && item.CostDoctor == 0 {
			var service models.Service
			if err := database.DB.WithContext(ctx).First(&service, item.ServiceID).Error; err != nil {
				return fmt.Errorf("failed to load service %d: %w", item.ServiceID, err)
			}
			item.Cost = service.Price * float64(item.Quantity)
			item.CostDoctor = service.PriceDoctor * float64(item.Quantity)
		}
		if err := database.DB.WithContext(ctx).Create(item).Error; err != nil {
			return fmt.Errorf("failed to create service item: %w", err)
		}
		return r.invalidate(ctx, item.ReportID)
	})
}

func (r *ReportRepository) UpdateServiceItem(ctx context.Context, item *models.ServiceItem) error {
	return withLock(ctx, fmt.Sprintf("service_item_lock:%d", item.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(item).Error; err != nil {
			return fmt.Errorf("failed to update service item: %w", err)
		}
		return r.invalidate(ctx, item.ReportID)
	})
}

// DeleteServiceItem removes one item; the report itself is untouched.
func (r *ReportRepository) DeleteServiceItem(ctx context.Context, id uint) error {
	var item models.ServiceItem
	if err := database.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return fmt.Errorf("failed to load service item %d: %w", id, err)
	}
	if err := database.DB.WithContext(ctx).Delete(&models.ServiceItem{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete service item: %w", err)
	}
	return r.invalidate(ctx, item.ReportID)
}

// AddImage stores the uploaded file under FILES/<report_id>/ and records the
// row pointing at it.
func (r *ReportRepository) AddImage(ctx context.Context, image *models.AdditionalImage, filename string, src io.Reader) error {
	relPath, err := r.store.SaveImage(image.ReportID, filename, src)
	if err != nil {
		return err
	}
	image.Image = relPath
	if err := database.DB.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create additional image: %w", err)
	}
	return r.invalidate(ctx, image.ReportID)
}

// ReplaceImage swaps an image's backing file: the previously stored file is
// removed first (a missing file is tolerated), then the new one is written
// and the row updated.
func (r *ReportRepository) ReplaceImage(ctx context.Context, image *models.AdditionalImage, filename string, src io.Reader) error {
	var existing models.AdditionalImage
	if err := database.DB.WithContext(ctx).First(&existing, image.ID).Error; err != nil {
		return fmt.Errorf("failed to load additional image %d: %w", image.ID, err)
	}
	r.store.RemoveImage(existing.Image)

	relPath, err := r.store.SaveImage(existing.ReportID, filename, src)
	if err != nil {
		return err
	}
	image.ReportID = existing.ReportID
	image.Image = relPath
	if err := database.DB.WithContext(ctx).Save(image).Error; err != nil {
		return fmt.Errorf("failed to update additional image: %w", err)
	}
	return r.invalidate(ctx, existing.ReportID)
}

// DeleteImage removes the row, then the stored file. A missing file is
// tolerated silently.
func (r *ReportRepository) DeleteImage(ctx context.Context, id uint) error {
	var image models.AdditionalImage
	if err := database.DB.WithContext(ctx).First(&image, id).Error; err != nil {
		return fmt.Errorf("failed to load additional image %d: %w", id, err)
	}
	if err := database.DB.WithContext(ctx).Delete(&models.AdditionalImage{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete additional image: %w", err)
	}
	r.store.RemoveImage(image.Image)
	return r.invalidate(ctx, image.ReportID)
}

// UpsertTemplate stores a country's document template, overwriting any
// previous file at the fixed per-country path, and records or updates the
// single row for that country.
func (r *ReportRepository) UpsertTemplate(ctx context.Context, countryID uint, src io.Reader) (*models.ReportTemplate, error) {
	var country models.Country
	if err := database.DB.WithContext(ctx).First(&country, countryID).Error; err != nil {
		return nil, fmt.Errorf("failed to load country %d: %w", countryID, err)
	}

	relPath, err := r.store.SaveTemplate(country.Name, src)
	if err != nil {
		return nil, err
	}

	var template models.ReportTemplate
	err = database.DB.WithContext(ctx).Where("country_id = ?", countryID).First(&template).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check report template: %w", err)
	}
	template.CountryID = countryID
	template.Template = relPath
	if err := database.DB.WithContext(ctx).Save(&template).Error; err != nil {
		return nil, fmt.Errorf("failed to save report template: %w", err)
	}
	return &template, nil
}

func (r *ReportRepository) GetTemplateByCountry(ctx context.Context, countryID uint) (*models.ReportTemplate, error) {
	var template models.ReportTemplate
	err := database.DB.WithContext(ctx).Where("country_id = ?", countryID).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report template: %w", err)
	}
	return &template, nil
}

// DeleteTemplate removes the row and then the backing file. Unlike image
// cleanup, a missing template file propagates as an error.
func (r *ReportRepository) DeleteTemplate(ctx context.Context, countryID uint) error {
	var template models.ReportTemplate
	if err := database.DB.WithContext(ctx).Where("country_id = ?", countryID).First(&template).Error; err != nil {
		return fmt.Errorf("failed to load report template: %w", err)
	}
	if err := database.DB.WithContext(ctx).Delete(&template).Error; err != nil {
		return fmt.Errorf("failed to delete report template: %w", err)
	}
	return r.store.RemoveTemplate(template.Template)
}

func (r *ReportRepository) invalidate(ctx context.Context, reportID uint) error {
	if err := r.cache.Delete(ctx, r.getReportCacheKey(reportID)); err != nil {
		return fmt.Errorf("failed to delete report cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "reports_cache*")
}

func (r *ReportRepository) getReportCacheKey(reportID uint) string {
	return fmt.Sprintf("report_cache:%d", reportID)
}
