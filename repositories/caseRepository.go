package repositories

import (
	"MedCenter/cache"
	"MedCenter/database"
	"MedCenter/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	CaseCacheExpiry = 24 * time.Hour
)

// CaseRepository tracks insurance cases. The composite uniqueness key
// (doctor's country, company, ref_number, year) is revalidated inside a
// lock on every write, creation and update alike.
type CaseRepository struct {
	cache *cache.Cache
}

func NewCaseRepository(cache *cache.Cache) *CaseRepository {
	return &CaseRepository{cache: cache}
}

func (r *CaseRepository) caseLockKey(c *models.InsuranceCase) string {
	return fmt.Sprintf("case_lock:%d_%d_%d", c.CompanyID, c.RefNumber, c.DateTime.Year())
}

func (r *CaseRepository) Create(ctx context.Context, insuranceCase *models.InsuranceCase) error {
	return withLock(ctx, r.caseLockKey(insuranceCase), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := insuranceCase.ValidateUnique(tx); err != nil {
				return err
			}
			if err := tx.Create(insuranceCase).Error; err != nil {
				return fmt.Errorf("failed to create case: %w", err)
			}
			return r.invalidate(ctx, insuranceCase.ID)
		})
	})
}

// Update revalidates the uniqueness key even when the edit touches unrelated
// fields; a save colliding with a pre-existing row fails regardless of what
// changed.
func (r *CaseRepository) Update(ctx context.Context, insuranceCase *models.InsuranceCase) error {
	return withLock(ctx, r.caseLockKey(insuranceCase), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := insuranceCase.ValidateUnique(tx); err != nil {
				return err
			}
			if err := tx.Save(insuranceCase).Error; err != nil {
				return fmt.Errorf("failed to update case: %w", err)
			}
			return r.invalidate(ctx, insuranceCase.ID)
		})
	})
}

func (r *CaseRepository) GetByID(ctx context.Context, id uint) (*models.InsuranceCase, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getCaseCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var insuranceCase models.InsuranceCase
		if err := json.Unmarshal([]byte(cached), &insuranceCase); err == nil {
			return &insuranceCase, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get case from cache: %v", err)
	}

	var insuranceCase models.InsuranceCase
	err = database.DB.WithContext(ctx).
		Preload("Doctor").
		Preload("Doctor.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, first_name, last_name, role_id, created_at")
		}).
		Preload("Company").
		Preload("Sender").
		First(&insuranceCase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	caseJSON, err := json.Marshal(insuranceCase)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal case: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, caseJSON, CaseCacheExpiry); err != nil {
		log.Printf("Failed to set case in cache: %v", err)
	}
	return &insuranceCase, nil
}

// GetAll lists cases newest first, restricted to the doctor's country when
// countryID is set, and optionally to a single doctor.
func (r *CaseRepository) GetAll(ctx context.Context, countryID *uint, doctorID *uint) ([]models.InsuranceCase, error) {
	query := database.DB.WithContext(ctx).
		Preload("Doctor").
		Preload("Company").
		Order("insurance_case.date_time DESC")
	if countryID != nil {
		query = query.
			Joins("JOIN profile ON profile.id = insurance_case.doctor_id").
			Joins("JOIN city ON city.id = profile.city_id").
			Joins("JOIN district ON district.id = city.district_id").
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	if doctorID != nil {
		query = query.Where("insurance_case.doctor_id = ?", *doctorID)
	}
	var cases []models.InsuranceCase
	if err := query.Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cases: %w", err)
	}
	return cases, nil
}

// MarkSeen flips the seen flag without touching the uniqueness key.
func (r *CaseRepository) MarkSeen(ctx context.Context, id uint) error {
	err := database.DB.WithContext(ctx).
		Model(&models.InsuranceCase{}).
		Where("id = ?", id).
		Update("seen", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark case seen: %w", err)
	}
	return r.invalidate(ctx, id)
}

// HasReport reports whether the case already owns a report.
func (r *CaseRepository) HasReport(ctx context.Context, id uint) (bool, error) {
	insuranceCase := models.InsuranceCase{ID: id}
	return insuranceCase.HasReport(database.DB.WithContext(ctx))
}

// Delete fails with a store-level error while a report still references the
// case.
func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("case_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.InsuranceCase{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete case: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *CaseRepository) invalidate(ctx context.Context, caseID uint) error {
	if err := r.cache.Delete(ctx, r.getCaseCacheKey(caseID)); err != nil {
		return fmt.Errorf("failed to delete case cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "cases_cache*")
}

func (r *CaseRepository) getCaseCacheKey(caseID uint) string {
	return fmt.Sprintf("case_cache:%d", caseID)
}
