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
	ProfileCacheExpiry = 7 * 24 * time.Hour
)

// ProfileRepository manages doctor/staff profiles, their report autofill
// templates, and their district coverage with per-visit-type price overrides.
type ProfileRepository struct {
	cache *cache.Cache
}

func NewProfileRepository(cache *cache.Cache) *ProfileRepository {
	return &ProfileRepository{cache: cache}
}

// Create saves a new profile after the country-scoped num_col/initials
// uniqueness checks. The check and write run under one lock keyed by the
// profile's user so concurrent saves of the same identity serialize.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return withLock(ctx, fmt.Sprintf("profile_lock:user_%d", profile.UserID), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := profile.ValidateUnique(tx); err != nil {
				return err
			}
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			return r.invalidate(ctx, profile.ID)
		})
	})
}

// Update revalidates uniqueness on every save, excluding the profile itself.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return withLock(ctx, fmt.Sprintf("profile_lock:%d", profile.ID), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := profile.ValidateUnique(tx); err != nil {
				return err
			}
			if err := tx.Save(profile).Error; err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			return r.invalidate(ctx, profile.ID)
		})
	})
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getProfileCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var profile models.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get profile from cache: %v", err)
	}

	var profile models.Profile
	err = database.DB.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, first_name, last_name, role_id, created_at")
		}).
		Preload("City").
		First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, profileJSON, ProfileCacheExpiry); err != nil {
		log.Printf("Failed to set profile in cache: %v", err)
	}
	return &profile, nil
}

// GetByUserID loads the profile attached to an authenticated user account.
// Handlers use it to resolve the caller's country for scoped queries.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	err := database.DB.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, first_name, last_name, role_id, created_at")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by user: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) GetAll(ctx context.Context, countryID *uint) ([]models.Profile, error) {
	query := database.DB.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, first_name, last_name, role_id, created_at")
		})
	if countryID != nil {
		query = query.
			Joins("JOIN city ON city.id = profile.city_id").
			Joins("JOIN district ON district.id = city.district_id").
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	var profiles []models.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all profiles: %w", err)
	}
	return profiles, nil
}

// Delete fails with a store-level error while insurance cases still
// reference the profile as doctor or sender.
func (r *ProfileRepository) Delete(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("profile_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Profile{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

// ResolveCountryID resolves the profile's country through its city chain.
func (r *ProfileRepository) ResolveCountryID(ctx context.Context, profileID uint) (uint, error) {
	var profile models.Profile
	if err := database.DB.WithContext(ctx).First(&profile, profileID).Error; err != nil {
		return 0, fmt.Errorf("failed to load profile %d: %w", profileID, err)
	}
	return profile.CountryID(database.DB.WithContext(ctx))
}

// CreateAutofillTemplate saves a named per-country defaults bundle; the
// (profile, name) pair is store-enforced unique.
func (r *ProfileRepository) CreateAutofillTemplate(ctx context.Context, template *models.ReportAutofillTemplate) error {
	return withLock(ctx, fmt.Sprintf("autofill_lock:%d_%s", template.ProfileID, template.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(template).Error; err != nil {
			return fmt.Errorf("failed to create autofill template: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepository) GetAutofillTemplates(ctx context.Context, profileID uint) ([]models.ReportAutofillTemplate, error) {
	var templates []models.ReportAutofillTemplate
	err := database.DB.WithContext(ctx).
		Preload("DiagnosisTemplate").
		Where("profile_id = ?", profileID).
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get autofill templates: %w", err)
	}
	return templates, nil
}

func (r *ProfileRepository) UpdateAutofillTemplate(ctx context.Context, template *models.ReportAutofillTemplate) error {
	return withLock(ctx, fmt.Sprintf("autofill_lock:%d", template.ID), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(template).Error; err != nil {
				return fmt.Errorf("failed to update autofill template: %w", err)
			}
			if err := tx.Model(template).Association("DiagnosisTemplate").Replace(template.DiagnosisTemplate); err != nil {
				return fmt.Errorf("failed to update template diagnoses: %w", err)
			}
			return nil
		})
	})
}

func (r *ProfileRepository) DeleteAutofillTemplate(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.ReportAutofillTemplate{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete autofill template: %w", err)
	}
	return nil
}

// CreateDoctorDistrict saves a coverage record with its city set. Callers
// are expected to supply at least one city; the model itself does not
// enforce non-emptiness.
func (r *ProfileRepository) CreateDoctorDistrict(ctx context.Context, district *models.DoctorDistrict) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(district).Error; err != nil {
			return fmt.Errorf("failed to create doctor district: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepository) GetDoctorDistricts(ctx context.Context, doctorID uint) ([]models.DoctorDistrict, error) {
	var districts []models.DoctorDistrict
	err := database.DB.WithContext(ctx).
		Preload("Cities").
		Where("doctor_id = ?", doctorID).
		Find(&districts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor districts: %w", err)
	}
	return districts, nil
}

func (r *ProfileRepository) UpdateDoctorDistrict(ctx context.Context, district *models.DoctorDistrict) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(district).Error; err != nil {
			return fmt.Errorf("failed to update doctor district: %w", err)
		}
		if err := tx.Model(district).Association("Cities").Replace(district.Cities); err != nil {
			return fmt.Errorf("failed to update doctor district cities: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepository) DeleteDoctorDistrict(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.DoctorDistrict{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete doctor district: %w", err)
	}
	return nil
}

// SetDistrictVisitPrice creates or updates the per-visit-type price override
// of a coverage district.
func (r *ProfileRepository) SetDistrictVisitPrice(ctx context.Context, price *models.DoctorDistrictVisitPrice) error {
	return withLock(ctx, fmt.Sprintf("ddvp_lock:%d_%d", price.DoctorDistrictID, price.TypeOfVisitID), func() error {
		var existing models.DoctorDistrictVisitPrice
		err := database.DB.WithContext(ctx).
			Where("doctor_district_id = ? AND type_of_visit_id = ?", price.DoctorDistrictID, price.TypeOfVisitID).
			First(&existing).Error
		if err == nil {
			price.ID = existing.ID
			if err := database.DB.WithContext(ctx).Save(price).Error; err != nil {
				return fmt.Errorf("failed to update district visit price: %w", err)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check district visit price: %w", err)
		}
		if err := database.DB.WithContext(ctx).Create(price).Error; err != nil {
			return fmt.Errorf("failed to create district visit price: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepository) DeleteDistrictVisitPrice(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.DoctorDistrictVisitPrice{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete district visit price: %w", err)
	}
	return nil
}

func (r *ProfileRepository) invalidate(ctx context.Context, profileID uint) error {
	if err := r.cache.Delete(ctx, r.getProfileCacheKey(profileID)); err != nil {
		return fmt.Errorf("failed to delete profile cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "profiles_cache*")
}

func (r *ProfileRepository) getProfileCacheKey(profileID uint) string {
	return fmt.Sprintf("profile_cache:%d", profileID)
}
