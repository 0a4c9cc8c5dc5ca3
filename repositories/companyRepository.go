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
	CompanyCacheExpiry = 7 * 24 * time.Hour
)

// CompanyRepository manages the insurance companies and their pricing
// schedule: price groups, per-district tariffs, and per-visit-type prices.
// All of it is administrator-maintained reference data; uniqueness beyond
// the declared composite indexes is not validated here.
type CompanyRepository struct {
	cache *cache.Cache
}

func NewCompanyRepository(cache *cache.Cache) *CompanyRepository {
	return &CompanyRepository{cache: cache}
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company *models.Company) error {
	return withLock(ctx, fmt.Sprintf("company_lock:%s", company.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(company).Error; err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		return r.cache.DeleteAll(ctx, "companies_cache")
	})
}

func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := database.DB.WithContext(ctx).
		Preload("PriceGroup").
		First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "companies_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var companies []models.Company
		if err := json.Unmarshal([]byte(cached), &companies); err == nil {
			return companies, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get companies from cache: %v", err)
	}

	var companies []models.Company
	if err := database.DB.WithContext(ctx).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all companies: %w", err)
	}

	companiesJSON, err := json.Marshal(companies)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal companies: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, companiesJSON, CompanyCacheExpiry); err != nil {
		log.Printf("Failed to set companies in cache: %v", err)
	}
	return companies, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, company *models.Company) error {
	return withLock(ctx, fmt.Sprintf("company_lock:%d", company.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(company).Error; err != nil {
			return fmt.Errorf("failed to update company: %w", err)
		}
		return r.cache.DeleteAll(ctx, "companies_cache")
	})
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("company_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Company{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}
		return r.cache.DeleteAll(ctx, "companies_cache")
	})
}

func (r *CompanyRepository) CreatePriceGroup(ctx context.Context, group *models.PriceGroup) error {
	if err := database.DB.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("failed to create price group: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetAllPriceGroups(ctx context.Context) ([]models.PriceGroup, error) {
	var groups []models.PriceGroup
	if err := database.DB.WithContext(ctx).Order("name ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get all price groups: %w", err)
	}
	return groups, nil
}

func (r *CompanyRepository) UpdatePriceGroup(ctx context.Context, group *models.PriceGroup) error {
	if err := database.DB.WithContext(ctx).Save(group).Error; err != nil {
		return fmt.Errorf("failed to update price group: %w", err)
	}
	return nil
}

// DeletePriceGroup fails with a store-level error while a company still
// references the group.
func (r *CompanyRepository) DeletePriceGroup(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.PriceGroup{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete price group: %w", err)
	}
	return nil
}

func (r *CompanyRepository) CreateTariff(ctx context.Context, tariff *models.Tariff) error {
	return withLock(ctx, fmt.Sprintf("tariff_lock:%d_%d", tariff.DistrictID, tariff.PriceGroupID), func() error {
		if err := database.DB.WithContext(ctx).Create(tariff).Error; err != nil {
			return fmt.Errorf("failed to create tariff: %w", err)
		}
		return nil
	})
}

// GetAllTariffs lists tariffs ordered by price group, restricted to one
// country when countryID is set.
func (r *CompanyRepository) GetAllTariffs(ctx context.Context, countryID *uint) ([]models.Tariff, error) {
	query := database.DB.WithContext(ctx).
		Preload("District").
		Preload("PriceGroup").
		Preload("VisitTariffs").
		Order("price_group_id ASC")
	if countryID != nil {
		query = query.
			Joins("JOIN district ON district.id = tariff.district_id").
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	var tariffs []models.Tariff
	if err := query.Find(&tariffs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tariffs: %w", err)
	}
	return tariffs, nil
}

func (r *CompanyRepository) DeleteTariff(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.Tariff{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete tariff: %w", err)
	}
	return nil
}

// SetVisitTariff creates or updates the price of one visit type within a
// tariff; the (tariff, visit type) pair is store-enforced unique.
func (r *CompanyRepository) SetVisitTariff(ctx context.Context, visitTariff *models.VisitTariff) error {
	return withLock(ctx, fmt.Sprintf("visit_tariff_lock:%d_%d", visitTariff.TariffID, visitTariff.TypeOfVisitID), func() error {
		var existing models.VisitTariff
		err := database.DB.WithContext(ctx).
			Where("tariff_id = ? AND type_of_visit_id = ?", visitTariff.TariffID, visitTariff.TypeOfVisitID).
			First(&existing).Error
		if err == nil {
			visitTariff.ID = existing.ID
			if err := database.DB.WithContext(ctx).Save(visitTariff).Error; err != nil {
				return fmt.Errorf("failed to update visit tariff: %w", err)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check visit tariff: %w", err)
		}
		if err := database.DB.WithContext(ctx).Create(visitTariff).Error; err != nil {
			return fmt.Errorf("failed to create visit tariff: %w", err)
		}
		return nil
	})
}

func (r *CompanyRepository) DeleteVisitTariff(ctx context.Context, id uint) error {
	if err := database.DB.WithContext(ctx).Delete(&models.VisitTariff{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete visit tariff: %w", err)
	}
	return nil
}
