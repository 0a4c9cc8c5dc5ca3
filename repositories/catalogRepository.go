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
	CatalogCacheExpiry = 7 * 24 * time.Hour
)

// CatalogRepository manages the country-scoped reference catalogs consumed
// by reports: diseases, visit types, and billable services.
type CatalogRepository struct {
	cache *cache.Cache
}

func NewCatalogRepository(cache *cache.Cache) *CatalogRepository {
	return &CatalogRepository{cache: cache}
}

func (r *CatalogRepository) CreateDisease(ctx context.Context, disease *models.Disease) error {
	return withLock(ctx, fmt.Sprintf("disease_lock:%s", disease.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(disease).Error; err != nil {
			return fmt.Errorf("failed to create disease: %w", err)
		}
		return r.cache.DeleteAll(ctx, "diseases_cache*")
	})
}

func (r *CatalogRepository) GetAllDiseases(ctx context.Context, countryID *uint) ([]models.Disease, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "diseases_cache"
	if countryID != nil {
		cacheKey = fmt.Sprintf("diseases_cache:%d", *countryID)
	}
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var diseases []models.Disease
		if err := json.Unmarshal([]byte(cached), &diseases); err == nil {
			return diseases, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get diseases from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).Order("name ASC")
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	var diseases []models.Disease
	if err := query.Find(&diseases).Error; err != nil {
		return nil, fmt.Errorf("failed to get all diseases: %w", err)
	}

	diseasesJSON, err := json.Marshal(diseases)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diseases: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, diseasesJSON, CatalogCacheExpiry); err != nil {
		log.Printf("Failed to set diseases in cache: %v", err)
	}
	return diseases, nil
}

func (r *CatalogRepository) UpdateDisease(ctx context.Context, disease *models.Disease) error {
	return withLock(ctx, fmt.Sprintf("disease_lock:%d", disease.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(disease).Error; err != nil {
			return fmt.Errorf("failed to update disease: %w", err)
		}
		return r.cache.DeleteAll(ctx, "diseases_cache*")
	})
}

func (r *CatalogRepository) DeleteDisease(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("disease_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Disease{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete disease: %w", err)
		}
		return r.cache.DeleteAll(ctx, "diseases_cache*")
	})
}

func (r *CatalogRepository) CreateTypeOfVisit(ctx context.Context, typeOfVisit *models.TypeOfVisit) error {
	return withLock(ctx, fmt.Sprintf("type_of_visit_lock:%d_%s", typeOfVisit.CountryID, typeOfVisit.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(typeOfVisit).Error; err != nil {
			return fmt.Errorf("failed to create type of visit: %w", err)
		}
		return r.cache.DeleteAll(ctx, "types_of_visit_cache*")
	})
}

func (r *CatalogRepository) GetAllTypesOfVisit(ctx context.Context, countryID *uint) ([]models.TypeOfVisit, error) {
	query := database.DB.WithContext(ctx).Order("name ASC")
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	var types []models.TypeOfVisit
	if err := query.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to get all types of visit: %w", err)
	}
	return types, nil
}

func (r *CatalogRepository) UpdateTypeOfVisit(ctx context.Context, typeOfVisit *models.TypeOfVisit) error {
	return withLock(ctx, fmt.Sprintf("type_of_visit_lock:%d", typeOfVisit.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(typeOfVisit).Error; err != nil {
			return fmt.Errorf("failed to update type of visit: %w", err)
		}
		return r.cache.DeleteAll(ctx, "types_of_visit_cache*")
	})
}

func (r *CatalogRepository) DeleteTypeOfVisit(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("type_of_visit_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.TypeOfVisit{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete type of visit: %w", err)
		}
		return r.cache.DeleteAll(ctx, "types_of_visit_cache*")
	})
}

func (r *CatalogRepository) CreateService(ctx context.Context, service *models.Service) error {
	return withLock(ctx, fmt.Sprintf("service_lock:%d_%s", service.CountryID, service.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(service).Error; err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}
		return r.cache.DeleteAll(ctx, "services_cache*")
	})
}

func (r *CatalogRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	err := database.DB.WithContext(ctx).First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *CatalogRepository) GetAllServices(ctx context.Context, countryID *uint) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "services_cache"
	if countryID != nil {
		cacheKey = fmt.Sprintf("services_cache:%d", *countryID)
	}
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var services []models.Service
		if err := json.Unmarshal([]byte(cached), &services); err == nil {
			return services, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get services from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).Order("name ASC")
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal services: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, servicesJSON, CatalogCacheExpiry); err != nil {
		log.Printf("Failed to set services in cache: %v", err)
	}
	return services, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, service *models.Service) error {
	return withLock(ctx, fmt.Sprintf("service_lock:%d", service.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(service).Error; err != nil {
			return fmt.Errorf("failed to update service: %w", err)
		}
		return r.cache.DeleteAll(ctx, "services_cache*")
	})
}

// DeleteService fails with a store-level error while service items still
// reference the service.
func (r *CatalogRepository) DeleteService(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("service_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Service{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		return r.cache.DeleteAll(ctx, "services_cache*")
	})
}
