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
	TerritoryCacheExpiry = 7 * 24 * time.Hour
)

// TerritoryRepository manages the country/region/district/city hierarchy.
// Deleting a node that still has children is rejected by the store's
// RESTRICT foreign keys; those errors surface as-is rather than being
// pre-validated here.
type TerritoryRepository struct {
	cache *cache.Cache
}

func NewTerritoryRepository(cache *cache.Cache) *TerritoryRepository {
	return &TerritoryRepository{cache: cache}
}

// ResolveCountryID resolves a city's country through the district/region
// chain. Exposed so handlers can scope list queries to the caller's country.
func (r *TerritoryRepository) ResolveCountryID(ctx context.Context, cityID uint) (uint, error) {
	return models.ResolveCountryID(database.DB.WithContext(ctx), cityID)
}

func (r *TerritoryRepository) CreateCountry(ctx context.Context, country *models.Country) error {
	return withLock(ctx, fmt.Sprintf("country_lock:%s", country.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(country).Error; err != nil {
			return fmt.Errorf("failed to create country: %w", err)
		}
		return r.cache.DeleteAll(ctx, "countries_cache")
	})
}

func (r *TerritoryRepository) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "countries_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var countries []models.Country
		if err := json.Unmarshal([]byte(cached), &countries); err == nil {
			return countries, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get countries from cache: %v", err)
	}

	var countries []models.Country
	if err := database.DB.WithContext(ctx).Order("name ASC").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all countries: %w", err)
	}

	countriesJSON, err := json.Marshal(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal countries: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, countriesJSON, TerritoryCacheExpiry); err != nil {
		log.Printf("Failed to set countries in cache: %v", err)
	}
	return countries, nil
}

func (r *TerritoryRepository) GetCountryByID(ctx context.Context, id uint) (*models.Country, error) {
	var country models.Country
	err := database.DB.WithContext(ctx).First(&country, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return &country, nil
}

func (r *TerritoryRepository) UpdateCountry(ctx context.Context, country *models.Country) error {
	return withLock(ctx, fmt.Sprintf("country_lock:%d", country.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(country).Error; err != nil {
			return fmt.Errorf("failed to update country: %w", err)
		}
		return r.cache.DeleteAll(ctx, "countries_cache")
	})
}

// DeleteCountry fails with a store-level referential-integrity error while
// any region still references the country.
func (r *TerritoryRepository) DeleteCountry(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("country_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Country{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete country: %w", err)
		}
		return r.cache.DeleteAll(ctx, "countries_cache")
	})
}

func (r *TerritoryRepository) CreateRegion(ctx context.Context, region *models.Region) error {
	return withLock(ctx, fmt.Sprintf("region_lock:%d_%s", region.CountryID, region.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(region).Error; err != nil {
			return fmt.Errorf("failed to create region: %w", err)
		}
		return r.cache.DeleteAll(ctx, "regions_cache*")
	})
}

// GetAllRegions lists regions, restricted to one country when countryID is
// set. Non-administrators always pass their own resolved country.
func (r *TerritoryRepository) GetAllRegions(ctx context.Context, countryID *uint) ([]models.Region, error) {
	query := database.DB.WithContext(ctx).Order("name ASC")
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	var regions []models.Region
	if err := query.Find(&regions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all regions: %w", err)
	}
	return regions, nil
}

func (r *TerritoryRepository) GetRegionByID(ctx context.Context, id uint) (*models.Region, error) {
	var region models.Region
	err := database.DB.WithContext(ctx).First(&region, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &region, nil
}

func (r *TerritoryRepository) UpdateRegion(ctx context.Context, region *models.Region) error {
	return withLock(ctx, fmt.Sprintf("region_lock:%d", region.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(region).Error; err != nil {
			return fmt.Errorf("failed to update region: %w", err)
		}
		return r.cache.DeleteAll(ctx, "regions_cache*")
	})
}

func (r *TerritoryRepository) DeleteRegion(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("region_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.Region{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete region: %w", err)
		}
		return r.cache.DeleteAll(ctx, "regions_cache*")
	})
}

func (r *TerritoryRepository) CreateDistrict(ctx context.Context, district *models.District) error {
	return withLock(ctx, fmt.Sprintf("district_lock:%d_%s", district.RegionID, district.Name), func() error {
		if err := database.DB.WithContext(ctx).Create(district).Error; err != nil {
			return fmt.Errorf("failed to create district: %w", err)
		}
		return r.cache.DeleteAll(ctx, "districts_cache*")
	})
}

func (r *TerritoryRepository) GetAllDistricts(ctx context.Context, countryID *uint) ([]models.District, error) {
	query := database.DB.WithContext(ctx).Order("district.name ASC")
	if countryID != nil {
		query = query.
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	var districts []models.District
	if err := query.Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all districts: %w", err)
	}
	return districts, nil
}

func (r *TerritoryRepository) GetDistrictByID(ctx context.Context, id uint) (*models.District, error) {
	var district models.District
	err := database.DB.WithContext(ctx).First(&district, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get district: %w", err)
	}
	return &district, nil
}

func (r *TerritoryRepository) UpdateDistrict(ctx context.Context, district *models.District) error {
	return withLock(ctx, fmt.Sprintf("district_lock:%d", district.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(district).Error; err != nil {
			return fmt.Errorf("failed to update district: %w", err)
		}
		return r.cache.DeleteAll(ctx, "districts_cache*")
	})
}

func (r *TerritoryRepository) DeleteDistrict(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("district_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.District{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete district: %w", err)
		}
		return r.cache.DeleteAll(ctx, "districts_cache*")
	})
}

// CreateCity rejects a name already used anywhere in the same country, not
// only in the same district. The check and the insert run under one lock
// scoped to the resolved country.
func (r *TerritoryRepository) CreateCity(ctx context.Context, city *models.City) error {
	countryID, err := models.ResolveCountryIDByDistrict(database.DB.WithContext(ctx), city.DistrictID)
	if err != nil {
		return err
	}

	return withLock(ctx, fmt.Sprintf("city_lock:%d_%s", countryID, city.Name), func() error {
		return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := city.ValidateUnique(tx); err != nil {
				return err
			}
			if err := tx.Create(city).Error; err != nil {
				return fmt.Errorf("failed to create city: %w", err)
			}
			return r.cache.DeleteAll(ctx, "cities_cache*")
		})
	})
}

func (r *TerritoryRepository) GetAllCities(ctx context.Context, countryID *uint) ([]models.City, error) {
	query := database.DB.WithContext(ctx).Order("city.name ASC")
	if countryID != nil {
		query = query.
			Joins("JOIN district ON district.id = city.district_id").
			Joins("JOIN region ON region.id = district.region_id").
			Where("region.country_id = ?", *countryID)
	}
	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cities: %w", err)
	}
	return cities, nil
}

func (r *TerritoryRepository) GetCityByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	err := database.DB.WithContext(ctx).First(&city, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return &city, nil
}

func (r *TerritoryRepository) UpdateCity(ctx context.Context, city *models.City) error {
	return withLock(ctx, fmt.Sprintf("city_lock:%d", city.ID), func() error {
		if err := database.DB.WithContext(ctx).Save(city).Error; err != nil {
			return fmt.Errorf("failed to update city: %w", err)
		}
		return r.cache.DeleteAll(ctx, "cities_cache*")
	})
}

func (r *TerritoryRepository) DeleteCity(ctx context.Context, id uint) error {
	return withLock(ctx, fmt.Sprintf("city_lock:%d", id), func() error {
		if err := database.DB.WithContext(ctx).Delete(&models.City{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete city: %w", err)
		}
		return r.cache.DeleteAll(ctx, "cities_cache*")
	})
}
