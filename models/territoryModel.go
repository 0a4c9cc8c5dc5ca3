package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ValidationError marks a business-rule violation detected before a write.
// Handlers translate it to a 400 response instead of a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Country model
type Country struct {
	ID      uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name    string   `gorm:"size:50;not null;unique;column:name" json:"name"`
	Regions []Region `gorm:"foreignKey:CountryID;references:ID" json:"-"`
}

func (Country) TableName() string {
	return "country"
}

// Region model
type Region struct {
	ID          uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string     `gorm:"size:100;not null;column:name;uniqueIndex:idx_region_name_country" json:"name"`
	CountryID   uint       `gorm:"column:country_id;not null;index;uniqueIndex:idx_region_name_country" json:"country_id"`
	IsCityState bool       `gorm:"column:is_city_state;not null;default:false" json:"is_city_state"`
	Country     Country    `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Districts   []District `gorm:"foreignKey:RegionID;references:ID" json:"-"`
}

func (Region) TableName() string {
	return "region"
}

// District model
type District struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string `gorm:"size:50;not null;column:name;uniqueIndex:idx_district_name_region" json:"name"`
	RegionID uint   `gorm:"column:region_id;not null;index;uniqueIndex:idx_district_name_region" json:"region_id"`
	Region   Region `gorm:"foreignKey:RegionID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Cities   []City `gorm:"foreignKey:DistrictID;references:ID" json:"-"`
}

func (District) TableName() string {
	return "district"
}

// City model
type City struct {
	ID         uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string   `gorm:"size:100;not null;column:name;uniqueIndex:idx_city_name_district" json:"name"`
	DistrictID uint     `gorm:"column:district_id;not null;index;uniqueIndex:idx_city_name_district" json:"district_id"`
	District   District `gorm:"foreignKey:DistrictID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (City) TableName() string {
	return "city"
}

// ResolveCountryID walks city -> district -> region -> country and returns the
// country primary key. Every entity that scopes a uniqueness rule "within the
// doctor's country" resolves it through here rather than storing the country
// redundantly. Returns an error when the city does not exist or any link in
// the chain is missing.
func ResolveCountryID(db *gorm.DB, cityID uint) (uint, error) {
	var countryID uint
	err := db.Model(&City{}).
		Select("region.country_id").
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("city.id = ?", cityID).
		Scan(&countryID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resolve country for city %d: %w", cityID, err)
	}
	if countryID == 0 {
		return 0, fmt.Errorf("city %d has no resolvable country", cityID)
	}
	return countryID, nil
}

// ResolveCountryIDByDistrict resolves the country for a district. Used when
// validating a city that has not been saved yet.
func ResolveCountryIDByDistrict(db *gorm.DB, districtID uint) (uint, error) {
	var countryID uint
	err := db.Model(&District{}).
		Select("region.country_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("district.id = ?", districtID).
		Scan(&countryID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resolve country for district %d: %w", districtID, err)
	}
	if countryID == 0 {
		return 0, fmt.Errorf("district %d has no resolvable country", districtID)
	}
	return countryID, nil
}

// ValidateUnique rejects a new city whose name is already used anywhere in
// the same country, even under a different district. The (name, district)
// pair is additionally enforced by the store.
func (c *City) ValidateUnique(db *gorm.DB) error {
	if c.ID != 0 {
		return nil
	}

	countryID, err := ResolveCountryIDByDistrict(db, c.DistrictID)
	if err != nil {
		return err
	}

	var count int64
	err = db.Model(&City{}).
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("region.country_id = ? AND city.name = ?", countryID, c.Name).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check city uniqueness: %w", err)
	}
	if count > 0 {
		return &ValidationError{Message: "City with this name in the current country already exists"}
	}
	return nil
}
