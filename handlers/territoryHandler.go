package handlers

import (
	"MedCenter/models"
	"MedCenter/services"

	"github.com/gin-gonic/gin"
)

type TerritoryHandler struct {
	service        *services.TerritoryService
	profileService *services.ProfileService
}

func NewTerritoryHandler(service *services.TerritoryService, profileService *services.ProfileService) *TerritoryHandler {
	return &TerritoryHandler{service: service, profileService: profileService}
}

func (h *TerritoryHandler) CreateCountry(c *gin.Context) {
	var country models.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCountry(c, &country); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, country)
}

func (h *TerritoryHandler) GetAllCountries(c *gin.Context) {
	countries, err := h.service.GetAllCountries(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, countries)
}

func (h *TerritoryHandler) GetCountryByID(c *gin.Context) {
	id, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	country, err := h.service.GetCountryByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if country == nil {
		c.JSON(404, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(200, country)
}

func (h *TerritoryHandler) UpdateCountry(c *gin.Context) {
	id, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	var country models.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	country.ID = id
	if err := h.service.UpdateCountry(c, &country); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, country)
}

// DeleteCountry fails while regions still reference the country.
func (h *TerritoryHandler) DeleteCountry(c *gin.Context) {
	id, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	if err := h.service.DeleteCountry(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Country deleted"})
}

func (h *TerritoryHandler) CreateRegion(c *gin.Context) {
	var region models.Region
	if err := c.ShouldBindJSON(&region); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateRegion(c, &region); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, region)
}

func (h *TerritoryHandler) GetAllRegions(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	regions, err := h.service.GetAllRegions(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, regions)
}

func (h *TerritoryHandler) UpdateRegion(c *gin.Context) {
	id, ok := parseUintParam(c, "region_id")
	if !ok {
		return
	}
	var region models.Region
	if err := c.ShouldBindJSON(&region); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	region.ID = id
	if err := h.service.UpdateRegion(c, &region); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, region)
}

func (h *TerritoryHandler) DeleteRegion(c *gin.Context) {
	id, ok := parseUintParam(c, "region_id")
	if !ok {
		return
	}
	if err := h.service.DeleteRegion(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Region deleted"})
}

func (h *TerritoryHandler) CreateDistrict(c *gin.Context) {
	var district models.District
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateDistrict(c, &district); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, district)
}

func (h *TerritoryHandler) GetAllDistricts(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	districts, err := h.service.GetAllDistricts(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, districts)
}

func (h *TerritoryHandler) UpdateDistrict(c *gin.Context) {
	id, ok := parseUintParam(c, "district_id")
	if !ok {
		return
	}
	var district models.District
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	district.ID = id
	if err := h.service.UpdateDistrict(c, &district); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, district)
}

func (h *TerritoryHandler) DeleteDistrict(c *gin.Context) {
	id, ok := parseUintParam(c, "district_id")
	if !ok {
		return
	}
	if err := h.service.DeleteDistrict(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "District deleted"})
}

// CreateCity enforces name uniqueness within the resolved country on
// creation only; renames are not re-checked.
func (h *TerritoryHandler) CreateCity(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCity(c, &city); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, city)
}

func (h *TerritoryHandler) GetAllCities(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	cities, err := h.service.GetAllCities(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, cities)
}

func (h *TerritoryHandler) GetCityByID(c *gin.Context) {
	id, ok := parseUintParam(c, "city_id")
	if !ok {
		return
	}
	city, err := h.service.GetCityByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if city == nil {
		c.JSON(404, gin.H{"error": "City not found"})
		return
	}
	c.JSON(200, city)
}

func (h *TerritoryHandler) UpdateCity(c *gin.Context) {
	id, ok := parseUintParam(c, "city_id")
	if !ok {
		return
	}
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	city.ID = id
	if err := h.service.UpdateCity(c, &city); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, city)
}

func (h *TerritoryHandler) DeleteCity(c *gin.Context) {
	id, ok := parseUintParam(c, "city_id")
	if !ok {
		return
	}
	if err := h.service.DeleteCity(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "City deleted"})
}
