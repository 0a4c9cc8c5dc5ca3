package handlers

import (
	"MedCenter/models"
	"MedCenter/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	service        *services.CompanyService
	profileService *services.ProfileService
}

func NewCompanyHandler(service *services.CompanyService, profileService *services.ProfileService) *CompanyHandler {
	return &CompanyHandler{service: service, profileService: profileService}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCompany(c, &company); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, company)
}

func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, ok := parseUintParam(c, "company_id")
	if !ok {
		return
	}
	company, err := h.service.GetCompanyByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if company == nil {
		c.JSON(404, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(200, company)
}

func (h *CompanyHandler) GetAllCompanies(c *gin.Context) {
	companies, err := h.service.GetAllCompanies(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, companies)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseUintParam(c, "company_id")
	if !ok {
		return
	}
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	company.ID = id
	if err := h.service.UpdateCompany(c, &company); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, company)
}

// DeleteCompany fails while insurance cases still reference the company.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseUintParam(c, "company_id")
	if !ok {
		return
	}
	if err := h.service.DeleteCompany(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Company deleted"})
}

func (h *CompanyHandler) CreatePriceGroup(c *gin.Context) {
	var group models.PriceGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreatePriceGroup(c, &group); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, group)
}

func (h *CompanyHandler) GetAllPriceGroups(c *gin.Context) {
	groups, err := h.service.GetAllPriceGroups(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, groups)
}

func (h *CompanyHandler) UpdatePriceGroup(c *gin.Context) {
	id, ok := parseUintParam(c, "group_id")
	if !ok {
		return
	}
	var group models.PriceGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	group.ID = id
	if err := h.service.UpdatePriceGroup(c, &group); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, group)
}

func (h *CompanyHandler) DeletePriceGroup(c *gin.Context) {
	id, ok := parseUintParam(c, "group_id")
	if !ok {
		return
	}
	if err := h.service.DeletePriceGroup(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Price group deleted"})
}

func (h *CompanyHandler) CreateTariff(c *gin.Context) {
	var tariff models.Tariff
	if err := c.ShouldBindJSON(&tariff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateTariff(c, &tariff); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, tariff)
}

func (h *CompanyHandler) GetAllTariffs(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	tariffs, err := h.service.GetAllTariffs(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, tariffs)
}

func (h *CompanyHandler) DeleteTariff(c *gin.Context) {
	id, ok := parseUintParam(c, "tariff_id")
	if !ok {
		return
	}
	if err := h.service.DeleteTariff(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Tariff deleted"})
}

// SetVisitTariff creates or updates the price for one visit type in a tariff.
func (h *CompanyHandler) SetVisitTariff(c *gin.Context) {
	var visitTariff models.VisitTariff
	if err := c.ShouldBindJSON(&visitTariff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.SetVisitTariff(c, &visitTariff); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, visitTariff)
}

func (h *CompanyHandler) DeleteVisitTariff(c *gin.Context) {
	id, ok := parseUintParam(c, "visit_tariff_id")
	if !ok {
		return
	}
	if err := h.service.DeleteVisitTariff(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Visit tariff deleted"})
}
