package handlers

import (
	"MedCenter/models"
	"MedCenter/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service        *services.CatalogService
	profileService *services.ProfileService
}

func NewCatalogHandler(service *services.CatalogService, profileService *services.ProfileService) *CatalogHandler {
	return &CatalogHandler{service: service, profileService: profileService}
}

func (h *CatalogHandler) CreateDisease(c *gin.Context) {
	var disease models.Disease
	if err := c.ShouldBindJSON(&disease); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateDisease(c, &disease); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, disease)
}

func (h *CatalogHandler) GetAllDiseases(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	diseases, err := h.service.GetAllDiseases(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, diseases)
}

func (h *CatalogHandler) UpdateDisease(c *gin.Context) {
	id, ok := parseUintParam(c, "disease_id")
	if !ok {
		return
	}
	var disease models.Disease
	if err := c.ShouldBindJSON(&disease); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	disease.ID = id
	if err := h.service.UpdateDisease(c, &disease); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, disease)
}

func (h *CatalogHandler) DeleteDisease(c *gin.Context) {
	id, ok := parseUintParam(c, "disease_id")
	if !ok {
		return
	}
	if err := h.service.DeleteDisease(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Disease deleted"})
}

func (h *CatalogHandler) CreateTypeOfVisit(c *gin.Context) {
	var typeOfVisit models.TypeOfVisit
	if err := c.ShouldBindJSON(&typeOfVisit); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateTypeOfVisit(c, &typeOfVisit); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, typeOfVisit)
}

func (h *CatalogHandler) GetAllTypesOfVisit(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	types, err := h.service.GetAllTypesOfVisit(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, types)
}

func (h *CatalogHandler) UpdateTypeOfVisit(c *gin.Context) {
	id, ok := parseUintParam(c, "type_id")
	if !ok {
		return
	}
	var typeOfVisit models.TypeOfVisit
	if err := c.ShouldBindJSON(&typeOfVisit); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	typeOfVisit.ID = id
	if err := h.service.UpdateTypeOfVisit(c, &typeOfVisit); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, typeOfVisit)
}

func (h *CatalogHandler) DeleteTypeOfVisit(c *gin.Context) {
	id, ok := parseUintParam(c, "type_id")
	if !ok {
		return
	}
	if err := h.service.DeleteTypeOfVisit(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Type of visit deleted"})
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateService(c, &service); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, service)
}

func (h *CatalogHandler) GetAllServices(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	servicesList, err := h.service.GetAllServices(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, servicesList)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := parseUintParam(c, "service_id")
	if !ok {
		return
	}
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	service.ID = id
	if err := h.service.UpdateService(c, &service); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, service)
}

// DeleteService fails while report service items still reference the service.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := parseUintParam(c, "service_id")
	if !ok {
		return
	}
	if err := h.service.DeleteService(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Service deleted"})
}
