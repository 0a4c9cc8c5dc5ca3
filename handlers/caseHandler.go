package handlers

import (
	"MedCenter/middlewares"
	"MedCenter/models"
	"MedCenter/services"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	service        *services.CaseService
	profileService *services.ProfileService
}

func NewCaseHandler(service *services.CaseService, profileService *services.ProfileService) *CaseHandler {
	return &CaseHandler{service: service, profileService: profileService}
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	var insuranceCase models.InsuranceCase
	if err := c.ShouldBindJSON(&insuranceCase); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &insuranceCase); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, insuranceCase)
}

func (h *CaseHandler) GetCaseByID(c *gin.Context) {
	id, ok := parseUintParam(c, "case_id")
	if !ok {
		return
	}
	insuranceCase, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if insuranceCase == nil {
		c.JSON(404, gin.H{"error": "Case not found"})
		return
	}
	hasReport, err := h.service.HasReport(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"case":       insuranceCase,
		"display":    insuranceCase.String(),
		"has_report": hasReport,
	})
}

// GetAllCases lists cases for the caller's country; doctors additionally see
// only their own cases.
func (h *CaseHandler) GetAllCases(c *gin.Context) {
	countryID, profile, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	var doctorID *uint
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	if role == "Doctor" && profile != nil {
		doctorID = &profile.ID
	}
	cases, err := h.service.GetAll(c, countryID, doctorID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, cases)
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, ok := parseUintParam(c, "case_id")
	if !ok {
		return
	}
	var insuranceCase models.InsuranceCase
	if err := c.ShouldBindJSON(&insuranceCase); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	insuranceCase.ID = id
	if err := h.service.Update(c, &insuranceCase); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, insuranceCase)
}

// MarkCaseSeen flips the seen flag, typically when a doctor first opens a
// newly assigned case.
func (h *CaseHandler) MarkCaseSeen(c *gin.Context) {
	id, ok := parseUintParam(c, "case_id")
	if !ok {
		return
	}
	if err := h.service.MarkSeen(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Case marked as seen"})
}

// DeleteCase fails while a report still references the case.
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, ok := parseUintParam(c, "case_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Case deleted"})
}
