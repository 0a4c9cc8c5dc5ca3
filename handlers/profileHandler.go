package handlers

import (
	"MedCenter/models"
	"MedCenter/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &profile); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, profile)
}

func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	id, ok := parseUintParam(c, "profile_id")
	if !ok {
		return
	}
	profile, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(404, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(200, profile)
}

// GetOwnProfile returns the profile attached to the authenticated caller.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	_, profile, err := callerScope(c, h.service)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(404, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(200, profile)
}

func (h *ProfileHandler) GetAllProfiles(c *gin.Context) {
	countryID, _, err := callerScope(c, h.service)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	profiles, err := h.service.GetAll(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profiles)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseUintParam(c, "profile_id")
	if !ok {
		return
	}
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	profile.ID = id
	if err := h.service.Update(c, &profile); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profile)
}

// DeleteProfile fails while insurance cases still reference the profile.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseUintParam(c, "profile_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Profile deleted"})
}

func (h *ProfileHandler) CreateAutofillTemplate(c *gin.Context) {
	var template models.ReportAutofillTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateAutofillTemplate(c, &template); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, template)
}

func (h *ProfileHandler) GetAutofillTemplates(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profile_id")
	if !ok {
		return
	}
	templates, err := h.service.GetAutofillTemplates(c, profileID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, templates)
}

func (h *ProfileHandler) UpdateAutofillTemplate(c *gin.Context) {
	id, ok := parseUintParam(c, "template_id")
	if !ok {
		return
	}
	var template models.ReportAutofillTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	template.ID = id
	if err := h.service.UpdateAutofillTemplate(c, &template); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, template)
}

func (h *ProfileHandler) DeleteAutofillTemplate(c *gin.Context) {
	id, ok := parseUintParam(c, "template_id")
	if !ok {
		return
	}
	if err := h.service.DeleteAutofillTemplate(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Autofill template deleted"})
}

func (h *ProfileHandler) CreateDoctorDistrict(c *gin.Context) {
	var district models.DoctorDistrict
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateDoctorDistrict(c, &district); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, district)
}

func (h *ProfileHandler) GetDoctorDistricts(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "profile_id")
	if !ok {
		return
	}
	districts, err := h.service.GetDoctorDistricts(c, doctorID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, districts)
}

func (h *ProfileHandler) UpdateDoctorDistrict(c *gin.Context) {
	id, ok := parseUintParam(c, "district_id")
	if !ok {
		return
	}
	var district models.DoctorDistrict
	if err := c.ShouldBindJSON(&district); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	district.ID = id
	if err := h.service.UpdateDoctorDistrict(c, &district); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, district)
}

func (h *ProfileHandler) DeleteDoctorDistrict(c *gin.Context) {
	id, ok := parseUintParam(c, "district_id")
	if !ok {
		return
	}
	if err := h.service.DeleteDoctorDistrict(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Doctor district deleted"})
}

func (h *ProfileHandler) SetDistrictVisitPrice(c *gin.Context) {
	var price models.DoctorDistrictVisitPrice
	if err := c.ShouldBindJSON(&price); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.SetDistrictVisitPrice(c, &price); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, price)
}

func (h *ProfileHandler) DeleteDistrictVisitPrice(c *gin.Context) {
	id, ok := parseUintParam(c, "price_id")
	if !ok {
		return
	}
	if err := h.service.DeleteDistrictVisitPrice(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "District visit price deleted"})
}
