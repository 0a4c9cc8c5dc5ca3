package handlers

import (
	"MedCenter/models"
	"MedCenter/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service        *services.ReportService
	profileService *services.ProfileService
}

func NewReportHandler(service *services.ReportService, profileService *services.ProfileService) *ReportHandler {
	return &ReportHandler{service: service, profileService: profileService}
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &report); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, report)
}

// GetReportByID returns the report together with its derived billing block:
// totals, visit number, and the two reference number renditions.
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	id, ok := parseUintParam(c, "report_id")
	if !ok {
		return
	}
	report, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(404, gin.H{"error": "Report not found"})
		return
	}

	numberOfVisit, err := h.service.NumberOfVisit(c, report)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	companyRef, err := h.service.FullCompanyRefNumber(c, report)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"report":                  report,
		"total_price":             report.TotalPrice(),
		"total_price_doctor":      report.TotalPriceDoctor(),
		"full_ref_number":         report.FullRefNumber(),
		"full_company_ref_number": companyRef,
		"number_of_visit":         numberOfVisit,
	})
}

func (h *ReportHandler) GetAllReports(c *gin.Context) {
	countryID, _, err := callerScope(c, h.profileService)
	if err != nil {
		c.JSON(403, gin.H{"error": err.Error()})
		return
	}
	reports, err := h.service.GetAll(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reports)
}

func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, ok := parseUintParam(c, "report_id")
	if !ok {
		return
	}
	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	report.ID = id
	if err := h.service.Update(c, &report); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, report)
}

// DeleteReport removes the report with its items and images, then its file
// directory.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseUintParam(c, "report_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Report deleted"})
}

func (h *ReportHandler) AddServiceItem(c *gin.Context) {
	var item models.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AddServiceItem(c, &item); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, item)
}

func (h *ReportHandler) UpdateServiceItem(c *gin.Context) {
	id, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}
	var item models.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	item.ID = id
	if err := h.service.UpdateServiceItem(c, &item); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, item)
}

func (h *ReportHandler) DeleteServiceItem(c *gin.Context) {
	id, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}
	if err := h.service.DeleteServiceItem(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Service item deleted"})
}

// AddImage accepts a multipart upload and stores it under the report's
// file directory.
func (h *ReportHandler) AddImage(c *gin.Context) {
	reportID, ok := parseUintParam(c, "report_id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"error": "Image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	position, _ := strconv.Atoi(c.PostForm("position"))
	expand := c.PostForm("expand") == "true"

	image := models.AdditionalImage{
		ReportID: reportID,
		Position: position,
		Expand:   expand,
	}
	if err := h.service.AddImage(c, &image, fileHeader.Filename, file); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, image)
}

// ReplaceImage swaps the backing file of an existing image; the old file is
// removed first.
func (h *ReportHandler) ReplaceImage(c *gin.Context) {
	id, ok := parseUintParam(c, "image_id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"error": "Image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	position, _ := strconv.Atoi(c.PostForm("position"))
	expand := c.PostForm("expand") == "true"

	image := models.AdditionalImage{
		ID:       id,
		Position: position,
		Expand:   expand,
	}
	if err := h.service.ReplaceImage(c, &image, fileHeader.Filename, file); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, image)
}

func (h *ReportHandler) DeleteImage(c *gin.Context) {
	id, ok := parseUintParam(c, "image_id")
	if !ok {
		return
	}
	if err := h.service.DeleteImage(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Image deleted"})
}

// UploadTemplate installs or overwrites the document template of a country.
func (h *ReportHandler) UploadTemplate(c *gin.Context) {
	countryID, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("template")
	if err != nil {
		c.JSON(400, gin.H{"error": "Template file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	template, err := h.service.UpsertTemplate(c, countryID, file)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, template)
}

func (h *ReportHandler) GetTemplate(c *gin.Context) {
	countryID, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	template, err := h.service.GetTemplateByCountry(c, countryID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if template == nil {
		c.JSON(404, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(200, template)
}

// DeleteTemplate removes the row and the backing file; a missing file is an
// error here, unlike image cleanup.
func (h *ReportHandler) DeleteTemplate(c *gin.Context) {
	countryID, ok := parseUintParam(c, "country_id")
	if !ok {
		return
	}
	if err := h.service.DeleteTemplate(c, countryID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Template deleted"})
}
