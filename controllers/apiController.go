package controllers

import (
	"MedCenter/handlers"
	"MedCenter/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the domain routes. Every route requires a valid
// token; territory, catalog, and pricing writes additionally require the
// Admin role.
func SetupAPIRoutes(
	router *gin.Engine,
	territoryHandler *handlers.TerritoryHandler,
	profileHandler *handlers.ProfileHandler,
	companyHandler *handlers.CompanyHandler,
	catalogHandler *handlers.CatalogHandler,
	caseHandler *handlers.CaseHandler,
	reportHandler *handlers.ReportHandler,
) {
	api := router.Group("", middlewares.TokenAuthMiddleware())

	api.GET("/countries", territoryHandler.GetAllCountries)
	api.GET("/countries/:country_id", territoryHandler.GetCountryByID)
	api.GET("/regions", territoryHandler.GetAllRegions)
	api.GET("/districts", territoryHandler.GetAllDistricts)
	api.GET("/cities", territoryHandler.GetAllCities)
	api.GET("/cities/:city_id", territoryHandler.GetCityByID)

	api.GET("/profiles", profileHandler.GetAllProfiles)
	api.GET("/profiles/me", profileHandler.GetOwnProfile)
	api.GET("/profiles/:profile_id", profileHandler.GetProfileByID)
	api.POST("/profiles", profileHandler.CreateProfile)
	api.PUT("/profiles/:profile_id", profileHandler.UpdateProfile)

	api.POST("/autofill_templates", profileHandler.CreateAutofillTemplate)
	api.GET("/profiles/:profile_id/autofill_templates", profileHandler.GetAutofillTemplates)
	api.PUT("/autofill_templates/:template_id", profileHandler.UpdateAutofillTemplate)
	api.DELETE("/autofill_templates/:template_id", profileHandler.DeleteAutofillTemplate)

	api.GET("/profiles/:profile_id/districts", profileHandler.GetDoctorDistricts)

	api.GET("/companies", companyHandler.GetAllCompanies)
	api.GET("/companies/:company_id", companyHandler.GetCompanyByID)
	api.GET("/tariffs", companyHandler.GetAllTariffs)
	api.GET("/price_groups", companyHandler.GetAllPriceGroups)

	api.GET("/diseases", catalogHandler.GetAllDiseases)
	api.GET("/types_of_visit", catalogHandler.GetAllTypesOfVisit)
	api.GET("/medical_services", catalogHandler.GetAllServices)

	api.POST("/cases", caseHandler.CreateCase)
	api.GET("/cases", caseHandler.GetAllCases)
	api.GET("/cases/:case_id", caseHandler.GetCaseByID)
	api.PUT("/cases/:case_id", caseHandler.UpdateCase)
	api.POST("/cases/:case_id/seen", caseHandler.MarkCaseSeen)
	api.DELETE("/cases/:case_id", caseHandler.DeleteCase)

	api.POST("/reports", reportHandler.CreateReport)
	api.GET("/reports", reportHandler.GetAllReports)
	api.GET("/reports/:report_id", reportHandler.GetReportByID)
	api.PUT("/reports/:report_id", reportHandler.UpdateReport)
	api.DELETE("/reports/:report_id", reportHandler.DeleteReport)

	api.POST("/service_items", reportHandler.AddServiceItem)
	api.PUT("/service_items/:item_id", reportHandler.UpdateServiceItem)
	api.DELETE("/service_items/:item_id", reportHandler.DeleteServiceItem)

	api.POST("/reports/:report_id/images", reportHandler.AddImage)
	api.PUT("/images/:image_id", reportHandler.ReplaceImage)
	api.DELETE("/images/:image_id", reportHandler.DeleteImage)

	admin := router.Group("", middlewares.TokenAuthMiddleware(), middlewares.RoleAuthMiddleware("Admin"))

	admin.POST("/countries", territoryHandler.CreateCountry)
	admin.PUT("/countries/:country_id", territoryHandler.UpdateCountry)
	admin.DELETE("/countries/:country_id", territoryHandler.DeleteCountry)
	admin.POST("/regions", territoryHandler.CreateRegion)
	admin.PUT("/regions/:region_id", territoryHandler.UpdateRegion)
	admin.DELETE("/regions/:region_id", territoryHandler.DeleteRegion)
	admin.POST("/districts", territoryHandler.CreateDistrict)
	admin.PUT("/districts/:district_id", territoryHandler.UpdateDistrict)
	admin.DELETE("/districts/:district_id", territoryHandler.DeleteDistrict)
	admin.POST("/cities", territoryHandler.CreateCity)
	admin.PUT("/cities/:city_id", territoryHandler.UpdateCity)
	admin.DELETE("/cities/:city_id", territoryHandler.DeleteCity)

	admin.DELETE("/profiles/:profile_id", profileHandler.DeleteProfile)
	admin.POST("/doctor_districts", profileHandler.CreateDoctorDistrict)
	admin.PUT("/doctor_districts/:district_id", profileHandler.UpdateDoctorDistrict)
	admin.DELETE("/doctor_districts/:district_id", profileHandler.DeleteDoctorDistrict)
	admin.POST("/district_visit_prices", profileHandler.SetDistrictVisitPrice)
	admin.DELETE("/district_visit_prices/:price_id", profileHandler.DeleteDistrictVisitPrice)

	admin.POST("/companies", companyHandler.CreateCompany)
	admin.PUT("/companies/:company_id", companyHandler.UpdateCompany)
	admin.DELETE("/companies/:company_id", companyHandler.DeleteCompany)
	admin.POST("/price_groups", companyHandler.CreatePriceGroup)
	admin.PUT("/price_groups/:group_id", companyHandler.UpdatePriceGroup)
	admin.DELETE("/price_groups/:group_id", companyHandler.DeletePriceGroup)
	admin.POST("/tariffs", companyHandler.CreateTariff)
	admin.DELETE("/tariffs/:tariff_id", companyHandler.DeleteTariff)
	admin.POST("/visit_tariffs", companyHandler.SetVisitTariff)
	admin.DELETE("/visit_tariffs/:visit_tariff_id", companyHandler.DeleteVisitTariff)

	admin.POST("/diseases", catalogHandler.CreateDisease)
	admin.PUT("/diseases/:disease_id", catalogHandler.UpdateDisease)
	admin.DELETE("/diseases/:disease_id", catalogHandler.DeleteDisease)
	admin.POST("/types_of_visit", catalogHandler.CreateTypeOfVisit)
	admin.PUT("/types_of_visit/:type_id", catalogHandler.UpdateTypeOfVisit)
	admin.DELETE("/types_of_visit/:type_id", catalogHandler.DeleteTypeOfVisit)
	admin.POST("/medical_services", catalogHandler.CreateService)
	admin.PUT("/medical_services/:service_id", catalogHandler.UpdateService)
	admin.DELETE("/medical_services/:service_id", catalogHandler.DeleteService)

	admin.POST("/countries/:country_id/template", reportHandler.UploadTemplate)
	admin.GET("/countries/:country_id/template", reportHandler.GetTemplate)
	admin.DELETE("/countries/:country_id/template", reportHandler.DeleteTemplate)
}
