package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Disease model
type Disease struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string  `gorm:"size:80;not null;unique;column:name" json:"name"`
	CountryID uint    `gorm:"column:country_id;not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Disease) TableName() string {
	return "disease"
}

// TypeOfVisit model
type TypeOfVisit struct {
	ID            uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string  `gorm:"size:100;not null;column:name;uniqueIndex:idx_type_of_visit_name_country" json:"name"`
	ShortName     string  `gorm:"size:50;column:short_name" json:"short_name"`
	IsSecondVisit bool    `gorm:"column:is_second_visit;not null;default:false" json:"is_second_visit"`
	CountryID     uint    `gorm:"column:country_id;not null;index;uniqueIndex:idx_type_of_visit_name_country" json:"country_id"`
	Country       Country `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Initial       string  `gorm:"size:2;column:initial" json:"initial"`
}

func (TypeOfVisit) TableName() string {
	return "type_of_visit"
}

// String prefers the short name when one is set.
func (t *TypeOfVisit) String() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

// ReportTemplate holds the single document template of a country. The
// backing file lives at DOC_TEMPLATES/<country>_template.docx and is
// overwritten in place on re-upload.
type ReportTemplate struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Template  string  `gorm:"size:255;not null;column:template" json:"template"`
	CountryID uint    `gorm:"column:country_id;not null;uniqueIndex" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReportTemplate) TableName() string {
	return "report_template"
}

// Report is the clinical and billing record of a completed case. Exactly one
// report may exist per case.
type Report struct {
	ID                  uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CompanyRefNumber    string        `gorm:"size:50;not null;column:company_ref_number;index" json:"company_ref_number"`
	PatientsFirstName   string        `gorm:"size:50;not null;column:patients_first_name" json:"patients_first_name"`
	PatientsLastName    string        `gorm:"size:50;not null;column:patients_last_name;index" json:"patients_last_name"`
	PatientsDateOfBirth string        `gorm:"size:10;not null;column:patients_date_of_birth" json:"patients_date_of_birth"`
	PatientsPolicyNumber string       `gorm:"size:100;column:patients_policy_number" json:"patients_policy_number"`
	TypeOfVisitID       uint          `gorm:"column:type_of_visit_id;not null;index" json:"type_of_visit_id"`
	TypeOfVisit         TypeOfVisit   `gorm:"foreignKey:TypeOfVisitID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	VisitPrice          float64       `gorm:"column:visit_price;not null;default:0" json:"visit_price"`
	VisitPriceDoctor    float64       `gorm:"column:visit_price_doctor;not null;default:0" json:"visit_price_doctor"`
	DateOfVisit         time.Time     `gorm:"type:date;not null;column:date_of_visit;index" json:"date_of_visit"`
	TimeOfVisit         *string       `gorm:"size:5;column:time_of_visit" json:"time_of_visit"`
	CityID              uint          `gorm:"column:city_id;not null;index" json:"city_id"`
	City                City          `gorm:"foreignKey:CityID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	DetailedLocation    string        `gorm:"size:100;column:detailed_location" json:"detailed_location"`
	CauseOfVisit        string        `gorm:"type:text;not null;column:cause_of_visit" json:"cause_of_visit"`
	Checkup             string        `gorm:"type:text;not null;column:checkup" json:"checkup"`
	AdditionalCheckup   string        `gorm:"type:text;column:additional_checkup" json:"additional_checkup"`
	Diagnosis           []Disease     `gorm:"many2many:report_diagnosis" json:"diagnosis"`
	Prescription        string        `gorm:"type:text;not null;column:prescription" json:"prescription"`
	Checked             bool          `gorm:"column:checked;not null;default:false" json:"checked"`
	CaseID              uint          `gorm:"column:case_id;not null;uniqueIndex" json:"case_id"`
	Case                InsuranceCase `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	ServiceItems        []ServiceItem `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE" json:"service_items"`
	AdditionalImages    []AdditionalImage `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE" json:"additional_images"`
}

func (Report) TableName() string {
	return "report"
}

// String renders "<last name> <first name> <full ref number>".
func (r *Report) String() string {
	return strings.Join([]string{r.PatientsLastName, r.PatientsFirstName, r.FullRefNumber()}, " ")
}

// TotalPrice is the amount billed to the insurer: the cost of every attached
// service item plus the visit price. An unsaved report totals to zero by
// definition, not as an error. ServiceItems must be preloaded.
func (r *Report) TotalPrice() float64 {
	if r.ID == 0 {
		return 0
	}
	total := 0.0
	for _, item := range r.ServiceItems {
		total += item.Cost
	}
	return total + r.VisitPrice
}

// TotalPriceDoctor is the amount paid to the doctor, using the doctor-side
// cost snapshots and visit price.
func (r *Report) TotalPriceDoctor() float64 {
	if r.ID == 0 {
		return 0
	}
	total := 0.0
	for _, item := range r.ServiceItems {
		total += item.CostDoctor
	}
	return total + r.VisitPriceDoctor
}

// FullRefNumber derives the billing reference: company initials plus the
// zero-padded ref number, the case date as DDMM, and the doctor initials
// with the visit-type initial appended unless the doctor is foreign.
// Requires Case (with Company and Doctor) and TypeOfVisit preloaded.
func (r *Report) FullRefNumber() string {
	ref := r.Case.Company.Initials + fmt.Sprintf("%03d", r.Case.RefNumber)
	dateOfRequest := r.Case.DateTime.Format("0201")
	info := r.Case.Doctor.Initials
	if !r.Case.Doctor.IsForeignDoctor {
		info += r.TypeOfVisit.Initial
	}
	return strings.Join([]string{ref, dateOfRequest, info}, "-")
}

// NumberOfVisit is the 1-based position of this report among all reports in
// the same country with the same company ref number and patient name,
// ordered by date of visit. Repeat visits billed under one original
// reference are numbered through here.
func (r *Report) NumberOfVisit(db *gorm.DB) (int, error) {
	countryID, err := ResolveCountryID(db, r.CityID)
	if err != nil {
		return 0, err
	}

	var ids []uint
	err = db.Model(&Report{}).
		Joins("JOIN city ON city.id = report.city_id").
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("region.country_id = ?", countryID).
		Where("report.company_ref_number = ?", r.CompanyRefNumber).
		Where("report.patients_first_name = ?", r.PatientsFirstName).
		Where("report.patients_last_name = ?", r.PatientsLastName).
		Order("report.date_of_visit ASC").
		Pluck("report.id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to order visits: %w", err)
	}

	for index, id := range ids {
		if id == r.ID {
			return index + 1, nil
		}
	}
	return 0, fmt.Errorf("report %d not found among its own visits", r.ID)
}

// FullCompanyRefNumber appends "_<n>" to the company ref number for repeat
// visits (n > 1); the first visit keeps the original reference unchanged.
func (r *Report) FullCompanyRefNumber(db *gorm.DB) (string, error) {
	number, err := r.NumberOfVisit(db)
	if err != nil {
		return "", err
	}
	if number > 1 {
		return fmt.Sprintf("%s_%d", r.CompanyRefNumber, number), nil
	}
	return r.CompanyRefNumber, nil
}

// AdditionalImage is a supporting file attached to a report, ordered by
// position. The backing file lives under FILES/<report_id>/.
type AdditionalImage struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ReportID uint   `gorm:"column:report_id;not null;index" json:"report_id"`
	Report   Report `gorm:"foreignKey:ReportID;references:ID" json:"-"`
	Image    string `gorm:"size:255;not null;column:image" json:"image"`
	Position int    `gorm:"column:position;not null" json:"position"`
	Expand   bool   `gorm:"column:expand;not null;default:false" json:"expand"`
}

func (AdditionalImage) TableName() string {
	return "additional_image"
}

// Service is a priced, country-scoped catalog entry. unsummable_price marks
// services whose cost the presentation layer keeps out of case-level totals;
// nothing at this layer acts on it.
type Service struct {
	ID              uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string  `gorm:"size:100;not null;column:name;uniqueIndex:idx_service_name_country" json:"name"`
	CountryID       uint    `gorm:"column:country_id;not null;index;uniqueIndex:idx_service_name_country" json:"country_id"`
	Country         Country `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Price           float64 `gorm:"column:price;not null" json:"price"`
	PriceDoctor     float64 `gorm:"column:price_doctor;not null" json:"price_doctor"`
	UnsummablePrice bool    `gorm:"column:unsummable_price;not null;default:false" json:"unsummable_price"`
}

func (Service) TableName() string {
	return "service"
}

// ServiceItem attaches a service to a report with a quantity and cost
// snapshots taken at billing time, so later catalog price edits do not
// rewrite past reports.
type ServiceItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ReportID   uint    `gorm:"column:report_id;not null;index;uniqueIndex:idx_service_item_report_service" json:"report_id"`
	ServiceID  uint    `gorm:"column:service_id;not null;index;uniqueIndex:idx_service_item_report_service" json:"service_id"`
	Service    Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity   uint    `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Cost       float64 `gorm:"column:cost;not null;default:0" json:"cost"`
	CostDoctor float64 `gorm:"column:cost_doctor;not null;default:0" json:"cost_doctor"`
}

func (ServiceItem) TableName() string {
	return "service_item"
}

// String renders the service name with the quantity when above one.
func (s *ServiceItem) String() string {
	if s.Quantity > 1 {
		return fmt.Sprintf("%s [%d]", s.Service.Name, s.Quantity)
	}
	return s.Service.Name
}
