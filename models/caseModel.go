package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// InsuranceCase statuses. Plain labels, not a guarded state machine: an
// authorized caller may move a case from any status to any other.
const (
	CaseStatusAccepted           = "accepted"
	CaseStatusCancelledByCompany = "cancelled_by_company"
	CaseStatusWrongData          = "wrong_data"
	CaseStatusFailed             = "failed"
)

// InsuranceCase is one insurer request for a doctor visit. No two cases may
// share (doctor's country, company, ref_number, year of date_time); the
// country is resolved through the doctor's city chain at validation time
// rather than stored on the row.
type InsuranceCase struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Doctor    Profile   `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	DateTime  time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	Message   string    `gorm:"size:500;not null;column:message" json:"message"`
	Seen      bool      `gorm:"column:seen;not null;default:false" json:"seen"`
	RefNumber uint      `gorm:"column:ref_number;not null" json:"ref_number"`
	CompanyID uint      `gorm:"column:company_id;not null;index" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	SenderID  uint      `gorm:"column:sender_id;not null;index" json:"sender_id"`
	Sender    Profile   `gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Status    string    `gorm:"size:20;not null;default:'accepted';check:status IN ('accepted', 'cancelled_by_company', 'wrong_data', 'failed');column:status" json:"status"`
	Report    *Report   `gorm:"foreignKey:CaseID;references:ID" json:"-"`
}

func (InsuranceCase) TableName() string {
	return "insurance_case"
}

// ValidateUnique runs on every save, not only at creation: editing an
// unrelated field still fails while a colliding row exists elsewhere. The
// composite key is enforced here only; there is no store-level constraint
// spanning the doctor's resolved country.
func (c *InsuranceCase) ValidateUnique(db *gorm.DB) error {
	var doctor Profile
	if err := db.First(&doctor, c.DoctorID).Error; err != nil {
		return fmt.Errorf("failed to load case doctor %d: %w", c.DoctorID, err)
	}
	countryID, err := doctor.CountryID(db)
	if err != nil {
		return err
	}

	query := db.Model(&InsuranceCase{}).
		Joins("JOIN profile ON profile.id = insurance_case.doctor_id").
		Joins("JOIN city ON city.id = profile.city_id").
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("region.country_id = ?", countryID).
		Where("insurance_case.company_id = ?", c.CompanyID).
		Where("insurance_case.ref_number = ?", c.RefNumber).
		Where("EXTRACT(YEAR FROM insurance_case.date_time) = ?", c.DateTime.Year())
	if c.ID != 0 {
		query = query.Where("insurance_case.id <> ?", c.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check case uniqueness: %w", err)
	}
	if count > 0 {
		var company Company
		if err := db.First(&company, c.CompanyID).Error; err != nil {
			return fmt.Errorf("failed to load case company %d: %w", c.CompanyID, err)
		}
		return &ValidationError{
			Message: fmt.Sprintf("Case %s%03d already exists", company.Initials, c.RefNumber),
		}
	}
	return nil
}

// HasReport reports whether a Report row exists for this case; billing can
// only proceed once it does.
func (c *InsuranceCase) HasReport(db *gorm.DB) (bool, error) {
	var report Report
	err := db.Select("id").Where("case_id = ?", c.ID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check report presence: %w", err)
	}
	return true, nil
}

// String is a display contract other components parse; preserve the exact
// layout: initials, zero-padded ref number, first two message words,
// DD.MM.YYYY HH:MM, doctor initials. Requires Company and Doctor preloaded.
func (c *InsuranceCase) String() string {
	words := strings.Fields(c.Message)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join([]string{
		c.Company.Initials,
		fmt.Sprintf("%03d", c.RefNumber),
		strings.Join(words, " "),
		c.DateTime.Format("02.01.2006 15:04"),
		c.Doctor.Initials,
	}, " ")
}
