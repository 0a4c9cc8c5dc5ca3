package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Profile extends a User account with doctor-specific identity: home city,
// license number (num_col) and initials. The city chain determines which
// country the num_col/initials uniqueness rules apply in.
type Profile struct {
	ID              uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID          int64  `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	User            User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CityID          *uint  `gorm:"column:city_id;index" json:"city_id"`
	City            *City  `gorm:"foreignKey:CityID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	NumCol          string `gorm:"size:9;not null;column:num_col" json:"num_col"`
	IsForeignDoctor bool   `gorm:"column:is_foreign_doctor;not null;default:false" json:"is_foreign_doctor"`
	Initials        string `gorm:"size:5;column:initials" json:"initials"`
	ViberID         string `gorm:"size:100;column:viber_id" json:"viber_id"`
	IsOwner         bool   `gorm:"column:is_owner;not null;default:false" json:"is_owner"`
}

func (Profile) TableName() string {
	return "profile"
}

// String renders "<last name> <first name> <num_col>".
func (p *Profile) String() string {
	return strings.Join([]string{p.User.LastName, p.User.FirstName, p.NumCol}, " ")
}

// CountryID resolves the profile's country through its city chain. Profiles
// without a city have no country; callers decide how to treat that.
func (p *Profile) CountryID(db *gorm.DB) (uint, error) {
	if p.CityID == nil {
		return 0, fmt.Errorf("profile %d has no city assigned", p.ID)
	}
	return ResolveCountryID(db, *p.CityID)
}

// ValidateUnique enforces that num_col and initials are unique among all
// profiles of the same country, excluding the profile itself on update.
// Profiles without a city are skipped: with no city chain there is no
// country to scope the check to.
func (p *Profile) ValidateUnique(db *gorm.DB) error {
	if p.CityID == nil {
		return nil
	}
	countryID, err := ResolveCountryID(db, *p.CityID)
	if err != nil {
		return err
	}

	var count int64
	err = db.Model(&Profile{}).
		Joins("JOIN city ON city.id = profile.city_id").
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("region.country_id = ? AND profile.initials = ? AND profile.id <> ?", countryID, p.Initials, p.ID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check initials uniqueness: %w", err)
	}
	if count > 0 {
		return &ValidationError{Message: "Profile with this initials in current country already exists"}
	}

	err = db.Model(&Profile{}).
		Joins("JOIN city ON city.id = profile.city_id").
		Joins("JOIN district ON district.id = city.district_id").
		Joins("JOIN region ON region.id = district.region_id").
		Where("region.country_id = ? AND profile.num_col = ? AND profile.id <> ?", countryID, p.NumCol, p.ID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check num_col uniqueness: %w", err)
	}
	if count > 0 {
		return &ValidationError{Message: "Profile with this Num. col. in current country already exists"}
	}
	return nil
}

// ReportAutofillTemplate is a per-profile, per-country named bundle of
// default report texts plus a set of default diagnoses.
type ReportAutofillTemplate struct {
	ID                        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProfileID                 uint      `gorm:"column:profile_id;not null;index;uniqueIndex:idx_autofill_profile_name" json:"profile_id"`
	Profile                   Profile   `gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CountryID                 uint      `gorm:"column:country_id;not null;index" json:"country_id"`
	Country                   Country   `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Name                      string    `gorm:"size:100;not null;column:name;uniqueIndex:idx_autofill_profile_name" json:"name"`
	CauseOfVisitTemplate      string    `gorm:"type:text;column:cause_of_visit_template" json:"cause_of_visit_template"`
	CheckupTemplate           string    `gorm:"type:text;column:checkup_template" json:"checkup_template"`
	AdditionalCheckupTemplate string    `gorm:"type:text;column:additional_checkup_template" json:"additional_checkup_template"`
	PrescriptionTemplate      string    `gorm:"type:text;column:prescription_template" json:"prescription_template"`
	DiagnosisTemplate         []Disease `gorm:"many2many:autofill_template_diagnosis" json:"diagnosis_template"`
}

func (ReportAutofillTemplate) TableName() string {
	return "report_autofill_template"
}

// DoctorDistrict names the set of cities in one country a doctor covers.
type DoctorDistrict struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  uint    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Doctor    Profile `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CountryID uint    `gorm:"column:country_id;not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Cities    []City  `gorm:"many2many:doctor_district_cities" json:"cities"`
}

func (DoctorDistrict) TableName() string {
	return "doctor_district"
}

// DoctorDistrictVisitPrice overrides the visit price a doctor is paid for a
// given visit type inside one of their coverage districts.
type DoctorDistrictVisitPrice struct {
	ID               uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorDistrictID uint           `gorm:"column:doctor_district_id;not null;index;uniqueIndex:idx_ddvp_district_visit" json:"doctor_district_id"`
	DoctorDistrict   DoctorDistrict `gorm:"foreignKey:DoctorDistrictID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	TypeOfVisitID    uint           `gorm:"column:type_of_visit_id;not null;index;uniqueIndex:idx_ddvp_district_visit" json:"type_of_visit_id"`
	TypeOfVisit      TypeOfVisit    `gorm:"foreignKey:TypeOfVisitID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Price            float64        `gorm:"column:price;not null" json:"price"`
}

func (DoctorDistrictVisitPrice) TableName() string {
	return "doctor_district_visit_price"
}
