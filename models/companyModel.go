package models

// PriceGroup model
type PriceGroup struct {
	ID      uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name    string   `gorm:"size:50;not null;unique;column:name" json:"name"`
	Tariffs []Tariff `gorm:"foreignKey:PriceGroupID;references:ID" json:"-"`
}

func (PriceGroup) TableName() string {
	return "price_group"
}

// Tariff binds a price group to a district; the per-visit-type prices hang
// off it as VisitTariff rows.
type Tariff struct {
	ID           uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DistrictID   uint          `gorm:"column:district_id;not null;index;uniqueIndex:idx_tariff_district_group" json:"district_id"`
	District     District      `gorm:"foreignKey:DistrictID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	PriceGroupID uint          `gorm:"column:price_group_id;not null;index;uniqueIndex:idx_tariff_district_group" json:"price_group_id"`
	PriceGroup   PriceGroup    `gorm:"foreignKey:PriceGroupID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	VisitTariffs []VisitTariff `gorm:"foreignKey:TariffID;references:ID" json:"visit_tariffs"`
}

func (Tariff) TableName() string {
	return "tariff"
}

// VisitTariff model
type VisitTariff struct {
	ID            uint        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	TariffID      uint        `gorm:"column:tariff_id;not null;index;uniqueIndex:idx_visit_tariff_tariff_visit" json:"tariff_id"`
	Tariff        Tariff      `gorm:"foreignKey:TariffID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	TypeOfVisitID uint        `gorm:"column:type_of_visit_id;not null;index;uniqueIndex:idx_visit_tariff_tariff_visit" json:"type_of_visit_id"`
	TypeOfVisit   TypeOfVisit `gorm:"foreignKey:TypeOfVisitID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Price         float64     `gorm:"column:price;not null" json:"price"`
}

func (VisitTariff) TableName() string {
	return "visit_tariff"
}

// Company is an insurance company. Initials feed generated reference numbers
// and are free text up to 3 characters; duplicates across companies are a
// foreseeable edge case and are not rejected here.
type Company struct {
	ID           uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string     `gorm:"size:20;not null;unique;column:name" json:"name"`
	PriceGroupID uint       `gorm:"column:price_group_id;not null;index" json:"price_group_id"`
	PriceGroup   PriceGroup `gorm:"foreignKey:PriceGroupID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Initials     string     `gorm:"size:3;column:initials" json:"initials"`
}

func (Company) TableName() string {
	return "company"
}
