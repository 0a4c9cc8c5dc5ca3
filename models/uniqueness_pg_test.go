package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testConnStr = "host=localhost port=15434 user=test password=test dbname=test sslmode=disable"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Username("test").
		Password("test").
		Database("test").
		Port(15434).
		StartTimeout(60 * time.Second))

	if err := pg.Start(); err != nil {
		t.Fatalf("start embedded postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pg.Stop(); err != nil {
			t.Logf("stop embedded postgres: %v", err)
		}
	})

	db, err := gorm.Open(postgres.Open(testConnStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	err = db.AutoMigrate(
		&Country{}, &Region{}, &District{}, &City{},
		&Role{}, &User{}, &Profile{},
		&PriceGroup{}, &Company{},
		&TypeOfVisit{}, &Disease{}, &Service{},
		&InsuranceCase{}, &Report{}, &ServiceItem{}, &AdditionalImage{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedCity builds a full country -> region -> district -> city chain.
func seedCity(t *testing.T, db *gorm.DB, country, region, district, city string) City {
	t.Helper()

	countryRow := Country{Name: country}
	if err := db.FirstOrCreate(&countryRow, Country{Name: country}).Error; err != nil {
		t.Fatalf("seed country: %v", err)
	}
	regionRow := Region{Name: region, CountryID: countryRow.ID}
	if err := db.FirstOrCreate(&regionRow, Region{Name: region, CountryID: countryRow.ID}).Error; err != nil {
		t.Fatalf("seed region: %v", err)
	}
	districtRow := District{Name: district, RegionID: regionRow.ID}
	if err := db.FirstOrCreate(&districtRow, District{Name: district, RegionID: regionRow.ID}).Error; err != nil {
		t.Fatalf("seed district: %v", err)
	}
	cityRow := City{Name: city, DistrictID: districtRow.ID}
	if err := db.Create(&cityRow).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	return cityRow
}

func seedDoctor(t *testing.T, db *gorm.DB, username string, cityID *uint, initials, numCol string) Profile {
	t.Helper()

	role := Role{Name: "Doctor"}
	if err := db.FirstOrCreate(&role, Role{Name: "Doctor"}).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	user := User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
		RoleID:   role.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	profile := Profile{UserID: user.ID, CityID: cityID, Initials: initials, NumCol: numCol}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func seedCompany(t *testing.T, db *gorm.DB, name, initials string) Company {
	t.Helper()

	group := PriceGroup{Name: "Standard"}
	if err := db.FirstOrCreate(&group, PriceGroup{Name: "Standard"}).Error; err != nil {
		t.Fatalf("seed price group: %v", err)
	}
	company := Company{Name: name, Initials: initials, PriceGroupID: group.ID}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company
}

func TestResolveCountryID(t *testing.T) {
	db := setupTestDB(t)

	city := seedCity(t, db, "Bulgaria", "Sofia Region", "Central", "Sofia")

	countryID, err := ResolveCountryID(db, city.ID)
	if err != nil {
		t.Fatalf("ResolveCountryID: %v", err)
	}
	var country Country
	if err := db.Where("name = ?", "Bulgaria").First(&country).Error; err != nil {
		t.Fatalf("load country: %v", err)
	}
	if countryID != country.ID {
		t.Errorf("countryID = %d, want %d", countryID, country.ID)
	}

	if _, err := ResolveCountryID(db, 99999); err == nil {
		t.Error("expected error for missing city, got nil")
	}
}

func TestCityValidateUnique(t *testing.T) {
	db := setupTestDB(t)

	seedCity(t, db, "Bulgaria", "Sofia Region", "Central", "Pernik")
	otherDistrict := seedCity(t, db, "Bulgaria", "Sofia Region", "Western", "Bankya")

	t.Run("duplicate name in another district of the same country", func(t *testing.T) {
		duplicate := City{Name: "Pernik", DistrictID: otherDistrict.DistrictID}
		err := duplicate.ValidateUnique(db)
		var validationErr *ValidationError
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
	})

	t.Run("same name in a different country", func(t *testing.T) {
		foreign := seedCity(t, db, "Serbia", "Belgrade Region", "Central", "Belgrade")
		duplicate := City{Name: "Pernik", DistrictID: foreign.DistrictID}
		if err := duplicate.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique: %v", err)
		}
	})

	t.Run("renaming an existing city is not re-checked", func(t *testing.T) {
		var existing City
		if err := db.Where("name = ?", "Bankya").First(&existing).Error; err != nil {
			t.Fatalf("load city: %v", err)
		}
		existing.Name = "Pernik"
		if err := existing.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique on update: %v", err)
		}
	})
}

func TestProfileValidateUnique(t *testing.T) {
	db := setupTestDB(t)

	sofia := seedCity(t, db, "Bulgaria", "Sofia Region", "Central", "Sofia")
	plovdiv := seedCity(t, db, "Bulgaria", "South Region", "Plovdiv District", "Plovdiv")
	belgrade := seedCity(t, db, "Serbia", "Belgrade Region", "Central", "Belgrade")

	seedDoctor(t, db, "first_doc", &sofia.ID, "JD", "100000001")

	t.Run("duplicate initials in the same country", func(t *testing.T) {
		duplicate := Profile{CityID: &plovdiv.ID, Initials: "JD", NumCol: "100000002"}
		err := duplicate.ValidateUnique(db)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
	})

	t.Run("duplicate num_col in the same country", func(t *testing.T) {
		duplicate := Profile{CityID: &plovdiv.ID, Initials: "MK", NumCol: "100000001"}
		err := duplicate.ValidateUnique(db)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
	})

	t.Run("duplicates allowed across countries", func(t *testing.T) {
		duplicate := Profile{CityID: &belgrade.ID, Initials: "JD", NumCol: "100000001"}
		if err := duplicate.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique: %v", err)
		}
	})

	t.Run("a profile does not collide with itself on update", func(t *testing.T) {
		var existing Profile
		if err := db.Where("initials = ?", "JD").First(&existing).Error; err != nil {
			t.Fatalf("load profile: %v", err)
		}
		if err := existing.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique on update: %v", err)
		}
	})

	t.Run("no city skips the check", func(t *testing.T) {
		unscoped := Profile{Initials: "JD", NumCol: "100000001"}
		if err := unscoped.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique: %v", err)
		}
	})
}

func TestCaseValidateUnique(t *testing.T) {
	db := setupTestDB(t)

	sofia := seedCity(t, db, "Bulgaria", "Sofia Region", "Central", "Sofia")
	plovdiv := seedCity(t, db, "Bulgaria", "South Region", "Plovdiv District", "Plovdiv")

	doctor := seedDoctor(t, db, "case_doc", &sofia.ID, "JD", "100000001")
	otherDoctor := seedDoctor(t, db, "other_doc", &plovdiv.ID, "MK", "100000002")
	company := seedCompany(t, db, "Zdrave", "ZD")

	march := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	existing := InsuranceCase{
		DoctorID:  doctor.ID,
		SenderID:  doctor.ID,
		CompanyID: company.ID,
		RefNumber: 7,
		DateTime:  march,
		Message:   "Back pain",
		Status:    CaseStatusAccepted,
	}
	if err := existing.ValidateUnique(db); err != nil {
		t.Fatalf("ValidateUnique on first case: %v", err)
	}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("create case: %v", err)
	}

	t.Run("same company, ref number, and year collide even across doctors", func(t *testing.T) {
		duplicate := InsuranceCase{
			DoctorID:  otherDoctor.ID,
			SenderID:  otherDoctor.ID,
			CompanyID: company.ID,
			RefNumber: 7,
			DateTime:  time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
			Message:   "Fever",
			Status:    CaseStatusAccepted,
		}
		err := duplicate.ValidateUnique(db)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
		want := "Case ZD007 already exists"
		if validationErr.Message != want {
			t.Errorf("message = %q, want %q", validationErr.Message, want)
		}
	})

	t.Run("same key in a different year is a new case", func(t *testing.T) {
		nextYear := InsuranceCase{
			DoctorID:  doctor.ID,
			SenderID:  doctor.ID,
			CompanyID: company.ID,
			RefNumber: 7,
			DateTime:  march.AddDate(1, 0, 0),
			Message:   "Checkup",
			Status:    CaseStatusAccepted,
		}
		if err := nextYear.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique: %v", err)
		}
	})

	t.Run("updating an unrelated field does not collide with itself", func(t *testing.T) {
		existing.Message = "Back pain, follow up"
		if err := existing.ValidateUnique(db); err != nil {
			t.Errorf("ValidateUnique on update: %v", err)
		}
	})

	t.Run("update revalidates against other rows", func(t *testing.T) {
		second := InsuranceCase{
			DoctorID:  doctor.ID,
			SenderID:  doctor.ID,
			CompanyID: company.ID,
			RefNumber: 8,
			DateTime:  march,
			Message:   "Sprained ankle",
			Status:    CaseStatusAccepted,
		}
		if err := db.Create(&second).Error; err != nil {
			t.Fatalf("create second case: %v", err)
		}
		second.RefNumber = 7
		if err := second.ValidateUnique(db); err == nil {
			t.Error("expected collision after update, got nil")
		}
	})
}

func TestNumberOfVisit(t *testing.T) {
	db := setupTestDB(t)

	sofia := seedCity(t, db, "Bulgaria", "Sofia Region", "Central", "Sofia")
	doctor := seedDoctor(t, db, "visit_doc", &sofia.ID, "JD", "100000001")
	company := seedCompany(t, db, "Zdrave", "ZD")

	var country Country
	if err := db.Where("name = ?", "Bulgaria").First(&country).Error; err != nil {
		t.Fatalf("load country: %v", err)
	}
	visitType := TypeOfVisit{Name: "Home visit", CountryID: country.ID}
	if err := db.Create(&visitType).Error; err != nil {
		t.Fatalf("seed visit type: %v", err)
	}

	newReport := func(refNumber uint, dateOfVisit time.Time) Report {
		insuranceCase := InsuranceCase{
			DoctorID:  doctor.ID,
			SenderID:  doctor.ID,
			CompanyID: company.ID,
			RefNumber: refNumber,
			DateTime:  dateOfVisit,
			Message:   "Visit",
			Status:    CaseStatusAccepted,
		}
		if err := db.Create(&insuranceCase).Error; err != nil {
			t.Fatalf("create case: %v", err)
		}
		report := Report{
			CompanyRefNumber:    "REF-100",
			PatientsFirstName:   "Anna",
			PatientsLastName:    "Petrova",
			PatientsDateOfBirth: "1980-06-15",
			TypeOfVisitID:       visitType.ID,
			DateOfVisit:         dateOfVisit,
			CityID:              sofia.ID,
			CauseOfVisit:        "Pain",
			Checkup:             "Checkup",
			Prescription:        "Rest",
			CaseID:              insuranceCase.ID,
		}
		if err := db.Create(&report).Error; err != nil {
			t.Fatalf("create report: %v", err)
		}
		return report
	}

	first := newReport(1, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	second := newReport(2, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	number, err := first.NumberOfVisit(db)
	if err != nil {
		t.Fatalf("NumberOfVisit: %v", err)
	}
	if number != 1 {
		t.Errorf("first visit number = %d, want 1", number)
	}

	number, err = second.NumberOfVisit(db)
	if err != nil {
		t.Fatalf("NumberOfVisit: %v", err)
	}
	if number != 2 {
		t.Errorf("second visit number = %d, want 2", number)
	}

	ref, err := first.FullCompanyRefNumber(db)
	if err != nil {
		t.Fatalf("FullCompanyRefNumber: %v", err)
	}
	if ref != "REF-100" {
		t.Errorf("first ref = %q, want %q", ref, "REF-100")
	}

	ref, err = second.FullCompanyRefNumber(db)
	if err != nil {
		t.Fatalf("FullCompanyRefNumber: %v", err)
	}
	if ref != "REF-100_2" {
		t.Errorf("second ref = %q, want %q", ref, "REF-100_2")
	}
}
