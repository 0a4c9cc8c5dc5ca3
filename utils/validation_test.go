package utils

import (
	"MedCenter/models"
	"testing"
	"time"
)

func validCase() models.InsuranceCase {
	return models.InsuranceCase{
		DoctorID:  1,
		CompanyID: 2,
		SenderID:  3,
		DateTime:  time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		RefNumber: 7,
		Message:   "Back pain",
		Status:    models.CaseStatusAccepted,
	}
}

func TestValidateCaseData(t *testing.T) {
	if err := ValidateCaseData(validCase()); err != nil {
		t.Errorf("valid case rejected: %v", err)
	}
}

func TestValidateCaseDataRejectsUnknownStatus(t *testing.T) {
	insuranceCase := validCase()
	insuranceCase.Status = "pending"
	if err := ValidateCaseData(insuranceCase); err == nil {
		t.Error("expected error for unknown status, got nil")
	}
}

func TestValidateCaseDataAllowsEveryStatus(t *testing.T) {
	statuses := []string{
		models.CaseStatusAccepted,
		models.CaseStatusCancelledByCompany,
		models.CaseStatusWrongData,
		models.CaseStatusFailed,
	}
	for _, status := range statuses {
		insuranceCase := validCase()
		insuranceCase.Status = status
		if err := ValidateCaseData(insuranceCase); err != nil {
			t.Errorf("status %q rejected: %v", status, err)
		}
	}
}

func validReport() models.Report {
	return models.Report{
		CompanyRefNumber:    "REF-100",
		PatientsFirstName:   "Anna",
		PatientsLastName:    "Petrova",
		PatientsDateOfBirth: "1980-06-15",
		TypeOfVisitID:       1,
		DateOfVisit:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		CityID:              1,
		CauseOfVisit:        "Pain",
		Checkup:             "General checkup",
		Prescription:        "Rest",
		CaseID:              1,
	}
}

func TestValidateReportData(t *testing.T) {
	if err := ValidateReportData(validReport()); err != nil {
		t.Errorf("valid report rejected: %v", err)
	}
}

func TestValidateReportDataRejectsBadDateOfBirth(t *testing.T) {
	report := validReport()
	report.PatientsDateOfBirth = "15.06.1980"
	if err := ValidateReportData(report); err == nil {
		t.Error("expected error for malformed date of birth, got nil")
	}
}

func TestValidateProfileData(t *testing.T) {
	profile := models.Profile{UserID: 1, NumCol: "123456789", Initials: "JD"}
	if err := ValidateProfileData(profile); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}

	profile.NumCol = ""
	if err := ValidateProfileData(profile); err == nil {
		t.Error("expected error for missing num_col, got nil")
	}
}

func TestValidateUserData(t *testing.T) {
	user := models.User{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "Str0ng!pass",
		RoleID:   2,
	}
	if err := ValidateUserData(user); err != nil {
		t.Errorf("valid user rejected: %v", err)
	}

	user.Password = "weak"
	if err := ValidateUserData(user); err == nil {
		t.Error("expected error for weak password, got nil")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hashed, "Str0ng!pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("wrong password accepted")
	}
}
