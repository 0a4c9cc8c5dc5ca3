package utils

import (
	"MedCenter/models"
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.FirstName, validation.Length(0, 50)),
		validation.Field(&user.LastName, validation.Length(0, 50)),
		// Ensure password is required and follows the custom validation
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateProfileData validates profile fields before the country-scoped
// uniqueness checks run.
func ValidateProfileData(profile models.Profile) error {
	err := validation.ValidateStruct(&profile,
		validation.Field(&profile.UserID, validation.Required),
		validation.Field(&profile.NumCol, validation.Required, validation.Length(1, 9)),
		validation.Field(&profile.Initials, validation.Length(0, 5)),
		validation.Field(&profile.ViberID, validation.Length(0, 100)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateCaseData validates insurance case fields. Status is a label, not a
// state machine: any of the four values is always assignable.
func ValidateCaseData(insuranceCase models.InsuranceCase) error {
	err := validation.ValidateStruct(&insuranceCase,
		validation.Field(&insuranceCase.DoctorID, validation.Required),
		validation.Field(&insuranceCase.CompanyID, validation.Required),
		validation.Field(&insuranceCase.SenderID, validation.Required),
		validation.Field(&insuranceCase.DateTime, validation.Required),
		validation.Field(&insuranceCase.RefNumber, validation.Required),
		validation.Field(&insuranceCase.Message, validation.Required, validation.Length(1, 500)),
		validation.Field(&insuranceCase.Status, validation.Required, validation.In(
			models.CaseStatusAccepted,
			models.CaseStatusCancelledByCompany,
			models.CaseStatusWrongData,
			models.CaseStatusFailed,
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateReportData validates report fields before save.
func ValidateReportData(report models.Report) error {
	err := validation.ValidateStruct(&report,
		validation.Field(&report.CompanyRefNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&report.PatientsFirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&report.PatientsLastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&report.PatientsDateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&report.TypeOfVisitID, validation.Required),
		validation.Field(&report.DateOfVisit, validation.Required),
		validation.Field(&report.CityID, validation.Required),
		validation.Field(&report.CauseOfVisit, validation.Required, validation.Length(1, 700)),
		validation.Field(&report.Checkup, validation.Required, validation.Length(1, 1200)),
		validation.Field(&report.AdditionalCheckup, validation.Length(0, 700)),
		validation.Field(&report.Prescription, validation.Required, validation.Length(1, 700)),
		validation.Field(&report.CaseID, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	// Check complexity with regex
	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
