package models

import (
	"testing"
	"time"
)

func TestTotalPriceUnsavedReportIsZero(t *testing.T) {
	report := Report{
		VisitPrice: 50,
		ServiceItems: []ServiceItem{
			{Cost: 100},
			{Cost: 25.5},
		},
	}
	if got := report.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice() = %v, want 0 for unsaved report", got)
	}
	if got := report.TotalPriceDoctor(); got != 0 {
		t.Errorf("TotalPriceDoctor() = %v, want 0 for unsaved report", got)
	}
}

func TestTotalPrice(t *testing.T) {
	report := Report{
		ID:               3,
		VisitPrice:       50,
		VisitPriceDoctor: 30,
		ServiceItems: []ServiceItem{
			{Cost: 100, CostDoctor: 60},
			{Cost: 25.5, CostDoctor: 10},
		},
	}
	if got := report.TotalPrice(); got != 175.5 {
		t.Errorf("TotalPrice() = %v, want 175.5", got)
	}
	if got := report.TotalPriceDoctor(); got != 100 {
		t.Errorf("TotalPriceDoctor() = %v, want 100", got)
	}
}

func TestTotalPriceNoServiceItems(t *testing.T) {
	report := Report{ID: 1, VisitPrice: 40}
	if got := report.TotalPrice(); got != 40 {
		t.Errorf("TotalPrice() = %v, want 40", got)
	}
}

func TestFullRefNumber(t *testing.T) {
	report := Report{
		ID: 1,
		Case: InsuranceCase{
			RefNumber: 7,
			DateTime:  time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Company:   Company{Initials: "ABC"},
			Doctor:    Profile{Initials: "JD"},
		},
		TypeOfVisit: TypeOfVisit{Initial: "X"},
	}
	if got := report.FullRefNumber(); got != "ABC007-0503-JDX" {
		t.Errorf("FullRefNumber() = %q, want %q", got, "ABC007-0503-JDX")
	}
}

func TestFullRefNumberForeignDoctorOmitsVisitInitial(t *testing.T) {
	report := Report{
		ID: 1,
		Case: InsuranceCase{
			RefNumber: 7,
			DateTime:  time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Company:   Company{Initials: "ABC"},
			Doctor:    Profile{Initials: "JD", IsForeignDoctor: true},
		},
		TypeOfVisit: TypeOfVisit{Initial: "X"},
	}
	if got := report.FullRefNumber(); got != "ABC007-0503-JD" {
		t.Errorf("FullRefNumber() = %q, want %q", got, "ABC007-0503-JD")
	}
}

func TestReportString(t *testing.T) {
	report := Report{
		ID:                1,
		PatientsFirstName: "Anna",
		PatientsLastName:  "Petrova",
		Case: InsuranceCase{
			RefNumber: 12,
			DateTime:  time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC),
			Company:   Company{Initials: "ZD"},
			Doctor:    Profile{Initials: "MK", IsForeignDoctor: true},
		},
	}
	want := "Petrova Anna ZD012-2011-MK"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCaseString(t *testing.T) {
	insuranceCase := InsuranceCase{
		RefNumber: 7,
		Message:   "Severe back pain after fall",
		DateTime:  time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		Company:   Company{Initials: "ABC"},
		Doctor:    Profile{Initials: "JD"},
	}
	want := "ABC 007 Severe back 05.03.2024 14:30 JD"
	if got := insuranceCase.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCaseStringShortMessage(t *testing.T) {
	insuranceCase := InsuranceCase{
		RefNumber: 1,
		Message:   "Fever",
		DateTime:  time.Date(2024, 1, 2, 8, 5, 0, 0, time.UTC),
		Company:   Company{Initials: "ZD"},
		Doctor:    Profile{Initials: "MK"},
	}
	want := "ZD 001 Fever 02.01.2024 08:05 MK"
	if got := insuranceCase.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestServiceItemString(t *testing.T) {
	item := ServiceItem{Quantity: 1, Service: Service{Name: "X-Ray"}}
	if got := item.String(); got != "X-Ray" {
		t.Errorf("String() = %q, want %q", got, "X-Ray")
	}
	item.Quantity = 3
	if got := item.String(); got != "X-Ray [3]" {
		t.Errorf("String() = %q, want %q", got, "X-Ray [3]")
	}
}

func TestTypeOfVisitString(t *testing.T) {
	visit := TypeOfVisit{Name: "Home visit", ShortName: "Home"}
	if got := visit.String(); got != "Home" {
		t.Errorf("String() = %q, want %q", got, "Home")
	}
	visit.ShortName = ""
	if got := visit.String(); got != "Home visit" {
		t.Errorf("String() = %q, want %q", got, "Home visit")
	}
}

func TestProfileString(t *testing.T) {
	profile := Profile{
		User:   User{FirstName: "John", LastName: "Doe"},
		NumCol: "123456789",
	}
	if got := profile.String(); got != "Doe John 123456789" {
		t.Errorf("String() = %q, want %q", got, "Doe John 123456789")
	}
}
