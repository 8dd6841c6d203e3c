package services

import (
	"testing"

	"github.com/nexlify/careers/internal/models"
)

func TestValidateApplication_Passes(t *testing.T) {
	f := validForm()
	if fail := ValidateApplication(&f); fail != nil {
		t.Fatalf("valid form rejected: field=%q reason=%q", fail.Field, fail.Reason)
	}
}

func TestValidateApplication_EmptyTechStack(t *testing.T) {
	tests := []struct {
		name string
		form func() models.ApplicationForm
	}{
		{"nil stack", func() models.ApplicationForm {
			f := validForm()
			f.TechStack = nil
			return f
		}},
		{"empty stack", func() models.ApplicationForm {
			f := validForm()
			f.TechStack = []string{}
			return f
		}},
		{"empty stack on otherwise empty form", func() models.ApplicationForm {
			return models.NewApplicationForm()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form()
			fail := ValidateApplication(&f)
			if fail == nil {
				t.Fatal("expected rejection, got pass")
			}
			if fail.Reason != "empty tech stack" {
				t.Errorf("reason = %q, want %q", fail.Reason, "empty tech stack")
			}
			if fail.Field != "techStack" {
				t.Errorf("field = %q, want %q", fail.Field, "techStack")
			}
		})
	}
}

func TestValidateApplication_RequiredFields(t *testing.T) {
	tests := []struct {
		field string
		blank func(*models.ApplicationForm)
	}{
		{"firstName", func(f *models.ApplicationForm) { f.FirstName = "" }},
		{"lastName", func(f *models.ApplicationForm) { f.LastName = "" }},
		{"birthMonth", func(f *models.ApplicationForm) { f.BirthMonth = "" }},
		{"birthDay", func(f *models.ApplicationForm) { f.BirthDay = "" }},
		{"birthYear", func(f *models.ApplicationForm) { f.BirthYear = "" }},
		{"gender", func(f *models.ApplicationForm) { f.Gender = "" }},
		{"yearsOfExperience", func(f *models.ApplicationForm) { f.YearsOfExperience = "" }},
		{"compensationPreference", func(f *models.ApplicationForm) { f.CompensationPreference = "" }},
		{"currency", func(f *models.ApplicationForm) { f.Currency = "" }},
		{"salaryExpectation", func(f *models.ApplicationForm) { f.SalaryExpectation = "" }},
		{"location", func(f *models.ApplicationForm) { f.Location = "" }},
		{"email", func(f *models.ApplicationForm) { f.Email = "" }},
		{"phoneAreaCode", func(f *models.ApplicationForm) { f.PhoneAreaCode = "" }},
		{"phoneNumber", func(f *models.ApplicationForm) { f.PhoneNumber = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := validForm()
			tt.blank(&f)
			fail := ValidateApplication(&f)
			if fail == nil {
				t.Fatalf("form with blank %s passed the gate", tt.field)
			}
			if fail.Field != tt.field {
				t.Errorf("field = %q, want %q", fail.Field, tt.field)
			}
			if fail.Reason != tt.field+" is required" {
				t.Errorf("reason = %q, want %q", fail.Reason, tt.field+" is required")
			}
		})
	}
}

func TestValidateApplication_OptionalFieldsMayBeBlank(t *testing.T) {
	f := validForm()
	f.PersonalSites = ""
	f.IsWorkingNow = ""
	f.IsImmediatelyAvailable = ""
	f.PortfolioSamples = ""
	f.LastFinishedProject = ""
	f.CurrentProject = ""
	f.CVData = ""
	f.CVName = ""

	if fail := ValidateApplication(&f); fail != nil {
		t.Fatalf("form with blank optional fields rejected: %q", fail.Reason)
	}
}

func TestValidateApplication_UnknownCurrency(t *testing.T) {
	f := validForm()
	f.Currency = "DOGE"
	fail := ValidateApplication(&f)
	if fail == nil {
		t.Fatal("unknown currency passed the gate")
	}
	if fail.Field != "currency" {
		t.Errorf("field = %q, want currency", fail.Field)
	}
	if fail.Reason != "unknown currency" {
		t.Errorf("reason = %q, want %q", fail.Reason, "unknown currency")
	}
}

func TestValidateApplication_UnknownRole(t *testing.T) {
	f := validForm()
	f.AppliedRole = "Chief Vibes Officer"
	fail := ValidateApplication(&f)
	if fail == nil {
		t.Fatal("unknown role passed the gate")
	}
	if fail.Field != "appliedRole" {
		t.Errorf("field = %q, want appliedRole", fail.Field)
	}
}
