package services

import (
	"encoding/json"
	"testing"

	"github.com/nexlify/careers/internal/models"
)

func TestFormatBirthDate(t *testing.T) {
	tests := []struct {
		name  string
		month string
		day   string
		year  string
		want  string
	}{
		{"single digit day zero-padded", "May", "3", "1990", "1990-05-03"},
		{"two digit day passes through", "December", "25", "1984", "1984-12-25"},
		{"first month", "January", "1", "2000", "2000-01-01"},
		{"last month", "December", "31", "1999", "1999-12-31"},
		{"unrecognized month falls back to 01", "Floréal", "15", "1993", "1993-01-15"},
		{"empty month falls back to 01", "", "9", "1970", "1970-01-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBirthDate(tt.month, tt.day, tt.year); got != tt.want {
				t.Errorf("FormatBirthDate(%q, %q, %q) = %q, want %q", tt.month, tt.day, tt.year, got, tt.want)
			}
		})
	}
}

func TestFormatBirthDate_ZeroPadsAllSingleDigits(t *testing.T) {
	days := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	want := []string{"01", "02", "03", "04", "05", "06", "07", "08", "09"}
	for i, d := range days {
		got := FormatBirthDate("June", d, "1990")
		if got != "1990-06-"+want[i] {
			t.Errorf("day %q formatted as %q, want suffix %q", d, got, want[i])
		}
	}
}

func TestCombineSalaryAndPhone(t *testing.T) {
	if got := CombineSalary("USD", "120000"); got != "USD 120000" {
		t.Errorf("CombineSalary = %q, want %q", got, "USD 120000")
	}
	if got := CombinePhone("415", "5551212"); got != "415-5551212" {
		t.Errorf("CombinePhone = %q, want %q", got, "415-5551212")
	}
}

func TestBuildApplicantRow_Scenario(t *testing.T) {
	f := validForm()
	f.FirstName = "Ada"
	f.LastName = "Lovelace"
	f.BirthMonth = "May"
	f.BirthDay = "3"
	f.BirthYear = "1990"
	f.TechStack = []string{"Python"}
	f.Currency = "USD"
	f.SalaryExpectation = "120000"
	f.PhoneAreaCode = "415"
	f.PhoneNumber = "5551212"

	row, err := BuildApplicantRow(&f)
	if err != nil {
		t.Fatalf("BuildApplicantRow returned error: %v", err)
	}

	if row.BirthDate != "1990-05-03" {
		t.Errorf("birth_date = %q, want %q", row.BirthDate, "1990-05-03")
	}
	if row.SalaryExpect != "USD 120000" {
		t.Errorf("salary_expect = %q, want %q", row.SalaryExpect, "USD 120000")
	}
	if row.Phone != "415-5551212" {
		t.Errorf("phone = %q, want %q", row.Phone, "415-5551212")
	}
	if row.FirstName != "Ada" || row.LastName != "Lovelace" {
		t.Errorf("name = %q %q, want Ada Lovelace", row.FirstName, row.LastName)
	}
	if row.ID == "" {
		t.Error("row.ID is empty, want a generated uuid")
	}
}

func TestBuildApplicantRow_TechStackRoundTrip(t *testing.T) {
	f := validForm()
	f.TechStack = []string{"React", "AWS"}

	row, err := BuildApplicantRow(&f)
	if err != nil {
		t.Fatalf("BuildApplicantRow returned error: %v", err)
	}

	var back []string
	if err := json.Unmarshal(row.TechStack, &back); err != nil {
		t.Fatalf("stored tech_stack does not deserialize: %v", err)
	}
	if len(back) != 2 || back[0] != "React" || back[1] != "AWS" {
		t.Errorf("tech_stack round-trip = %v, want [React AWS]", back)
	}
}

func TestBuildApplicantRow_IgnoresCVFields(t *testing.T) {
	f := validForm()
	f.CVData = "aGVsbG8="
	f.CVName = "cv.pdf"

	row, err := BuildApplicantRow(&f)
	if err != nil {
		t.Fatalf("BuildApplicantRow returned error: %v", err)
	}

	b, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal row: %v", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(b, &asMap); err != nil {
		t.Fatalf("unmarshal row: %v", err)
	}
	for _, key := range []string{"cvData", "cv_data", "cvName", "cv_name"} {
		if _, ok := asMap[key]; ok {
			t.Errorf("applicant row unexpectedly carries %q", key)
		}
	}
}

// validForm returns a fully populated ApplicationForm that passes the gate.
func validForm() models.ApplicationForm {
	f := models.NewApplicationForm()
	f.FirstName = "Grace"
	f.LastName = "Hopper"
	f.BirthMonth = "December"
	f.BirthDay = "9"
	f.BirthYear = "1986"
	f.Gender = "Female"
	f.TechStack = []string{"Distributed Systems"}
	f.YearsOfExperience = "10+ years"
	f.PersonalSites = "https://example.dev"
	f.IsWorkingNow = "Yes"
	f.IsImmediatelyAvailable = "No"
	f.CompensationPreference = "equity"
	f.SalaryExpectation = "90000"
	f.PortfolioSamples = "Compiler work"
	f.Location = "Arlington"
	f.LastFinishedProject = "COBOL"
	f.CurrentProject = "null"
	f.Email = "grace@example.com"
	f.PhoneAreaCode = "202"
	f.PhoneNumber = "5550100"
	return f
}
