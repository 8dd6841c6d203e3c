package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/nexlify/careers/internal/catalog"
	"github.com/nexlify/careers/internal/models"
)

// FormatBirthDate builds the ISO-8601 date stored in birth_date. The month
// name goes through the fixed lookup (unknown names fall back to "01") and
// single-digit days are zero-padded.
func FormatBirthDate(month, day, year string) string {
	code := catalog.MonthCode(month)
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%s-%s-%s", year, code, day)
}

// CombineSalary joins the currency code and the raw amount text with one
// space. The amount is stored as entered, without numeric parsing.
func CombineSalary(currency, amount string) string {
	return currency + " " + amount
}

// CombinePhone joins the area code and number with a hyphen.
func CombinePhone(areaCode, number string) string {
	return areaCode + "-" + number
}

// BuildApplicantRow maps a validated form onto the applicants row,
// applying the storage transforms. The cv fields are deliberately not
// part of the row.
func BuildApplicantRow(f *models.ApplicationForm) (*models.Applicant, error) {
	stack, err := json.Marshal(f.TechStack)
	if err != nil {
		return nil, fmt.Errorf("encode tech stack: %w", err)
	}

	return &models.Applicant{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),

		FirstName: f.FirstName,
		LastName:  f.LastName,
		BirthDate: FormatBirthDate(f.BirthMonth, f.BirthDay, f.BirthYear),
		Gender:    f.Gender,

		TechStack:       datatypes.JSON(stack),
		ExperienceYears: f.YearsOfExperience,
		PersonalSites:   f.PersonalSites,

		IsWorking:   f.IsWorkingNow,
		IsAvailable: f.IsImmediatelyAvailable,

		CompPref:     f.CompensationPreference,
		SalaryExpect: CombineSalary(f.Currency, f.SalaryExpectation),

		Portfolio:      f.PortfolioSamples,
		Location:       f.Location,
		LastProject:    f.LastFinishedProject,
		CurrentProject: f.CurrentProject,

		Email:       f.Email,
		Phone:       CombinePhone(f.PhoneAreaCode, f.PhoneNumber),
		AppliedRole: f.AppliedRole,
	}, nil
}
