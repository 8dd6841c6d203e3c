package services

import (
	"github.com/nexlify/careers/internal/catalog"
	"github.com/nexlify/careers/internal/models"
)

// ValidationFailure names the field that blocked submission and a reason
// the form can render verbatim.
type ValidationFailure struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v *ValidationFailure) Error() string { return v.Reason }

// requiredFields lists the mandatory scalar fields in form order.
var requiredFields = []struct {
	name string
	get  func(*models.ApplicationForm) string
}{
	{"firstName", func(f *models.ApplicationForm) string { return f.FirstName }},
	{"lastName", func(f *models.ApplicationForm) string { return f.LastName }},
	{"birthMonth", func(f *models.ApplicationForm) string { return f.BirthMonth }},
	{"birthDay", func(f *models.ApplicationForm) string { return f.BirthDay }},
	{"birthYear", func(f *models.ApplicationForm) string { return f.BirthYear }},
	{"gender", func(f *models.ApplicationForm) string { return f.Gender }},
	{"yearsOfExperience", func(f *models.ApplicationForm) string { return f.YearsOfExperience }},
	{"compensationPreference", func(f *models.ApplicationForm) string { return f.CompensationPreference }},
	{"currency", func(f *models.ApplicationForm) string { return f.Currency }},
	{"salaryExpectation", func(f *models.ApplicationForm) string { return f.SalaryExpectation }},
	{"location", func(f *models.ApplicationForm) string { return f.Location }},
	{"email", func(f *models.ApplicationForm) string { return f.Email }},
	{"phoneAreaCode", func(f *models.ApplicationForm) string { return f.PhoneAreaCode }},
	{"phoneNumber", func(f *models.ApplicationForm) string { return f.PhoneNumber }},
}

// ValidateApplication is the single gate run before persistence. All
// required-field policy lives here, not in the form markup. The tech
// stack check comes first: an empty stack always reports as such.
func ValidateApplication(f *models.ApplicationForm) *ValidationFailure {
	if len(f.TechStack) == 0 {
		return &ValidationFailure{Field: "techStack", Reason: "empty tech stack"}
	}

	for _, rf := range requiredFields {
		if rf.get(f) == "" {
			return &ValidationFailure{Field: rf.name, Reason: rf.name + " is required"}
		}
	}

	if !catalog.IsValidCurrency(f.Currency) {
		return &ValidationFailure{Field: "currency", Reason: "unknown currency"}
	}

	if !catalog.IsValidRole(f.AppliedRole) {
		return &ValidationFailure{Field: "appliedRole", Reason: "unknown applied role"}
	}

	return nil
}
