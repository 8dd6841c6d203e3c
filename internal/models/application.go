package models

import (
	"time"

	"github.com/nexlify/careers/internal/catalog"
)

// NewApplicationForm returns the empty initial shape of the record:
// everything blank except the currency default and the role binding
// to the single active posting.
func NewApplicationForm() ApplicationForm {
	return ApplicationForm{
		TechStack:   []string{},
		Currency:    "USD",
		AppliedRole: string(catalog.RoleSoftwareDeveloper),
	}
}

// ApplicationForm is the in-progress candidate record, field-for-field
// what the form renderer binds to. All values stay as entered; the
// persistence transform happens at submit, not here.
type ApplicationForm struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	BirthMonth string `json:"birthMonth"`
	BirthDay   string `json:"birthDay"`
	BirthYear  string `json:"birthYear"`
	Gender     string `json:"gender"`

	TechStack         []string `json:"techStack"`
	YearsOfExperience string   `json:"yearsOfExperience"`
	PersonalSites     string   `json:"personalSites"`

	IsWorkingNow           string `json:"isWorkingNow"`
	IsImmediatelyAvailable string `json:"isImmediatelyAvailable"`

	CompensationPreference string `json:"compensationPreference"`
	SalaryExpectation      string `json:"salaryExpectation"`
	Currency               string `json:"currency"`

	PortfolioSamples    string `json:"portfolioSamples"`
	Location            string `json:"location"`
	LastFinishedProject string `json:"lastFinishedProject"`
	CurrentProject      string `json:"currentProject"`

	Email         string `json:"email"`
	PhoneAreaCode string `json:"phoneAreaCode"`
	PhoneNumber   string `json:"phoneNumber"`

	AppliedRole string `json:"appliedRole"`

	// Declared for parity with the form; the persistence path ignores them.
	CVData string `json:"cvData,omitempty"`
	CVName string `json:"cvName,omitempty"`
}

// IsEmpty reports whether the candidate has entered anything yet.
// Currency and appliedRole carry defaults, so they don't count.
func (f *ApplicationForm) IsEmpty() bool {
	return f.FirstName == "" && f.LastName == "" &&
		f.BirthMonth == "" && f.BirthDay == "" && f.BirthYear == "" &&
		f.Gender == "" && len(f.TechStack) == 0 &&
		f.YearsOfExperience == "" && f.PersonalSites == "" &&
		f.IsWorkingNow == "" && f.IsImmediatelyAvailable == "" &&
		f.CompensationPreference == "" && f.SalaryExpectation == "" &&
		f.PortfolioSamples == "" && f.Location == "" &&
		f.LastFinishedProject == "" && f.CurrentProject == "" &&
		f.Email == "" && f.PhoneAreaCode == "" && f.PhoneNumber == "" &&
		f.CVData == "" && f.CVName == ""
}

type DraftState string

const (
	DraftStateForm    DraftState = "form"
	DraftStateSuccess DraftState = "success"
)

// FormDraft is one form session: exactly one ApplicationForm plus the
// submitting flag and the form/success view state.
type FormDraft struct {
	DraftID    string          `json:"draft_id"`
	Form       ApplicationForm `json:"form"`
	State      DraftState      `json:"state"`
	Submitting bool            `json:"submitting"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
