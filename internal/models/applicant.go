package models

import (
	"time"

	"gorm.io/datatypes"
)

// Applicant is the persisted shape of one submitted application.
// Column layout mirrors the recruiting dashboard's applicants table:
// birth_date is a pre-formatted ISO date, salary_expect carries the
// currency code and amount as one string, phone carries area code and
// number joined with a hyphen, tech_stack is a JSON array in one column.
type Applicant struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`

	FirstName string `gorm:"column:first_name;type:text" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:text" json:"last_name"`
	BirthDate string `gorm:"column:birth_date;type:date" json:"birth_date"`
	Gender    string `gorm:"column:gender;type:text" json:"gender"`

	TechStack       datatypes.JSON `gorm:"column:tech_stack;type:jsonb" json:"tech_stack"`
	ExperienceYears string         `gorm:"column:experience_years;type:text" json:"experience_years"`
	PersonalSites   string         `gorm:"column:personal_sites;type:text" json:"personal_sites"`

	IsWorking   string `gorm:"column:is_working;type:text" json:"is_working"`
	IsAvailable string `gorm:"column:is_available;type:text" json:"is_available"`

	CompPref     string `gorm:"column:comp_pref;type:text" json:"comp_pref"`
	SalaryExpect string `gorm:"column:salary_expect;type:text" json:"salary_expect"`

	Portfolio      string `gorm:"column:portfolio;type:text" json:"portfolio"`
	Location       string `gorm:"column:location;type:text" json:"location"`
	LastProject    string `gorm:"column:last_project;type:text" json:"last_project"`
	CurrentProject string `gorm:"column:current_project;type:text" json:"current_project"`

	Email       string `gorm:"column:email;type:text" json:"email"`
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	AppliedRole string `gorm:"column:applied_role;type:text" json:"applied_role"`
}

func (Applicant) TableName() string { return "applicants" }
