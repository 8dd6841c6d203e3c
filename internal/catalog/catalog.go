package catalog

import "strconv"

// Static reference data for the application form. Loaded once, never mutated.

type RoleType string

const (
	RoleSoftwareDeveloper RoleType = "Software Developer"
)

func IsValidRole(r string) bool {
	return RoleType(r) == RoleSoftwareDeveloper
}

var TechOptions = []string{
	"React", "Angular", "Vue", "JavaScript", "TypeScript",
	"HTML / CSS", "Node.js", "Python", "Java",
	"RESTful APIs", "GraphQL", "Microservices",
	"PostgreSQL", "MySQL", "MongoDB",
	"AWS", "Azure", "Google Cloud",
	"Performance Tuning", "Security Implementation", "Caching Strategies", "Distributed Systems",
}

var ExperienceOptions = []string{
	"Less than 1 year",
	"1 - 3 years",
	"3 - 5 years",
	"5 - 10 years",
	"10+ years",
}

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

var CurrencyOptions = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "NGN", Symbol: "₦"},
	{Code: "INR", Symbol: "₹"},
	{Code: "CAD", Symbol: "C$"},
	{Code: "AUD", Symbol: "A$"},
}

func IsValidCurrency(code string) bool {
	for _, c := range CurrencyOptions {
		if c.Code == code {
			return true
		}
	}
	return false
}

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthCodes = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
}

// MonthCode maps a month name to its two-digit code. An unrecognized
// name maps to "01", matching the form's lenient date handling.
func MonthCode(name string) string {
	if code, ok := monthCodes[name]; ok {
		return code
	}
	return "01"
}

var GenderOptions = []string{"Male", "Female", "Other"}

var YesNoOptions = []string{"Yes", "No"}

var CompensationOptions = []string{"equity", "salary"}

// Days returns "1".."31" and Years returns the selectable birth years,
// newest first (80 entries back from the anchor year the form shipped with).
func Days() []string {
	out := make([]string, 31)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func Years() []string {
	out := make([]string, 80)
	for i := range out {
		out[i] = strconv.Itoa(2025 - i)
	}
	return out
}
