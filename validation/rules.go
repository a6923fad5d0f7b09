package validation

import (
	"regexp"
	"strings"
	"time"

	"bursary-go/models"
)

// Field patterns fixed by the welfare office's form. Do not loosen.
var (
	regNoPattern   = regexp.MustCompile(`^20[0-9]{2}/(FM|E|ET|BST|SB|SP|CSC|BAD|C|A|L|B|V|AD|AG|PHA|MLS|NUR)/[0-9]{3}$`)
	indexNoPattern = regexp.MustCompile(`^S [0-9]{5}$`)
	nicPattern     = regexp.MustCompile(`^(?:19|20)?\d{2}[0-9]{10}|[0-9]{9}[xXvV]$`)
	phonePattern   = regexp.MustCompile(`^(?:7|0|(?:\+94))[0-9]{9,10}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	// Oldest verified person reached 122 years.
	maxHumanAge = 123
	// A sibling's academic year may trail the current year by at most this.
	academicYearWindow = 7
)

// fieldRule binds one field path to its check. The check returns the
// failure message, empty on pass.
type fieldRule struct {
	path  string
	check func(v *Validator, app *models.Application) string
}

// conditionalGroup is a set of field rules enforced only while a gating
// boolean on the record is true. When the gate is false the fields are
// accepted in any state.
type conditionalGroup struct {
	gate  func(app *models.Application) bool
	rules []fieldRule
}

// conditionalGroups is the declarative (gating field, gated field set)
// table: the applicant's own employment is enforced only when employed,
// the spouse sub-record only when married.
var conditionalGroups = []conditionalGroup{
	{
		gate: func(app *models.Application) bool { return app.Employed },
		rules: []fieldRule{
			{"employment.establishment", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Employment.Establishment, "Establishment is required")
			}},
			{"employment.designation", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Employment.Designation, "Designation is required")
			}},
			{"employment.salary", func(_ *Validator, app *models.Application) string {
				return moneyField(app.Employment.Salary, "Salary is required", "Salary cannot be negative")
			}},
			{"employment.dateOfEmployment", func(v *Validator, app *models.Application) string {
				return v.pastDateField(app.Employment.DateOfEmployment, "Date of Employment is required", "Date of Employment cannot be in future")
			}},
			{"employment.address.street", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Employment.Address.Street, "Street is required")
			}},
			{"employment.address.city", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Employment.Address.City, "City is required")
			}},
			{"employment.address.district", func(v *Validator, app *models.Application) string {
				if !v.tables.ValidDistrict(app.Employment.Address.District) {
					return "Invalid district"
				}
				return ""
			}},
		},
	},
	{
		gate: func(app *models.Application) bool { return app.Married },
		rules: []fieldRule{
			{"spouse.name", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Spouse.Name, "Name is required")
			}},
			{"spouse.employment.establishment", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Spouse.Employment.Establishment, "Establishment is required")
			}},
			{"spouse.employment.designation", func(_ *Validator, app *models.Application) string {
				return requiredField(app.Spouse.Employment.Designation, "Designation is required")
			}},
			{"spouse.employment.salary", func(_ *Validator, app *models.Application) string {
				return moneyField(app.Spouse.Employment.Salary, "Salary is required", "Salary cannot be negative")
			}},
			{"spouse.employment.dateOfEmployment", func(v *Validator, app *models.Application) string {
				return v.pastDateField(app.Spouse.Employment.DateOfEmployment, "Date of Employment is required", "Date of Employment cannot be in future")
			}},
		},
	},
}

func requiredField(value, requiredMsg string) string {
	if strings.TrimSpace(value) == "" {
		return requiredMsg
	}
	return ""
}

func minLenField(value string, min int, requiredMsg, shortMsg string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return requiredMsg
	}
	if len(trimmed) < min {
		return shortMsg
	}
	return ""
}

func matchField(value string, pattern *regexp.Regexp, requiredMsg, invalidMsg string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return requiredMsg
	}
	if !pattern.MatchString(trimmed) {
		return invalidMsg
	}
	return ""
}

// moneyField applies the form's monetary semantics: an absent value fails
// "required", but a stated value has already been coerced (garbage to 0)
// and only the lower bound can fail.
func moneyField(n models.Numeric, requiredMsg, negativeMsg string) string {
	if !n.Defined {
		return requiredMsg
	}
	if n.Float64 < 0 {
		return negativeMsg
	}
	return ""
}

func (v *Validator) pastDateField(t time.Time, requiredMsg, futureMsg string) string {
	if t.IsZero() {
		return requiredMsg
	}
	if t.After(v.now()) {
		return futureMsg
	}
	return ""
}
