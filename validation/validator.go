// Package validation implements the applicant-side validation of a bursary
// application: per-field pass/fail with human-readable messages, keyed by
// the record's field paths ("father.annualIncome.otherSources",
// "siblingsUnder19[0].dob"). Validation is a pure function of the record,
// the reference tables and the clock; every failing field is reported at
// once, never fail-fast.
package validation

import (
	"fmt"
	"strings"
	"time"

	"bursary-go/models"
	"bursary-go/refdata"
)

// Result maps field paths to failure messages. A path absent from the map
// passed validation.
type Result struct {
	Errors map[string]string `json:"errors"`
}

// Valid reports whether the whole record passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Ok reports whether a single field passed.
func (r Result) Ok(path string) bool {
	_, failed := r.Errors[path]
	return !failed
}

// Message returns the failure message for a field, empty when it passed.
func (r Result) Message(path string) string {
	return r.Errors[path]
}

func (r *Result) fail(path, msg string) {
	r.Errors[path] = msg
}

// Validator checks application records against the reference tables.
// Tables are injected so tests can run against restricted enumerations;
// now is injected so date-bound rules are reproducible.
type Validator struct {
	tables *refdata.Tables
	now    func() time.Time
}

func New(tables *refdata.Tables, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{tables: tables, now: now}
}

// Validate checks every applicant-entered field of the record. Derived and
// admin fields (netIncome, isValidCandidate, isApproved, installments) are
// not the applicant's to set and are ignored here.
func (v *Validator) Validate(app *models.Application) Result {
	res := Result{Errors: make(map[string]string)}

	v.checkIdentification(app, &res)
	v.checkAddress(app, &res)
	v.checkAcademic(app, &res)

	for _, group := range conditionalGroups {
		if !group.gate(app) {
			// Gated-off sub-records are accepted in any state.
			continue
		}
		for _, rule := range group.rules {
			if msg := rule.check(v, app); msg != "" {
				res.fail(rule.path, msg)
			}
		}
	}

	v.checkParent("father", &app.Father, &res)
	v.checkParent("mother", &app.Mother, &res)
	v.checkGuardian(&app.Guardian, &res)

	v.checkSiblingsUnder19(app.SiblingsUnder19, &res)
	v.checkSiblingsAtUniversity(app.SiblingsAtUniversity, &res)
	v.checkHouseIncomes(app.IncomeFromHouses, &res)
	v.checkLandIncomes(app.IncomeFromEstateFieldsLands, &res)

	return res
}

func (v *Validator) checkIdentification(app *models.Application, res *Result) {
	if msg := matchField(app.RegNo, regNoPattern, "Registration No. is required", "Enter valid Registration No."); msg != "" {
		res.fail("regNo", msg)
	}
	if msg := matchField(app.IndexNo, indexNoPattern, "Index No. is required, If not provided contact welfare dept.", "Enter a valid Index No."); msg != "" {
		res.fail("indexNo", msg)
	}
	if msg := matchField(app.NIC, nicPattern, "NIC is required", "Enter a valid NIC"); msg != "" {
		res.fail("nic", msg)
	}
	if !v.tables.ValidTitle(app.Title) {
		res.fail("title", "Invalid title")
	}
	if msg := minLenField(app.NameWithInitials, 2, "This field is required", "Too Short"); msg != "" {
		res.fail("nameWithInitials", msg)
	}
	if msg := minLenField(app.FullName, 2, "This field is required", "Too Short"); msg != "" {
		res.fail("fullName", msg)
	}
}

func (v *Validator) checkAddress(app *models.Application, res *Result) {
	if strings.TrimSpace(app.Street) == "" {
		res.fail("street", "This field is required")
	}
	if strings.TrimSpace(app.City) == "" {
		res.fail("city", "This field is required")
	}
	if !v.tables.ValidDistrict(app.District) {
		res.fail("district", "Invalid district")
	}

	// The division depends on the chosen district: with no district stated
	// the division is free text but must itself be stated; otherwise it
	// must belong to the district's division set.
	division := strings.TrimSpace(app.DSDivision)
	switch {
	case app.District == refdata.NotAvailable:
		if division == "" {
			res.fail("DSDivision", "This field is required")
		} else if division == refdata.NotAvailable {
			res.fail("DSDivision", "Invalid G. S. Division")
		}
	case v.tables.ValidDistrict(app.District):
		if division == "" {
			res.fail("DSDivision", "This field is required")
		} else if !v.tables.ValidDivision(app.District, division) {
			res.fail("DSDivision", "Invalid D. S. Division")
		}
	}

	if msg := matchField(app.Email, emailPattern, "Email is required", "Invalid email"); msg != "" {
		res.fail("email", msg)
	}
	if msg := matchField(app.Phone, phonePattern, "Phone is required", "Invalid phone number."); msg != "" {
		res.fail("phone", msg)
	}
}

func (v *Validator) checkAcademic(app *models.Application, res *Result) {
	if !v.tables.ValidFaculty(app.Faculty) {
		res.fail("faculty", "Invalid faculty")
	}
	if !v.tables.ValidCourse(app.Course) {
		res.fail("course", "Invalid course")
	}
}

func (v *Validator) checkParent(path string, p *models.Parent, res *Result) {
	who := "Father's"
	if path == "mother" {
		who = "Mother's"
	}
	if strings.TrimSpace(p.Name) == "" {
		res.fail(path+".name", who+" name is required")
	}

	if p.Living {
		switch {
		case !p.Age.Defined:
			res.fail(path+".age", "Age is required, if living")
		case p.Age.Float64 <= 0:
			res.fail(path+".age", "Age cannot be negative")
		case p.Age.Float64 > maxHumanAge:
			res.fail(path+".age", "Invalid age")
		}
	} else if p.Age.Defined {
		if p.Age.Float64 < 0 {
			res.fail(path+".age", "Age cannot be negative")
		} else if p.Age.Float64 > maxHumanAge {
			res.fail(path+".age", "Invalid age")
		}
	}

	if strings.TrimSpace(p.Employment.Occupation) == "" {
		res.fail(path+".employment.occupation", "Occupation is required")
	}
	if msg := moneyField(p.Employment.Salary, "Salary is required", "Salary cannot be negative"); msg != "" {
		res.fail(path+".employment.salary", msg)
	}
	if msg := v.pastDateField(p.Employment.DateOfEmployment, "Date of Employment is required", "Date of Employment cannot be in future"); msg != "" {
		res.fail(path+".employment.dateOfEmployment", msg)
	}
	if strings.TrimSpace(p.Employment.Address) == "" {
		res.fail(path+".employment.address", "Address is required")
	}

	if msg := moneyField(p.AnnualIncome.OccupationOrPension, "Occupation or pension income is required", "Income cannot be negative"); msg != "" {
		res.fail(path+".annualIncome.occupationOrPension", msg)
	}
	if msg := moneyField(p.AnnualIncome.HouseAndProperty, "House & property income is required", "Income cannot be negative"); msg != "" {
		res.fail(path+".annualIncome.houseAndProperty", msg)
	}
	if msg := moneyField(p.AnnualIncome.OtherSources, "Income from other sources is required", "Income cannot be negative"); msg != "" {
		res.fail(path+".annualIncome.otherSources", msg)
	}
}

func (v *Validator) checkGuardian(g *models.Guardian, res *Result) {
	// Guardian applies only to orphans, wards and clergy; nothing is
	// strictly required, only bounded when stated.
	if g.Age.Defined {
		if g.Age.Float64 < 0 {
			res.fail("guardian.age", "Age cannot be negative")
		} else if g.Age.Float64 > maxHumanAge {
			res.fail("guardian.age", "Invalid age")
		}
	}
	if post := strings.TrimSpace(g.Post); post != "" && len(post) < 3 {
		res.fail("guardian.post", "Too short")
	}
	if g.AnnualIncome.Salary.Defined && g.AnnualIncome.Salary.Float64 < 0 {
		res.fail("guardian.annualIncome.salary", "Income cannot be negative")
	}
	if g.AnnualIncome.HouseAndPropertyOrTemple.Defined && g.AnnualIncome.HouseAndPropertyOrTemple.Float64 < 0 {
		res.fail("guardian.annualIncome.houseAndPropertyOrTemple", "Income cannot be negative")
	}
}

func (v *Validator) checkSiblingsUnder19(siblings []models.SiblingUnder19, res *Result) {
	for i, s := range siblings {
		at := func(field string) string { return fmt.Sprintf("siblingsUnder19[%d].%s", i, field) }
		if msg := minLenField(s.Name, 2, "Name is required", "Too Short"); msg != "" {
			res.fail(at("name"), msg)
		}
		if msg := v.pastDateField(s.DOB, "Date of Birth is required", "Date of Birth cannot be in future"); msg != "" {
			res.fail(at("dob"), msg)
		}
		switch {
		case !s.Age.Defined:
			res.fail(at("age"), "Age is required")
		case s.Age.Float64 <= 0:
			res.fail(at("age"), "Age cannot be negative")
		case s.Age.Float64 > maxHumanAge:
			res.fail(at("age"), "Invalid age")
		}
		if strings.TrimSpace(s.SchoolOrInstitute) == "" {
			res.fail(at("schoolOrInstitute"), "School or institute is required")
		}
	}
}

func (v *Validator) checkSiblingsAtUniversity(siblings []models.SiblingAtUniversity, res *Result) {
	currentYear := v.now().Year()
	for i, s := range siblings {
		at := func(field string) string { return fmt.Sprintf("siblingsAtUniversity[%d].%s", i, field) }
		if msg := minLenField(s.Name, 2, "Name is required", "Too Short"); msg != "" {
			res.fail(at("name"), msg)
		}
		if strings.TrimSpace(s.RegNo) == "" {
			res.fail(at("regNo"), "Registration No. is required")
		}
		if strings.TrimSpace(s.Institute) == "" {
			res.fail(at("institute"), "Institute is required")
		}
		switch {
		case !s.AcademicYear.Defined:
			res.fail(at("academicYear"), "Academic year is required")
		case s.AcademicYear.Float64 < float64(currentYear-academicYearWindow):
			res.fail(at("academicYear"), "Invalid Academic year")
		case s.AcademicYear.Float64 > float64(currentYear):
			res.fail(at("academicYear"), "Academic year cannot exceed current year.")
		}
		if strings.TrimSpace(s.Course) == "" {
			res.fail(at("course"), "Course is required")
		}
	}
}

func (v *Validator) checkHouseIncomes(entries []models.HouseIncome, res *Result) {
	for i, h := range entries {
		at := func(field string) string { return fmt.Sprintf("incomeFromHouses[%d].%s", i, field) }
		if msg := minLenField(h.Name, 2, "Name is required", "Too Short"); msg != "" {
			res.fail(at("name"), msg)
		}
		if strings.TrimSpace(h.Relationship) == "" {
			res.fail(at("relationship"), "Relationship is required")
		}
		if strings.TrimSpace(h.AssessmentNo) == "" {
			res.fail(at("assessmentNo"), "Assessment No. is required")
		}
		if !h.NoOfHouseholders.Defined {
			res.fail(at("noOfHouseholders"), "No. of Householders is required")
		}
		if strings.TrimSpace(h.Address) == "" {
			res.fail(at("address"), "Address is required")
		}
		if msg := moneyField(h.AnnualIncome, "Annual Income is required", "Annual income cannot be negative"); msg != "" {
			res.fail(at("annualIncome"), msg)
		}
	}
}

func (v *Validator) checkLandIncomes(entries []models.LandIncome, res *Result) {
	for i, l := range entries {
		at := func(field string) string { return fmt.Sprintf("incomeFromEstateFieldsLands[%d].%s", i, field) }
		if strings.TrimSpace(l.Name) == "" {
			res.fail(at("name"), "Name is required")
		}
		if strings.TrimSpace(l.Relationship) == "" {
			res.fail(at("relationship"), "Relationship is required")
		}
		if strings.TrimSpace(l.Location) == "" {
			res.fail(at("location"), "Location is required")
		}
		if strings.TrimSpace(l.NatureOfCultivation) == "" {
			res.fail(at("natureOfCultivation"), "Nature of Cultivation is required")
		}
		if strings.TrimSpace(l.ExtentOfLandAndDetails) == "" {
			res.fail(at("extentOfLandAndDetails"), "Extent of Land & Details are required")
		}
		if msg := moneyField(l.AnnualIncome, "Annual Income is required", "Annual income cannot be negative"); msg != "" {
			res.fail(at("annualIncome"), msg)
		}
	}
}
