package validation_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bursary-go/models"
	"bursary-go/refdata"
	"bursary-go/validation"
)

// Validation runs against a pinned clock so date-bound rules are
// reproducible.
var testNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func newValidator() *validation.Validator {
	return validation.New(refdata.Default(), func() time.Time { return testNow })
}

func pastDate() time.Time {
	return time.Date(2001, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func validParent(name string) models.Parent {
	return models.Parent{
		Name:   name,
		Living: true,
		Age:    models.N(52),
		Employment: models.ParentEmployment{
			Occupation:       "Farmer",
			Salary:           models.N(0),
			DateOfEmployment: pastDate(),
			Address:          "14 Point Pedro Road, Jaffna",
		},
		AnnualIncome: models.ParentIncome{
			OccupationOrPension: models.N(0),
			HouseAndProperty:    models.N(0),
			OtherSources:        models.N(0),
		},
	}
}

// validApplication is the reference record: unemployed, unmarried
// applicant with both parents living and zero declared income, one
// sibling under 19 and no income-source entries.
func validApplication() *models.Application {
	return &models.Application{
		RegNo:            "2020/CSC/045",
		IndexNo:          "S 10119",
		NIC:              "200012345678",
		Title:            "Mr.",
		NameWithInitials: "S. Aran",
		FullName:         "Sivakumar Aran",
		Street:           "12 Temple Road",
		City:             "Jaffna",
		District:         "Jaffna",
		DSDivision:       "Nallur",
		Phone:            "0771234567",
		Email:            "aran@example.com",
		ZScore:           1.8234,
		Faculty:          "Science",
		Course:           "Computer Science",
		Employed:         false,
		Married:          false,
		Father:           validParent("Sivakumar Rajan"),
		Mother:           validParent("Sivakumar Nila"),
		SiblingsUnder19: []models.SiblingUnder19{{
			Name:              "Sivakumar Kavya",
			DOB:               time.Date(2011, time.March, 14, 0, 0, 0, 0, time.UTC),
			Age:               models.N(14),
			SchoolOrInstitute: "Jaffna Hindu College",
		}},
	}
}

func TestValidate_CompleteRecordPasses(t *testing.T) {
	v := newValidator()
	res := v.Validate(validApplication())
	assert.True(t, res.Valid(), "expected a clean pass, got %v", res.Errors)
}

func TestValidate_Idempotent(t *testing.T) {
	v := newValidator()
	app := validApplication()
	app.RegNo = "bogus"
	app.DSDivision = "Homagama"

	first := v.Validate(app)
	second := v.Validate(app)
	assert.Equal(t, first.Errors, second.Errors)
}

func TestValidate_Patterns(t *testing.T) {
	cases := []struct {
		field string
		set   func(app *models.Application, value string)
		value string
		msg   string
	}{
		{"regNo", func(a *models.Application, v string) { a.RegNo = v }, "2020/XYZ/045", "Enter valid Registration No."},
		{"regNo", func(a *models.Application, v string) { a.RegNo = v }, "1999/CSC/045", "Enter valid Registration No."},
		{"regNo", func(a *models.Application, v string) { a.RegNo = v }, "", "Registration No. is required"},
		{"indexNo", func(a *models.Application, v string) { a.IndexNo = v }, "S10119", "Enter a valid Index No."},
		{"indexNo", func(a *models.Application, v string) { a.IndexNo = v }, "S 101", "Enter a valid Index No."},
		{"indexNo", func(a *models.Application, v string) { a.IndexNo = v }, "", "Index No. is required, If not provided contact welfare dept."},
		{"nic", func(a *models.Application, v string) { a.NIC = v }, "12345", "Enter a valid NIC"},
		{"nic", func(a *models.Application, v string) { a.NIC = v }, "", "NIC is required"},
		{"phone", func(a *models.Application, v string) { a.Phone = v }, "12345", "Invalid phone number."},
		{"phone", func(a *models.Application, v string) { a.Phone = v }, "", "Phone is required"},
		{"email", func(a *models.Application, v string) { a.Email = v }, "not-an-email", "Invalid email"},
	}

	v := newValidator()
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s=%q", tc.field, tc.value), func(t *testing.T) {
			app := validApplication()
			tc.set(app, tc.value)
			res := v.Validate(app)
			assert.Equal(t, tc.msg, res.Message(tc.field))
		})
	}
}

func TestValidate_AcceptedIdentifierForms(t *testing.T) {
	v := newValidator()

	for _, nic := range []string{"200012345678", "19981234567890", "987654321V", "987654321x"} {
		app := validApplication()
		app.NIC = nic
		assert.True(t, v.Validate(app).Ok("nic"), "nic %q should pass", nic)
	}

	for _, phone := range []string{"0771234567", "7712345678", "+94771234567"} {
		app := validApplication()
		app.Phone = phone
		assert.True(t, v.Validate(app).Ok("phone"), "phone %q should pass", phone)
	}
}

func TestValidate_Enumerations(t *testing.T) {
	v := newValidator()

	app := validApplication()
	app.Title = "Dr."
	assert.Equal(t, "Invalid title", v.Validate(app).Message("title"))

	app = validApplication()
	app.Faculty = "Astrology"
	assert.Equal(t, "Invalid faculty", v.Validate(app).Message("faculty"))

	app = validApplication()
	app.Course = "Alchemy"
	assert.Equal(t, "Invalid course", v.Validate(app).Message("course"))
}

func TestValidate_DistrictDivisionConsistency(t *testing.T) {
	v := newValidator()

	t.Run("division from another district fails on division only", func(t *testing.T) {
		app := validApplication()
		app.District = "Jaffna"
		app.DSDivision = "Homagama" // Colombo's
		res := v.Validate(app)
		assert.Equal(t, "Invalid D. S. Division", res.Message("DSDivision"))
		assert.True(t, res.Ok("district"))
		delete(res.Errors, "DSDivision")
		assert.Empty(t, res.Errors, "only the division may fail")
	})

	t.Run("unknown district fails", func(t *testing.T) {
		app := validApplication()
		app.District = "Atlantis"
		res := v.Validate(app)
		assert.Equal(t, "Invalid district", res.Message("district"))
	})

	t.Run("district N/A requires a stated division", func(t *testing.T) {
		app := validApplication()
		app.District = refdata.NotAvailable
		app.DSDivision = refdata.NotAvailable
		assert.Equal(t, "Invalid G. S. Division", v.Validate(app).Message("DSDivision"))

		app.DSDivision = ""
		assert.Equal(t, "This field is required", v.Validate(app).Message("DSDivision"))

		app.DSDivision = "Somewhere Off-List"
		assert.True(t, v.Validate(app).Ok("DSDivision"))
	})
}

func TestValidate_EmploymentIgnoredWhenNotEmployed(t *testing.T) {
	v := newValidator()
	app := validApplication()
	app.Employed = false
	// Garbage in every employment field; none of it may be reported.
	app.Employment = models.Employment{
		Establishment:    "",
		Designation:      "",
		Salary:           models.N(-999),
		DateOfEmployment: testNow.AddDate(5, 0, 0),
		Address:          models.Address{District: "Atlantis"},
	}

	res := v.Validate(app)
	for path := range res.Errors {
		assert.NotContains(t, path, "employment.", "unexpected failure on %s", path)
	}
	assert.True(t, res.Valid())
}

func TestValidate_EmploymentEnforcedWhenEmployed(t *testing.T) {
	v := newValidator()
	app := validApplication()
	app.Employed = true
	// Salary deliberately left undefined.
	app.Employment = models.Employment{
		Establishment:    "Divisional Secretariat",
		Designation:      "Clerk",
		DateOfEmployment: pastDate(),
		Address: models.Address{
			Street:   "1 Main Street",
			City:     "Jaffna",
			District: "Jaffna",
		},
	}

	res := v.Validate(app)
	assert.Equal(t, "Salary is required", res.Message("employment.salary"))
	delete(res.Errors, "employment.salary")
	assert.Empty(t, res.Errors, "all other fields must keep passing")

	app.Employment.Salary = models.N(45000)
	assert.True(t, v.Validate(app).Valid())

	app.Employment.Salary = models.N(-1)
	assert.Equal(t, "Salary cannot be negative", v.Validate(app).Message("employment.salary"))

	app.Employment.Salary = models.N(45000)
	app.Employment.DateOfEmployment = testNow.AddDate(0, 1, 0)
	assert.Equal(t, "Date of Employment cannot be in future", v.Validate(app).Message("employment.dateOfEmployment"))
}

func TestValidate_SpouseGatedByMarried(t *testing.T) {
	v := newValidator()

	app := validApplication()
	app.Married = false
	app.Spouse = models.Spouse{} // empty, must not be reported
	assert.True(t, v.Validate(app).Valid())

	app.Married = true
	res := v.Validate(app)
	assert.Equal(t, "Name is required", res.Message("spouse.name"))
	assert.Equal(t, "Establishment is required", res.Message("spouse.employment.establishment"))
	assert.Equal(t, "Designation is required", res.Message("spouse.employment.designation"))
	assert.Equal(t, "Salary is required", res.Message("spouse.employment.salary"))
	assert.Equal(t, "Date of Employment is required", res.Message("spouse.employment.dateOfEmployment"))

	app.Spouse = models.Spouse{
		Name: "Sivakumar Meena",
		Employment: models.SpouseEmployment{
			Establishment:    "Provincial Hospital",
			Designation:      "Nurse",
			Salary:           models.N(52000),
			DateOfEmployment: pastDate(),
		},
	}
	assert.True(t, v.Validate(app).Valid())
}

func TestValidate_ParentRules(t *testing.T) {
	v := newValidator()

	t.Run("living parent needs an age", func(t *testing.T) {
		app := validApplication()
		app.Father.Age = models.Numeric{}
		assert.Equal(t, "Age is required, if living", v.Validate(app).Message("father.age"))
	})

	t.Run("age bounds", func(t *testing.T) {
		app := validApplication()
		app.Mother.Age = models.N(130)
		assert.Equal(t, "Invalid age", v.Validate(app).Message("mother.age"))

		app.Mother.Age = models.N(0)
		assert.Equal(t, "Age cannot be negative", v.Validate(app).Message("mother.age"))
	})

	t.Run("deceased parent needs no age but income stays required", func(t *testing.T) {
		app := validApplication()
		app.Father.Living = false
		app.Father.Age = models.Numeric{}
		res := v.Validate(app)
		assert.True(t, res.Ok("father.age"))

		app.Father.AnnualIncome.OtherSources = models.Numeric{}
		res = v.Validate(app)
		assert.Equal(t, "Income from other sources is required", res.Message("father.annualIncome.otherSources"))
	})

	t.Run("negative income", func(t *testing.T) {
		app := validApplication()
		app.Mother.AnnualIncome.HouseAndProperty = models.N(-100)
		assert.Equal(t, "Income cannot be negative", v.Validate(app).Message("mother.annualIncome.houseAndProperty"))
	})

	t.Run("missing name", func(t *testing.T) {
		app := validApplication()
		app.Mother.Name = "  "
		assert.Equal(t, "Mother's name is required", v.Validate(app).Message("mother.name"))
	})
}

func TestValidate_GuardianOptional(t *testing.T) {
	v := newValidator()

	app := validApplication()
	app.Guardian = models.Guardian{} // entirely empty is fine
	assert.True(t, v.Validate(app).Valid())

	app.Guardian.Age = models.N(200)
	assert.Equal(t, "Invalid age", v.Validate(app).Message("guardian.age"))

	app.Guardian.Age = models.N(68)
	app.Guardian.AnnualIncome.HouseAndPropertyOrTemple = models.N(-5)
	assert.Equal(t, "Income cannot be negative", v.Validate(app).Message("guardian.annualIncome.houseAndPropertyOrTemple"))
}

func TestValidate_ListElementsIndexedIndividually(t *testing.T) {
	v := newValidator()

	app := validApplication()
	app.SiblingsUnder19 = append(app.SiblingsUnder19, models.SiblingUnder19{
		Name:              "Sivakumar Tharan",
		DOB:               testNow.AddDate(1, 0, 0), // future
		Age:               models.N(8),
		SchoolOrInstitute: "St. John's College",
	})

	res := v.Validate(app)
	assert.True(t, res.Ok("siblingsUnder19[0].dob"))
	assert.Equal(t, "Date of Birth cannot be in future", res.Message("siblingsUnder19[1].dob"))
}

func TestValidate_SiblingsAtUniversity(t *testing.T) {
	v := newValidator()

	base := models.SiblingAtUniversity{
		Name:         "Sivakumar Abi",
		RegNo:        "2022/E/101",
		Institute:    "University of Peradeniya",
		AcademicYear: models.N(float64(testNow.Year() - 2)),
		Course:       "Engineering",
	}

	app := validApplication()
	app.SiblingsAtUniversity = []models.SiblingAtUniversity{base}
	assert.True(t, v.Validate(app).Valid())

	stale := base
	stale.AcademicYear = models.N(float64(testNow.Year() - 8))
	app.SiblingsAtUniversity = []models.SiblingAtUniversity{stale}
	assert.Equal(t, "Invalid Academic year", v.Validate(app).Message("siblingsAtUniversity[0].academicYear"))

	future := base
	future.AcademicYear = models.N(float64(testNow.Year() + 1))
	app.SiblingsAtUniversity = []models.SiblingAtUniversity{future}
	assert.Equal(t, "Academic year cannot exceed current year.", v.Validate(app).Message("siblingsAtUniversity[0].academicYear"))

	missing := base
	missing.Institute = ""
	app.SiblingsAtUniversity = []models.SiblingAtUniversity{missing}
	assert.Equal(t, "Institute is required", v.Validate(app).Message("siblingsAtUniversity[0].institute"))
}

func TestValidate_IncomeEntries(t *testing.T) {
	v := newValidator()

	app := validApplication()
	app.IncomeFromHouses = []models.HouseIncome{{
		Name:             "Sivakumar Rajan",
		Relationship:     "Father",
		AssessmentNo:     "A-1042",
		NoOfHouseholders: models.N(4),
		Address:          "9 Beach Road, Jaffna",
		AnnualIncome:     models.N(120000),
	}}
	app.IncomeFromEstateFieldsLands = []models.LandIncome{{
		Name:                   "Sivakumar Rajan",
		Relationship:           "Father",
		Location:               "Chavakachcheri",
		NatureOfCultivation:    "Paddy",
		ExtentOfLandAndDetails: "2 acres, single harvest",
		AnnualIncome:           models.N(80000),
	}}
	assert.True(t, v.Validate(app).Valid())

	app.IncomeFromHouses[0].AnnualIncome = models.N(-1)
	assert.Equal(t, "Annual income cannot be negative", v.Validate(app).Message("incomeFromHouses[0].annualIncome"))

	app.IncomeFromHouses[0].AnnualIncome = models.N(120000)
	app.IncomeFromEstateFieldsLands[0].NatureOfCultivation = ""
	assert.Equal(t, "Nature of Cultivation is required", v.Validate(app).Message("incomeFromEstateFieldsLands[0].natureOfCultivation"))
}

// Monetary fields arriving as garbage coerce to 0 at decode time: they
// never fail "required", and pass the lower-bound check at 0.
func TestValidate_MonetaryCoercionFromJSON(t *testing.T) {
	v := newValidator()

	app := validApplication()
	payload, err := json.Marshal(app)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &m))
	father := m["father"].(map[string]interface{})
	income := father["annualIncome"].(map[string]interface{})
	income["occupationOrPension"] = "not a number"

	mangled, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded models.Application
	require.NoError(t, json.Unmarshal(mangled, &decoded))
	require.True(t, decoded.Father.AnnualIncome.OccupationOrPension.Defined)
	assert.Equal(t, float64(0), decoded.Father.AnnualIncome.OccupationOrPension.Float64)

	res := v.Validate(&decoded)
	assert.True(t, res.Ok("father.annualIncome.occupationOrPension"), "coerced zero must pass: %v", res.Errors)
}

func TestValidate_RestrictedTablesDouble(t *testing.T) {
	tables := refdata.New(
		[]string{"Mr."},
		[]string{refdata.NotAvailable, "Jaffna"},
		[]string{"Science"},
		[]string{"Computer Science"},
		map[string][]string{"Jaffna": {"Nallur"}},
	)
	v := validation.New(tables, func() time.Time { return testNow })

	app := validApplication()
	assert.True(t, v.Validate(app).Valid())

	app.District = "Colombo" // real district, but absent from the double
	assert.Equal(t, "Invalid district", v.Validate(app).Message("district"))
}
