package models

import (
	"time"
)

// Application is one student's bursary application. The JSON tags are the
// durable record surface the admin review UI, PDF export and installment
// scheduler all read; field names and nesting must not change.
type Application struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"userId" gorm:"uniqueIndex;not null"`
	User      *User  `json:"-" gorm:"foreignKey:UserID"`
	Reference string `json:"reference"`

	// Identification
	RegNo            string `json:"regNo" gorm:"not null"`
	IndexNo          string `json:"indexNo"`
	NIC              string `json:"nic" gorm:"not null"`
	Title            string `json:"title"`
	NameWithInitials string `json:"nameWithInitials"`
	FullName         string `json:"fullName"`

	// Permanent address and contact
	Street     string `json:"street"`
	City       string `json:"city"`
	District   string `json:"district"`
	DSDivision string `json:"DSDivision" gorm:"column:ds_division"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	// Academic
	ZScore  float64 `json:"zScore"`
	Faculty string  `json:"faculty"`
	Course  string  `json:"course"`

	Employed   bool       `json:"employed" gorm:"not null"`
	Employment Employment `json:"employment" gorm:"embedded;embeddedPrefix:employment_"`

	Married bool   `json:"married" gorm:"not null"`
	Spouse  Spouse `json:"spouse" gorm:"embedded;embeddedPrefix:spouse_"`

	Father   Parent   `json:"father" gorm:"embedded;embeddedPrefix:father_"`
	Mother   Parent   `json:"mother" gorm:"embedded;embeddedPrefix:mother_"`
	Guardian Guardian `json:"guardian" gorm:"embedded;embeddedPrefix:guardian_"`

	SiblingsUnder19             []SiblingUnder19      `json:"siblingsUnder19" gorm:"foreignKey:ApplicationID"`
	SiblingsAtUniversity        []SiblingAtUniversity `json:"siblingsAtUniversity" gorm:"foreignKey:ApplicationID"`
	IncomeFromHouses            []HouseIncome         `json:"incomeFromHouses" gorm:"foreignKey:ApplicationID"`
	IncomeFromEstateFieldsLands []LandIncome          `json:"incomeFromEstateFieldsLands" gorm:"foreignKey:ApplicationID"`

	// Derived at submission, never user-entered.
	NetIncome        float64 `json:"netIncome" gorm:"not null"`
	IsValidCandidate bool    `json:"isValidCandidate" gorm:"not null;default:false"`

	// Owned by the admin workflow.
	IsApproved   bool               `json:"isApproved" gorm:"default:false"`
	Installments []InstallmentGrant `json:"installments" gorm:"foreignKey:ApplicationID"`
	Deadline     *time.Time         `json:"deadline"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is a street/city/district triple used by the applicant's
// employment section.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
}

// Employment holds the applicant's own employment particulars. Enforced
// only when Application.Employed is true.
type Employment struct {
	Establishment    string    `json:"establishment"`
	Address          Address   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Designation      string    `json:"designation"`
	Salary           Numeric   `json:"salary"`
	DateOfEmployment time.Time `json:"dateOfEmployment"`
}

// SpouseEmployment mirrors Employment minus the structured address.
type SpouseEmployment struct {
	Establishment    string    `json:"establishment"`
	Designation      string    `json:"designation"`
	Salary           Numeric   `json:"salary"`
	DateOfEmployment time.Time `json:"dateOfEmployment"`
}

// Spouse is enforced only when Application.Married is true.
type Spouse struct {
	Name       string           `json:"name"`
	Employment SpouseEmployment `json:"employment" gorm:"embedded;embeddedPrefix:employment_"`
}

type ParentEmployment struct {
	Occupation       string    `json:"occupation"`
	Salary           Numeric   `json:"salary"`
	DateOfEmployment time.Time `json:"dateOfEmployment"`
	Address          string    `json:"address"`
}

type ParentIncome struct {
	OccupationOrPension Numeric `json:"occupationOrPension"`
	HouseAndProperty    Numeric `json:"houseAndProperty"`
	OtherSources        Numeric `json:"otherSources"`
}

// Parent covers father and mother. Income particulars stay required even
// when the parent is not living.
type Parent struct {
	Name         string           `json:"name"`
	Living       bool             `json:"living"`
	Age          Numeric          `json:"age"`
	Employment   ParentEmployment `json:"employment" gorm:"embedded;embeddedPrefix:employment_"`
	AnnualIncome ParentIncome     `json:"annualIncome" gorm:"embedded;embeddedPrefix:income_"`
}

type GuardianIncome struct {
	Salary                   Numeric `json:"salary"`
	HouseAndPropertyOrTemple Numeric `json:"houseAndPropertyOrTemple"`
}

// Guardian applies to orphans, wards and clergy; no field is strictly
// required.
type Guardian struct {
	Name         string         `json:"name"`
	Age          Numeric        `json:"age"`
	Address      string         `json:"address"`
	Post         string         `json:"post"`
	AnnualIncome GuardianIncome `json:"annualIncome" gorm:"embedded;embeddedPrefix:income_"`
}

type SiblingUnder19 struct {
	ID                uint      `json:"-" gorm:"primaryKey"`
	ApplicationID     uint      `json:"-" gorm:"index;not null"`
	Name              string    `json:"name"`
	DOB               time.Time `json:"dob"`
	Age               Numeric   `json:"age"`
	SchoolOrInstitute string    `json:"schoolOrInstitute"`
}

type SiblingAtUniversity struct {
	ID                           uint    `json:"-" gorm:"primaryKey"`
	ApplicationID                uint    `json:"-" gorm:"index;not null"`
	Name                         string  `json:"name"`
	RegNo                        string  `json:"regNo"`
	Institute                    string  `json:"institute"`
	AcademicYear                 Numeric `json:"academicYear"`
	Course                       string  `json:"course"`
	IsBursaryOrMahapolaRecipient bool    `json:"isBursaryOrMahapolaRecipient"`
}

type HouseIncome struct {
	ID               uint    `json:"-" gorm:"primaryKey"`
	ApplicationID    uint    `json:"-" gorm:"index;not null"`
	Name             string  `json:"name"`
	Relationship     string  `json:"relationship"`
	AssessmentNo     string  `json:"assessmentNo"`
	NoOfHouseholders Numeric `json:"noOfHouseholders"`
	Address          string  `json:"address"`
	AnnualIncome     Numeric `json:"annualIncome"`
}

type LandIncome struct {
	ID                     uint    `json:"-" gorm:"primaryKey"`
	ApplicationID          uint    `json:"-" gorm:"index;not null"`
	Name                   string  `json:"name"`
	Relationship           string  `json:"relationship"`
	Location               string  `json:"location"`
	NatureOfCultivation    string  `json:"natureOfCultivation"`
	ExtentOfLandAndDetails string  `json:"extentOfLandAndDetails"`
	AnnualIncome           Numeric `json:"annualIncome"`
}

// InstallmentGrant links an approved application to an installment
// schedule owned by the disbursement workflow.
type InstallmentGrant struct {
	ID               uint `json:"-" gorm:"primaryKey"`
	ApplicationID    uint `json:"-" gorm:"index;not null"`
	InstallmentID    uint `json:"installmentId" gorm:"not null"`
	NoOfInstallments int  `json:"noOfInstallments" gorm:"not null"`
}
