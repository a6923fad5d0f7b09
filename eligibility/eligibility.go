// Package eligibility computes the derived financial figures of a fully
// validated application: net family income and the candidate flag. The
// income ceiling is institution policy and arrives as configuration, never
// hard-coded here.
package eligibility

import "bursary-go/models"

type Policy struct {
	// IncomeCeiling is the annual net family income (in rupees) at or
	// below which an applicant qualifies for bursary consideration.
	IncomeCeiling float64
}

type Outcome struct {
	NetIncome        float64 `json:"netIncome"`
	IsValidCandidate bool    `json:"isValidCandidate"`
}

// Derive sums every declared income source and applies the policy ceiling.
// Deterministic; call only on a record that passed validation in full.
func Derive(app *models.Application, policy Policy) Outcome {
	net := parentIncome(&app.Father) + parentIncome(&app.Mother)

	net += app.Guardian.AnnualIncome.Salary.Float64
	net += app.Guardian.AnnualIncome.HouseAndPropertyOrTemple.Float64

	for _, h := range app.IncomeFromHouses {
		net += h.AnnualIncome.Float64
	}
	for _, l := range app.IncomeFromEstateFieldsLands {
		net += l.AnnualIncome.Float64
	}

	if app.Employed {
		net += app.Employment.Salary.Float64
	}
	if app.Married {
		net += app.Spouse.Employment.Salary.Float64
	}

	return Outcome{
		NetIncome:        net,
		IsValidCandidate: net <= policy.IncomeCeiling,
	}
}

func parentIncome(p *models.Parent) float64 {
	return p.AnnualIncome.OccupationOrPension.Float64 +
		p.AnnualIncome.HouseAndProperty.Float64 +
		p.AnnualIncome.OtherSources.Float64
}
