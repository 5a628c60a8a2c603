// Package planning provides the tax-savings and wealth-growth projections
// shown on the planning pages. All functions are pure.
package planning

import (
	"math"

	"github.com/trifectawealth/portal/internal/apperrors"
)

const (
	// Profit below this threshold does not support an S-corp election.
	minProfitForElection = 50000

	salaryShare            = 0.6
	salaryCap              = 65000
	selfEmploymentTaxRate  = 0.1413
	corporateDeductionRate = 0.05
)

// TaxSavingsProjection breaks down the estimated annual savings from an
// S-corp style salary/distribution split. Components are rounded to whole
// dollars.
type TaxSavingsProjection struct {
	ReasonableSalary         float64 `json:"reasonable_salary"`
	DistributionAmount       float64 `json:"distribution_amount"`
	SelfEmploymentTaxSavings float64 `json:"self_employment_tax_savings"`
	CorporateTaxBenefits     float64 `json:"corporate_tax_benefits"`
	TotalAnnualSavings       float64 `json:"total_annual_savings"`
}

// TaxSavings projects the annual savings for a given business profit. Profit
// below the election threshold yields a zero projection.
func TaxSavings(profit float64) TaxSavingsProjection {
	if profit < minProfitForElection {
		return TaxSavingsProjection{}
	}

	reasonableSalary := math.Min(profit*salaryShare, salaryCap)
	distribution := profit - reasonableSalary
	seSavings := distribution * selfEmploymentTaxRate
	corporateBenefits := profit * corporateDeductionRate

	return TaxSavingsProjection{
		ReasonableSalary:         math.Round(reasonableSalary),
		DistributionAmount:       math.Round(distribution),
		SelfEmploymentTaxSavings: math.Round(seSavings),
		CorporateTaxBenefits:     math.Round(corporateBenefits),
		TotalAnnualSavings:       math.Round(seSavings + corporateBenefits),
	}
}

// GrowthPoint is the projected balance at the end of one year.
type GrowthPoint struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

// CompoundGrowth projects a monthly-compounded balance with regular monthly
// contributions over the given horizon, returning one point per year.
func CompoundGrowth(principal, monthlyContribution, annualRate float64, years int) ([]GrowthPoint, error) {
	if years <= 0 {
		return nil, apperrors.NewValidationError("years", "must be a positive integer")
	}
	if annualRate < 0 {
		return nil, apperrors.NewValidationError("annual_rate", "must not be negative")
	}
	if principal < 0 || monthlyContribution < 0 {
		return nil, apperrors.NewValidationError("principal", "amounts must not be negative")
	}

	monthlyRate := annualRate / 12
	balance := principal
	points := make([]GrowthPoint, 0, years)
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			balance = balance*(1+monthlyRate) + monthlyContribution
		}
		points = append(points, GrowthPoint{Year: year, Balance: math.Round(balance*100) / 100})
	}
	return points, nil
}
