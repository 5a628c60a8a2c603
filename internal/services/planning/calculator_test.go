package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifectawealth/portal/internal/apperrors"
)

func TestTaxSavings(t *testing.T) {
	p := TaxSavings(100000)
	assert.Equal(t, float64(60000), p.ReasonableSalary)
	assert.Equal(t, float64(40000), p.DistributionAmount)
	assert.Equal(t, float64(5652), p.SelfEmploymentTaxSavings)
	assert.Equal(t, float64(5000), p.CorporateTaxBenefits)
	assert.Equal(t, float64(10652), p.TotalAnnualSavings)
}

func TestTaxSavingsSalaryCap(t *testing.T) {
	// 60% of 200k exceeds the cap, so the salary pins at 65k.
	p := TaxSavings(200000)
	assert.Equal(t, float64(65000), p.ReasonableSalary)
	assert.Equal(t, float64(135000), p.DistributionAmount)
}

func TestTaxSavingsBelowThreshold(t *testing.T) {
	assert.Equal(t, TaxSavingsProjection{}, TaxSavings(49999))
}

func TestCompoundGrowth(t *testing.T) {
	points, err := CompoundGrowth(10000, 500, 0.07, 10)
	require.NoError(t, err)
	require.Len(t, points, 10)

	assert.Equal(t, 1, points[0].Year)
	assert.Equal(t, 10, points[9].Year)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Balance, points[i-1].Balance)
	}

	// Zero rate degenerates to principal plus contributions.
	flat, err := CompoundGrowth(1000, 100, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(2200), flat[0].Balance)
	assert.Equal(t, float64(3400), flat[1].Balance)
}

func TestCompoundGrowthValidation(t *testing.T) {
	_, err := CompoundGrowth(1000, 100, 0.05, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = CompoundGrowth(1000, 100, -0.05, 5)
	assert.True(t, apperrors.IsValidation(err))

	_, err = CompoundGrowth(-1, 100, 0.05, 5)
	assert.True(t, apperrors.IsValidation(err))
}
