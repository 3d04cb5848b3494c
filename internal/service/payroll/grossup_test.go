package payroll

import (
	"testing"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrossUpRoundTrip(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allActiveCompany())

	accGross := decimal.NewFromInt(500000)
	accBasic := decimal.NewFromInt(500000)
	accTransport := decimal.Zero

	targets := []int64{1000, 50000, 200000, 1000000}
	for _, target := range targets {
		targetDec := decimal.NewFromInt(target)
		result := GrossUp(rates, targetDec, accGross, accTransport, accBasic)

		require.True(t, result.Converged, "target %d did not converge", target)

		// Re-derive the net increment the solved gross actually produces.
		baseline := rates.netForGross(accGross, accTransport, accBasic)
		increment := rates.netForGross(accGross.Add(result.Gross), accTransport, accBasic).Sub(baseline)
		diff := increment.Sub(targetDec).Abs()

		assert.True(t, diff.LessThanOrEqual(grossUpTolerance),
			"target %d: net increment %s off by %s", target, increment, diff)
	}
}

func TestGrossUpNonPositiveTarget(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allActiveCompany())

	for _, target := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10000)} {
		result := GrossUp(rates, target, decimal.NewFromInt(500000), decimal.Zero, decimal.NewFromInt(500000))
		assert.True(t, result.Gross.IsZero())
		assert.True(t, result.Converged)
		assert.True(t, result.Residual.IsZero())
	}
}

func TestGrossUpFullyExemptCompanyIsIdentity(t *testing.T) {
	// With every statutory charge off, net equals gross, so the solved gross
	// should land on the target itself.
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allExemptCompany())

	target := decimal.NewFromInt(100000)
	result := GrossUp(rates, target, decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, result.Converged)
	diff := result.Gross.Sub(target).Abs()
	assert.True(t, diff.LessThanOrEqual(grossUpTolerance), "gross %s not within tolerance of target", result.Gross)
}

func TestGrossUpDeterministic(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allActiveCompany())

	target := decimal.NewFromInt(150000)
	first := GrossUp(rates, target, decimal.NewFromInt(300000), decimal.NewFromInt(20000), decimal.NewFromInt(280000))
	second := GrossUp(rates, target, decimal.NewFromInt(300000), decimal.NewFromInt(20000), decimal.NewFromInt(280000))

	assert.True(t, first.Gross.Equal(second.Gross))
	assert.Equal(t, first.Converged, second.Converged)
}

func TestGrossUpResultWarning(t *testing.T) {
	r := GrossUpResult{Residual: decimal.NewFromFloat(-3.75)}
	msg := r.Warning("staff-1")

	assert.Contains(t, msg, "staff-1")
	assert.Contains(t, msg, "3.75")
}
