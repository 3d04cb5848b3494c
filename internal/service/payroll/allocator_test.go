package payroll

import (
	"testing"
	"time"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardDeductionTypes() []deduction.DeductionType {
	return []deduction.DeductionType{
		{ID: "dt-advance", Name: deduction.NameAdvance, OrderNumber: deduction.OrderAdvance},
		{ID: "dt-charge", Name: deduction.NameCharge, OrderNumber: deduction.OrderCharge},
		{ID: "dt-loan", Name: deduction.NameLoan, OrderNumber: deduction.OrderLoan},
	}
}

func testDeduction(id, typeID string, installment, balance int64, start time.Time) deduction.Deduction {
	return deduction.Deduction{
		ID:                 id,
		StaffID:            "staff-1",
		DeductionTypeID:    typeID,
		OriginalAmount:     decimal.NewFromInt(balance),
		MonthlyInstallment: decimal.NewFromInt(installment),
		Balance:            decimal.NewFromInt(balance),
		StartDate:          start,
		Active:             true,
	}
}

func TestAllocateDeductionsCategoryOrder(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// Net pay covers the advance in full but only part of the loan: the
	// advance category must be served before the loan category regardless of
	// input order.
	deductions := []deduction.Deduction{
		testDeduction("d-loan", "dt-loan", 80000, 200000, start),
		testDeduction("d-advance", "dt-advance", 60000, 60000, start),
	}

	result := allocateDeductions(decimal.NewFromInt(100000), deductions, standardDeductionTypes())

	require.Len(t, result.Applied, 2)
	assert.Equal(t, "d-advance", result.Applied[0].DeductionID)
	assert.True(t, decimal.NewFromInt(60000).Equal(result.Applied[0].Amount))
	assert.Equal(t, "d-loan", result.Applied[1].DeductionID)
	assert.True(t, decimal.NewFromInt(40000).Equal(result.Applied[1].Amount))
	assert.True(t, decimal.NewFromInt(100000).Equal(result.Total))
}

func TestAllocateDeductionsDateOrderWithinCategory(t *testing.T) {
	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	deductions := []deduction.Deduction{
		testDeduction("d-new", "dt-loan", 50000, 100000, newer),
		testDeduction("d-old", "dt-loan", 50000, 100000, older),
	}

	// Only one installment fits; the older loan wins.
	result := allocateDeductions(decimal.NewFromInt(50000), deductions, standardDeductionTypes())

	require.Len(t, result.Applied, 1)
	assert.Equal(t, "d-old", result.Applied[0].DeductionID)
}

func TestAllocateDeductionsInstallmentAndBalanceCaps(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	deductions := []deduction.Deduction{
		// Balance below installment: only the balance can be taken.
		testDeduction("d-tail", "dt-advance", 30000, 10000, start),
	}

	result := allocateDeductions(decimal.NewFromInt(500000), deductions, standardDeductionTypes())

	require.Len(t, result.Applied, 1)
	assert.True(t, decimal.NewFromInt(10000).Equal(result.Applied[0].Amount))
}

func TestAllocateDeductionsGlobalStopAtZeroNet(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	deductions := []deduction.Deduction{
		testDeduction("d-advance", "dt-advance", 100000, 100000, start),
		testDeduction("d-charge", "dt-charge", 20000, 20000, start),
		testDeduction("d-loan", "dt-loan", 50000, 50000, start),
	}

	// The advance consumes the whole net; nothing later may allocate.
	result := allocateDeductions(decimal.NewFromInt(100000), deductions, standardDeductionTypes())

	require.Len(t, result.Applied, 1)
	assert.Equal(t, "d-advance", result.Applied[0].DeductionID)
	assert.True(t, decimal.NewFromInt(100000).Equal(result.Total))
}

func TestAllocateDeductionsNeverExceedsNet(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	deductions := []deduction.Deduction{
		testDeduction("d-1", "dt-advance", 70000, 70000, start),
		testDeduction("d-2", "dt-loan", 70000, 70000, start),
	}

	net := decimal.NewFromInt(90000)
	result := allocateDeductions(net, deductions, standardDeductionTypes())

	assert.True(t, result.Total.LessThanOrEqual(net))
	assert.True(t, decimal.NewFromInt(90000).Equal(result.Total))
}

func TestAllocateDeductionsZeroOrNegativeNet(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deductions := []deduction.Deduction{
		testDeduction("d-1", "dt-advance", 10000, 10000, start),
	}

	for _, net := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5000)} {
		result := allocateDeductions(net, deductions, standardDeductionTypes())
		assert.Empty(t, result.Applied)
		assert.True(t, result.Total.IsZero())
	}
}

func TestAllocateDeductionsByTypeSubtotals(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	deductions := []deduction.Deduction{
		testDeduction("d-loan-1", "dt-loan", 30000, 30000, start),
		testDeduction("d-loan-2", "dt-loan", 20000, 20000, start.AddDate(0, 1, 0)),
	}

	result := allocateDeductions(decimal.NewFromInt(500000), deductions, standardDeductionTypes())

	assert.True(t, decimal.NewFromInt(50000).Equal(result.ByType["dt-loan"]))
	assert.True(t, decimal.NewFromInt(50000).Equal(result.Total))
}
