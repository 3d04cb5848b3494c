package payroll

import (
	"testing"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsWithApplied(applied ...payrollrun.AppliedDeduction) []payrollrun.EmployeeRecord {
	return []payrollrun.EmployeeRecord{{StaffID: "staff-1", AppliedDeductions: applied}}
}

func TestApplyDeductionBalances(t *testing.T) {
	records := recordsWithApplied(payrollrun.AppliedDeduction{
		DeductionID: "d-loan", DeductionTypeID: "dt-loan", Amount: decimal.NewFromInt(30000),
	})
	deductions := []deduction.Deduction{
		{
			ID:                 "d-loan",
			OriginalAmount:     decimal.NewFromInt(180000),
			MonthlyInstallment: decimal.NewFromInt(30000),
			DeductedSoFar:      decimal.NewFromInt(60000),
			Balance:            decimal.NewFromInt(120000),
		},
	}

	updated := ApplyDeductionBalances(records, deductions)

	require.Len(t, updated, 1)
	assert.True(t, decimal.NewFromInt(90000).Equal(updated[0].DeductedSoFar))
	assert.True(t, decimal.NewFromInt(90000).Equal(updated[0].Balance))

	// Input slice is untouched.
	assert.True(t, decimal.NewFromInt(60000).Equal(deductions[0].DeductedSoFar))
}

func TestApplyDeductionBalancesSkipsUntouched(t *testing.T) {
	records := recordsWithApplied(payrollrun.AppliedDeduction{
		DeductionID: "d-loan", Amount: decimal.NewFromInt(10000),
	})
	deductions := []deduction.Deduction{
		{ID: "d-loan", OriginalAmount: decimal.NewFromInt(50000)},
		{ID: "d-other", OriginalAmount: decimal.NewFromInt(99999)},
	}

	updated := ApplyDeductionBalances(records, deductions)

	require.Len(t, updated, 1)
	assert.Equal(t, "d-loan", updated[0].ID)
}

func TestApplyDeductionBalancesAggregatesAcrossRecords(t *testing.T) {
	records := []payrollrun.EmployeeRecord{
		{AppliedDeductions: []payrollrun.AppliedDeduction{
			{DeductionID: "d-shared", Amount: decimal.NewFromInt(10000)},
		}},
		{AppliedDeductions: []payrollrun.AppliedDeduction{
			{DeductionID: "d-shared", Amount: decimal.NewFromInt(5000)},
		}},
	}
	deductions := []deduction.Deduction{
		{ID: "d-shared", OriginalAmount: decimal.NewFromInt(100000)},
	}

	updated := ApplyDeductionBalances(records, deductions)

	require.Len(t, updated, 1)
	assert.True(t, decimal.NewFromInt(15000).Equal(updated[0].DeductedSoFar))
	assert.True(t, decimal.NewFromInt(85000).Equal(updated[0].Balance))
}

func TestReverseDeductionBalancesIsInverse(t *testing.T) {
	records := recordsWithApplied(payrollrun.AppliedDeduction{
		DeductionID: "d-loan", Amount: decimal.NewFromInt(30000),
	})
	original := deduction.Deduction{
		ID:                 "d-loan",
		OriginalAmount:     decimal.NewFromInt(180000),
		MonthlyInstallment: decimal.NewFromInt(30000),
		DeductedSoFar:      decimal.NewFromInt(60000),
		Balance:            decimal.NewFromInt(120000),
	}

	applied := ApplyDeductionBalances(records, []deduction.Deduction{original})
	require.Len(t, applied, 1)

	reversed := ReverseDeductionBalances(records, applied)
	require.Len(t, reversed, 1)

	assert.True(t, original.DeductedSoFar.Equal(reversed[0].DeductedSoFar))
	assert.True(t, original.Balance.Equal(reversed[0].Balance))
}

func TestReverseDeductionBalancesFloorsAtZero(t *testing.T) {
	// Reversing more than was ever deducted must not go negative.
	records := recordsWithApplied(payrollrun.AppliedDeduction{
		DeductionID: "d-loan", Amount: decimal.NewFromInt(50000),
	})
	deductions := []deduction.Deduction{
		{
			ID:             "d-loan",
			OriginalAmount: decimal.NewFromInt(100000),
			DeductedSoFar:  decimal.NewFromInt(20000),
		},
	}

	updated := ReverseDeductionBalances(records, deductions)

	require.Len(t, updated, 1)
	assert.True(t, updated[0].DeductedSoFar.IsZero())
	assert.True(t, decimal.NewFromInt(100000).Equal(updated[0].Balance))
}
