package payroll

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
)

// appliedAmounts collects the total applied per deduction id across a run.
func appliedAmounts(records []payrollrun.EmployeeRecord) map[string]decimal.Decimal {
	applied := make(map[string]decimal.Decimal)
	for _, rec := range records {
		for _, ad := range rec.AppliedDeductions {
			applied[ad.DeductionID] = applied[ad.DeductionID].Add(ad.Amount)
		}
	}
	return applied
}

// ApplyDeductionBalances returns updated copies of the deductions touched by
// an approved run: deducted-so-far grows by the applied amount and the
// balance is re-derived. This is the only path that consumes deduction
// balances; draft and rejected runs never reach it.
func ApplyDeductionBalances(records []payrollrun.EmployeeRecord, deductions []deduction.Deduction) []deduction.Deduction {
	applied := appliedAmounts(records)

	var updated []deduction.Deduction
	for _, d := range deductions {
		amount, ok := applied[d.ID]
		if !ok || amount.IsZero() {
			continue
		}
		d.DeductedSoFar = d.DeductedSoFar.Add(amount)
		d.RecalculateBalance()
		updated = append(updated, d)
	}
	return updated
}

// ReverseDeductionBalances is the exact inverse of ApplyDeductionBalances,
// used to restore balances when an approved run is deleted.
func ReverseDeductionBalances(records []payrollrun.EmployeeRecord, deductions []deduction.Deduction) []deduction.Deduction {
	applied := appliedAmounts(records)

	var updated []deduction.Deduction
	for _, d := range deductions {
		amount, ok := applied[d.ID]
		if !ok || amount.IsZero() {
			continue
		}
		d.DeductedSoFar = floorZero(d.DeductedSoFar.Sub(amount))
		d.RecalculateBalance()
		updated = append(updated, d)
	}
	return updated
}
