package payroll

import (
	"sort"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
)

// AllocationResult is the set of allocations proposed for one employee.
// Balances are untouched here; they move only when the run is approved.
type AllocationResult struct {
	Applied []payrollrun.AppliedDeduction
	ByType  map[string]decimal.Decimal
	Total   decimal.Decimal
}

// allocateDeductions walks the employee's active deductions in category order
// and, within a category, by start date (earliest first). Each allocation is
// capped by the monthly installment, the remaining balance and the remaining
// net pay. Once remaining net reaches zero allocation stops across all
// remaining categories, so net pay is never driven negative.
func allocateDeductions(netAfterCBHI decimal.Decimal, deductions []deduction.Deduction, dedTypes []deduction.DeductionType) AllocationResult {
	orderedTypes := make([]deduction.DeductionType, len(dedTypes))
	copy(orderedTypes, dedTypes)
	sort.Slice(orderedTypes, func(i, j int) bool {
		return orderedTypes[i].OrderNumber < orderedTypes[j].OrderNumber
	})

	byType := make(map[string][]deduction.Deduction)
	for _, d := range deductions {
		byType[d.DeductionTypeID] = append(byType[d.DeductionTypeID], d)
	}

	result := AllocationResult{
		ByType: make(map[string]decimal.Decimal),
		Total:  decimal.Zero,
	}
	remainingNet := netAfterCBHI

	for _, dt := range orderedTypes {
		ofType := byType[dt.ID]
		sort.Slice(ofType, func(i, j int) bool {
			return ofType[i].StartDate.Before(ofType[j].StartDate)
		})

		for _, d := range ofType {
			if remainingNet.LessThanOrEqual(decimal.Zero) {
				return result
			}

			applied := decimal.Min(d.MonthlyInstallment, d.Balance, remainingNet)
			if !applied.IsPositive() {
				continue
			}

			result.Applied = append(result.Applied, payrollrun.AppliedDeduction{
				DeductionID:     d.ID,
				DeductionTypeID: d.DeductionTypeID,
				Amount:          applied,
			})
			result.ByType[dt.ID] = result.ByType[dt.ID].Add(applied)
			result.Total = result.Total.Add(applied)
			remainingNet = remainingNet.Sub(applied)
		}
	}

	return result
}
