package payroll

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
)

// computeTotals folds the employee records of a run into run-level totals,
// including per-payment-type and per-deduction-type subtotals.
func computeTotals(records []payrollrun.EmployeeRecord) payrollrun.RunTotals {
	totals := payrollrun.RunTotals{
		PaymentTotals:   make(map[string]decimal.Decimal),
		DeductionTotals: make(map[string]decimal.Decimal),
	}

	for _, rec := range records {
		totals.GrossSalary = totals.GrossSalary.Add(rec.GrossSalary)
		totals.PensionEmployee = totals.PensionEmployee.Add(rec.PensionEmployee)
		totals.PensionEmployer = totals.PensionEmployer.Add(rec.PensionEmployer)
		totals.MaternityEmployee = totals.MaternityEmployee.Add(rec.MaternityEmployee)
		totals.MaternityEmployer = totals.MaternityEmployer.Add(rec.MaternityEmployer)
		totals.RAMAEmployee = totals.RAMAEmployee.Add(rec.RAMAEmployee)
		totals.RAMAEmployer = totals.RAMAEmployer.Add(rec.RAMAEmployer)
		totals.EmployeeRSSB = totals.EmployeeRSSB.Add(rec.EmployeeRSSB)
		totals.EmployerRSSB = totals.EmployerRSSB.Add(rec.EmployerRSSB)
		totals.PAYE = totals.PAYE.Add(rec.PAYE)
		totals.CBHI = totals.CBHI.Add(rec.CBHI)
		totals.TotalDeductions = totals.TotalDeductions.Add(rec.TotalDeductions)
		totals.FinalNetPay = totals.FinalNetPay.Add(rec.FinalNetPay)

		for paymentTypeID, amount := range rec.PaymentAmounts {
			totals.PaymentTotals[paymentTypeID] = totals.PaymentTotals[paymentTypeID].Add(amount)
		}
		for deductionTypeID, amount := range rec.DeductionAmounts {
			totals.DeductionTotals[deductionTypeID] = totals.DeductionTotals[deductionTypeID].Add(amount)
		}
	}

	return totals
}
