package payroll

import (
	"fmt"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// StaffInputs is the read-only snapshot of one staff member at the start of a
// processing pass.
type StaffInputs struct {
	Member staff.Staff
	// Payments is the active payment configuration; Deductions are active
	// with balance > 0.
	Payments   []paytype.StaffPayment
	Deductions []deduction.Deduction
}

// RunInputs is the full snapshot a processing pass consumes. Building it up
// front keeps the calculation side-effect-free and repeatable.
type RunInputs struct {
	Company        company.Company
	Settings       tax.TaxSettings
	PaymentTypes   []paytype.PaymentType
	DeductionTypes []deduction.DeductionType
	Staff          []StaffInputs
}

// ProcessedRun is the engine output for one run: per-employee records, run
// totals and non-fatal warnings gathered along the way.
type ProcessedRun struct {
	Employees []payrollrun.EmployeeRecord
	Totals    payrollrun.RunTotals
	Warnings  []string
}

// Validate reports configuration errors that must fail the run before any
// processing begins.
func (in RunInputs) Validate() error {
	if in.Company.ID == "" {
		return payrollrun.ErrCompanyNotFound
	}
	if len(in.PaymentTypes) == 0 {
		return payrollrun.ErrNoPaymentTypes
	}
	if len(in.DeductionTypes) == 0 {
		return payrollrun.ErrNoDeductionTypes
	}
	return nil
}

// ProcessRun computes payroll for every staff member in the snapshot. Staff
// without any active payment configuration are skipped with a warning rather
// than failing the run. The calculation mutates nothing outside its return
// value and is safe to repeat for the same inputs.
func ProcessRun(inputs RunInputs) (ProcessedRun, error) {
	if err := inputs.Validate(); err != nil {
		return ProcessedRun{}, err
	}

	rates := NewEffectiveRates(inputs.Settings, inputs.Company)

	var out ProcessedRun
	for _, si := range inputs.Staff {
		if !si.Member.Active {
			continue
		}
		if len(si.Payments) == 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"staff %s (%s) skipped: no active payment configuration",
				si.Member.StaffNumber, si.Member.FullName()))
			continue
		}

		record, warnings := processEmployee(rates, inputs.PaymentTypes, inputs.DeductionTypes, si)
		out.Employees = append(out.Employees, record)
		out.Warnings = append(out.Warnings, warnings...)
	}

	out.Totals = computeTotals(out.Employees)
	return out, nil
}

func processEmployee(rates EffectiveRates, payTypes []paytype.PaymentType, dedTypes []deduction.DeductionType, si StaffInputs) (payrollrun.EmployeeRecord, []string) {
	configured := make(map[string]decimal.Decimal, len(si.Payments))
	for _, p := range si.Payments {
		configured[p.PaymentTypeID] = p.Amount
	}

	earnings := computeEarnings(rates, payTypes, configured, si.Member.ID)
	allocation := allocateDeductions(earnings.Breakdown.NetAfterCBHI, si.Deductions, dedTypes)

	record := payrollrun.EmployeeRecord{
		StaffID:     si.Member.ID,
		StaffNumber: si.Member.StaffNumber,
		StaffName:   si.Member.FullName(),

		PaymentAmounts: earnings.Amounts,
		GrossSalary:    earnings.Gross,

		PensionEmployee:   earnings.Breakdown.PensionEmployee,
		PensionEmployer:   earnings.Breakdown.PensionEmployer,
		MaternityEmployee: earnings.Breakdown.MaternityEmployee,
		MaternityEmployer: earnings.Breakdown.MaternityEmployer,
		RAMAEmployee:      earnings.Breakdown.RAMAEmployee,
		RAMAEmployer:      earnings.Breakdown.RAMAEmployer,
		EmployeeRSSB:      earnings.Breakdown.EmployeeRSSB,
		EmployerRSSB:      earnings.Breakdown.EmployerRSSB,
		PAYE:              earnings.Breakdown.PAYE,
		NetBeforeCBHI:     earnings.Breakdown.NetBeforeCBHI,
		CBHI:              earnings.Breakdown.CBHI,
		NetAfterCBHI:      earnings.Breakdown.NetAfterCBHI,

		AppliedDeductions: allocation.Applied,
		DeductionAmounts:  allocation.ByType,
		TotalDeductions:   allocation.Total,
		FinalNetPay:       earnings.Breakdown.NetAfterCBHI.Sub(allocation.Total),
	}

	return record, earnings.Warnings
}
