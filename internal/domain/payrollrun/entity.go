package payrollrun

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum
type RunStatus string

const (
	StatusDraft     RunStatus = "draft"
	StatusToApprove RunStatus = "to_approve"
	StatusRejected  RunStatus = "rejected"
	// StatusApproved is terminal; an approved run is immutable history.
	StatusApproved RunStatus = "approved"
)

// AppliedDeduction - one proposed allocation against a deduction. Balances
// are only mutated when the run is approved.
type AppliedDeduction struct {
	DeductionID     string
	DeductionTypeID string
	Amount          decimal.Decimal
}

// EmployeeRecord - computed payroll for one staff member in one period.
// Immutable once the run is saved.
type EmployeeRecord struct {
	StaffID     string
	StaffNumber string
	StaffName   string

	// PaymentAmounts holds the computed gross per payment type id (net-target
	// components appear here already grossed up).
	PaymentAmounts map[string]decimal.Decimal
	GrossSalary    decimal.Decimal

	PensionEmployee   decimal.Decimal
	PensionEmployer   decimal.Decimal
	MaternityEmployee decimal.Decimal
	MaternityEmployer decimal.Decimal
	RAMAEmployee      decimal.Decimal
	RAMAEmployer      decimal.Decimal
	EmployeeRSSB      decimal.Decimal
	EmployerRSSB      decimal.Decimal
	PAYE              decimal.Decimal
	NetBeforeCBHI     decimal.Decimal
	CBHI              decimal.Decimal
	NetAfterCBHI      decimal.Decimal

	AppliedDeductions []AppliedDeduction
	// DeductionAmounts holds the applied total per deduction type id.
	DeductionAmounts map[string]decimal.Decimal
	TotalDeductions  decimal.Decimal
	FinalNetPay      decimal.Decimal
}

// RunTotals - run-level sums over all employee records.
type RunTotals struct {
	GrossSalary       decimal.Decimal
	PensionEmployee   decimal.Decimal
	PensionEmployer   decimal.Decimal
	MaternityEmployee decimal.Decimal
	MaternityEmployer decimal.Decimal
	RAMAEmployee      decimal.Decimal
	RAMAEmployer      decimal.Decimal
	EmployeeRSSB      decimal.Decimal
	EmployerRSSB      decimal.Decimal
	PAYE              decimal.Decimal
	CBHI              decimal.Decimal
	TotalDeductions   decimal.Decimal
	FinalNetPay       decimal.Decimal

	// PaymentTotals sums computed gross per payment type id; DeductionTotals
	// sums applied amounts per deduction type id.
	PaymentTotals   map[string]decimal.Decimal
	DeductionTotals map[string]decimal.Decimal
}

// PayrollRun - one payroll-processing pass for a company and period.
type PayrollRun struct {
	ID              string
	PeriodCode      string
	CompanyID       string
	Month           int
	Year            int
	Status          RunStatus
	Employees       []EmployeeRecord
	Totals          RunTotals
	RejectionReason *string
	Warnings        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Processed reports whether employee records have been populated.
func (r PayrollRun) Processed() bool {
	return len(r.Employees) > 0
}

// PeriodCodeFor formats a period as "YYYY-MM".
func PeriodCodeFor(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// RunSummary - denormalized projection for fast run listing.
type RunSummary struct {
	RunID           string
	PeriodCode      string
	CompanyID       string
	Month           int
	Year            int
	Status          RunStatus
	EmployeeCount   int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}

// Summarize derives the listing projection from a run.
func (r PayrollRun) Summarize() RunSummary {
	return RunSummary{
		RunID:           r.ID,
		PeriodCode:      r.PeriodCode,
		CompanyID:       r.CompanyID,
		Month:           r.Month,
		Year:            r.Year,
		Status:          r.Status,
		EmployeeCount:   len(r.Employees),
		TotalGross:      r.Totals.GrossSalary,
		TotalDeductions: r.Totals.TotalDeductions,
		TotalNet:        r.Totals.FinalNetPay,
	}
}
