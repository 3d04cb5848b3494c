package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Built-in deduction categories. The three are seeded for every company,
// non-deletable and fixed-order; custom categories get order >= 4.
const (
	OrderAdvance = 1
	OrderCharge  = 2
	OrderLoan    = 3

	NameAdvance = "Advance"
	NameCharge  = "Charge"
	NameLoan    = "Loan"

	// FirstCustomOrder is the lowest order number a user-defined type may take.
	FirstCustomOrder = 4
)

// DeductionType - deduction category definition. OrderNumber drives the
// allocation order during payroll processing.
type DeductionType struct {
	ID          string
	CompanyID   string
	Name        string
	OrderNumber int
	Deletable   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Deduction - one discretionary deduction owed by a staff member. Balance is
// derived (original - deducted so far, floored at zero) and only shrinks when
// a payroll run is approved.
type Deduction struct {
	ID                 string
	StaffID            string
	DeductionTypeID    string
	OriginalAmount     decimal.Decimal
	MonthlyInstallment decimal.Decimal
	DeductedSoFar      decimal.Decimal
	Balance            decimal.Decimal
	StartDate          time.Time
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RecalculateBalance sets Balance to original minus deducted so far, floored
// at zero.
func (d *Deduction) RecalculateBalance() {
	balance := d.OriginalAmount.Sub(d.DeductedSoFar)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	d.Balance = balance
}
