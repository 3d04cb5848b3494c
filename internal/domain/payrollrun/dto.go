package payrollrun

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RUN DTOs ==========

type CreateRunRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRunRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type AppliedDeductionResponse struct {
	DeductionID     string          `json:"deduction_id"`
	DeductionTypeID string          `json:"deduction_type_id"`
	Amount          decimal.Decimal `json:"amount"`
}

type EmployeeRecordResponse struct {
	StaffID           string                     `json:"staff_id"`
	StaffNumber       string                     `json:"staff_number"`
	StaffName         string                     `json:"staff_name"`
	PaymentAmounts    map[string]decimal.Decimal `json:"payment_amounts"`
	GrossSalary       decimal.Decimal            `json:"gross_salary"`
	PensionEmployee   decimal.Decimal            `json:"pension_employee"`
	PensionEmployer   decimal.Decimal            `json:"pension_employer"`
	MaternityEmployee decimal.Decimal            `json:"maternity_employee"`
	MaternityEmployer decimal.Decimal            `json:"maternity_employer"`
	RAMAEmployee      decimal.Decimal            `json:"rama_employee"`
	RAMAEmployer      decimal.Decimal            `json:"rama_employer"`
	EmployeeRSSB      decimal.Decimal            `json:"employee_rssb"`
	EmployerRSSB      decimal.Decimal            `json:"employer_rssb"`
	PAYE              decimal.Decimal            `json:"paye"`
	NetBeforeCBHI     decimal.Decimal            `json:"net_before_cbhi"`
	CBHI              decimal.Decimal            `json:"cbhi"`
	NetAfterCBHI      decimal.Decimal            `json:"net_after_cbhi"`
	AppliedDeductions []AppliedDeductionResponse `json:"applied_deductions"`
	DeductionAmounts  map[string]decimal.Decimal `json:"deduction_amounts"`
	TotalDeductions   decimal.Decimal            `json:"total_deductions"`
	FinalNetPay       decimal.Decimal            `json:"final_net_pay"`
}

type RunTotalsResponse struct {
	GrossSalary       decimal.Decimal            `json:"gross_salary"`
	PensionEmployee   decimal.Decimal            `json:"pension_employee"`
	PensionEmployer   decimal.Decimal            `json:"pension_employer"`
	MaternityEmployee decimal.Decimal            `json:"maternity_employee"`
	MaternityEmployer decimal.Decimal            `json:"maternity_employer"`
	RAMAEmployee      decimal.Decimal            `json:"rama_employee"`
	RAMAEmployer      decimal.Decimal            `json:"rama_employer"`
	EmployeeRSSB      decimal.Decimal            `json:"employee_rssb"`
	EmployerRSSB      decimal.Decimal            `json:"employer_rssb"`
	PAYE              decimal.Decimal            `json:"paye"`
	CBHI              decimal.Decimal            `json:"cbhi"`
	TotalDeductions   decimal.Decimal            `json:"total_deductions"`
	FinalNetPay       decimal.Decimal            `json:"final_net_pay"`
	PaymentTotals     map[string]decimal.Decimal `json:"payment_totals"`
	DeductionTotals   map[string]decimal.Decimal `json:"deduction_totals"`
}

type RunResponse struct {
	ID              string                   `json:"id"`
	PeriodCode      string                   `json:"period_code"`
	CompanyID       string                   `json:"company_id"`
	Month           int                      `json:"month"`
	Year            int                      `json:"year"`
	Status          string                   `json:"status"`
	Employees       []EmployeeRecordResponse `json:"employees"`
	Totals          RunTotalsResponse        `json:"totals"`
	RejectionReason *string                  `json:"rejection_reason,omitempty"`
	Warnings        []string                 `json:"warnings,omitempty"`
}

type RunSummaryResponse struct {
	RunID           string          `json:"run_id"`
	PeriodCode      string          `json:"period_code"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Status          string          `json:"status"`
	EmployeeCount   int             `json:"employee_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}
