package deduction

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== DEDUCTION TYPE DTOs ==========

type CreateDeductionTypeRequest struct {
	Name string `json:"name"`
}

func (r *CreateDeductionTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionTypeRequest struct {
	ID   string
	Name *string `json:"name,omitempty"`
}

type DeductionTypeResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	OrderNumber int    `json:"order_number"`
	Deletable   bool   `json:"deletable"`
}

// ========== DEDUCTION DTOs ==========

type CreateDeductionRequest struct {
	StaffID            string          `json:"staff_id"`
	DeductionTypeID    string          `json:"deduction_type_id"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	StartDate          string          `json:"start_date"` // YYYY-MM-DD
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DeductionTypeID) {
		errs = append(errs, validator.ValidationError{Field: "deduction_type_id", Message: "is required"})
	}
	if !r.OriginalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "original_amount", Message: "must be positive"})
	}
	if !r.MonthlyInstallment.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_installment", Message: "must be positive"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	ID                 string
	MonthlyInstallment *decimal.Decimal `json:"monthly_installment,omitempty"`
	Active             *bool            `json:"active,omitempty"`
}

type DeductionResponse struct {
	ID                 string          `json:"id"`
	StaffID            string          `json:"staff_id"`
	DeductionTypeID    string          `json:"deduction_type_id"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	DeductedSoFar      decimal.Decimal `json:"deducted_so_far"`
	Balance            decimal.Decimal `json:"balance"`
	StartDate          string          `json:"start_date"`
	Active             bool            `json:"active"`
}
