package paytype

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PAYMENT TYPE DTOs ==========

type CreatePaymentTypeRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"` // "gross" or "net"
}

func (r *CreatePaymentTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Category != string(CategoryGross) && r.Category != string(CategoryNet) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'gross' or 'net'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentTypeRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}

type PaymentTypeResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	OrderNumber int    `json:"order_number"`
	FixedName   bool   `json:"fixed_name"`
	Deletable   bool   `json:"deletable"`
}

// ========== STAFF PAYMENT DTOs ==========

type UpsertStaffPaymentRequest struct {
	StaffID       string          `json:"-"`
	PaymentTypeID string          `json:"payment_type_id"`
	Amount        decimal.Decimal `json:"amount"`
	Active        *bool           `json:"active,omitempty"`
}

func (r *UpsertStaffPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentTypeID) {
		errs = append(errs, validator.ValidationError{Field: "payment_type_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffPaymentResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	PaymentTypeID string          `json:"payment_type_id"`
	Amount        decimal.Decimal `json:"amount"`
	Active        bool            `json:"active"`
}
