package response

import (
	"errors"
	"net/http"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffNumberExists):
		Conflict(w, "Staff number already exists")

	// Payment type domain errors
	case errors.Is(err, paytype.ErrPaymentTypeNotFound):
		NotFound(w, "Payment type not found")
	case errors.Is(err, paytype.ErrPaymentTypeNameExists):
		Conflict(w, "Payment type name already exists")
	case errors.Is(err, paytype.ErrPaymentTypeOrderTaken):
		Conflict(w, "Payment type order number already in use")
	case errors.Is(err, paytype.ErrPaymentTypeNotDeletable):
		Conflict(w, "Payment type cannot be deleted")
	case errors.Is(err, paytype.ErrPaymentTypeNameFixed):
		Conflict(w, "Payment type name cannot be changed")
	case errors.Is(err, paytype.ErrInvalidCategory):
		BadRequest(w, "Invalid payment type category", nil)
	case errors.Is(err, paytype.ErrStaffPaymentNotFound):
		NotFound(w, "Staff payment configuration not found")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrDeductionTypeNotFound):
		NotFound(w, "Deduction type not found")
	case errors.Is(err, deduction.ErrDeductionTypeNameExists):
		Conflict(w, "Deduction type name already exists")
	case errors.Is(err, deduction.ErrDeductionTypeNotDeletable):
		Conflict(w, "Built-in deduction type cannot be deleted")
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	// Tax domain errors
	case errors.Is(err, tax.ErrTaxSettingsNotFound):
		NotFound(w, "Tax settings not found")

	// Payroll run domain errors
	case errors.Is(err, payrollrun.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payrollrun.ErrRunInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, payrollrun.ErrRunExistsForPeriod):
		Conflict(w, "A payroll run already exists for this period")
	case errors.Is(err, payrollrun.ErrRunNotProcessed):
		BadRequest(w, "Payroll run has not been processed yet", nil)
	case errors.Is(err, payrollrun.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payrollrun.ErrRejectionReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)
	case errors.Is(err, payrollrun.ErrRunAlreadyApproved):
		Conflict(w, "Payroll run is already approved")
	case errors.Is(err, payrollrun.ErrNoPaymentTypes):
		BadRequest(w, "Company has no payment types configured", nil)
	case errors.Is(err, payrollrun.ErrNoDeductionTypes):
		BadRequest(w, "Company has no deduction types configured", nil)
	case errors.Is(err, payrollrun.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, payrollrun.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
