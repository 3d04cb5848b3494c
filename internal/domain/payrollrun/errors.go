package payrollrun

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRunNotFound             = errors.New("payroll run not found")
	ErrRunInProgress           = errors.New("an existing run for this company is not yet approved")
	ErrRunExistsForPeriod      = errors.New("a payroll run already exists for this period")
	ErrRunNotProcessed         = errors.New("payroll run has no employee records yet")
	ErrInvalidTransition       = errors.New("invalid payroll run status transition")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrRunAlreadyApproved      = errors.New("payroll run is already approved")

	// Configuration errors - fatal before any processing begins.
	ErrNoPaymentTypes   = errors.New("company has no payment types configured")
	ErrNoDeductionTypes = errors.New("company has no deduction types configured")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
)

// ReconciliationError reports a partial failure while writing deduction
// balances after a run was approved. The approval itself succeeded; the
// caller should retry the balance updates for FailedDeductionIDs.
type ReconciliationError struct {
	RunID              string
	FailedDeductionIDs []string
	Err                error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("run %s approved but deduction balance reconciliation failed for [%s]: %v",
		e.RunID, strings.Join(e.FailedDeductionIDs, ", "), e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
