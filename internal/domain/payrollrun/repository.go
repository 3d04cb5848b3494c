package payrollrun

import "context"

type RunRepository interface {
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollRun, error)
	// GetActiveByCompanyID returns the company's non-approved run, or
	// ErrRunNotFound when every run is approved.
	GetActiveByCompanyID(ctx context.Context, companyID string) (PayrollRun, error)
	GetByCompanyPeriod(ctx context.Context, companyID string, month, year int) (PayrollRun, error)
	// Update persists status, employees, totals, warnings and rejection
	// reason.
	Update(ctx context.Context, run PayrollRun) (PayrollRun, error)
	Delete(ctx context.Context, id string, companyID string) error
	ListSummaries(ctx context.Context, companyID string) ([]RunSummary, error)
}
