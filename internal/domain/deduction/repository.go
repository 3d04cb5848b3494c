package deduction

import "context"

type DeductionRepository interface {
	// Types
	CreateType(ctx context.Context, dt DeductionType) (DeductionType, error)
	GetTypeByID(ctx context.Context, id string, companyID string) (DeductionType, error)
	// GetTypesByCompanyID returns types ordered by order_number ascending.
	GetTypesByCompanyID(ctx context.Context, companyID string) ([]DeductionType, error)
	NextOrderNumber(ctx context.Context, companyID string) (int, error)
	UpdateType(ctx context.Context, companyID string, req UpdateDeductionTypeRequest) error
	DeleteType(ctx context.Context, id string, companyID string) error

	// Deductions
	Create(ctx context.Context, companyID string, d Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string, companyID string) (Deduction, error)
	GetByIDs(ctx context.Context, ids []string, companyID string) ([]Deduction, error)
	// GetActiveByStaffID returns active deductions with balance > 0.
	GetActiveByStaffID(ctx context.Context, staffID string, companyID string) ([]Deduction, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) (map[string][]Deduction, error)
	Update(ctx context.Context, companyID string, req UpdateDeductionRequest) error
	// UpdateBalances persists deducted-so-far and balance for a batch of
	// deductions. Called on run approval and run-deletion reversal only.
	UpdateBalances(ctx context.Context, companyID string, deductions []Deduction) error
	Delete(ctx context.Context, id string, companyID string) error
}
