package staff

import "context"

// StaffRepository - all methods take companyID to prevent cross-company access.
type StaffRepository interface {
	Create(ctx context.Context, member Staff) (Staff, error)
	GetByID(ctx context.Context, id string, companyID string) (Staff, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Staff, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Staff, error)
	Update(ctx context.Context, companyID string, req UpdateStaffRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}
