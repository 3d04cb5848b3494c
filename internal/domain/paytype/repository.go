package paytype

import "context"

type PaymentTypeRepository interface {
	// Types
	CreateType(ctx context.Context, pt PaymentType) (PaymentType, error)
	GetTypeByID(ctx context.Context, id string, companyID string) (PaymentType, error)
	// GetTypesByCompanyID returns types ordered by order_number ascending.
	GetTypesByCompanyID(ctx context.Context, companyID string) ([]PaymentType, error)
	NextOrderNumber(ctx context.Context, companyID string) (int, error)
	UpdateType(ctx context.Context, companyID string, req UpdatePaymentTypeRequest) error
	DeleteType(ctx context.Context, id string, companyID string) error

	// Staff payment configuration
	UpsertStaffPayment(ctx context.Context, companyID string, payment StaffPayment) (StaffPayment, error)
	GetStaffPayments(ctx context.Context, staffID string, companyID string, activeOnly bool) ([]StaffPayment, error)
	GetActiveStaffPaymentsByCompanyID(ctx context.Context, companyID string) (map[string][]StaffPayment, error)
	RemoveStaffPayment(ctx context.Context, id string, companyID string) error
}
