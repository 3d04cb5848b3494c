package tax

import "context"

type TaxRepository interface {
	// GetByCompanyID returns the company's settings, or
	// ErrTaxSettingsNotFound when the company has none persisted.
	GetByCompanyID(ctx context.Context, companyID string) (TaxSettings, error)
	Upsert(ctx context.Context, settings TaxSettings) (TaxSettings, error)
}
