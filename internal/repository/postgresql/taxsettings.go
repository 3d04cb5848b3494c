package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type taxRepository struct {
	db *database.DB
}

func NewTaxRepository(db *database.DB) tax.TaxRepository {
	return &taxRepository{db: db}
}

const taxSettingsColumns = `id, company_id, band1_limit, band2_limit, band3_limit,
	rate1, rate2, rate3, rate4,
	pension_employee_rate, pension_employer_rate,
	maternity_employee_rate, maternity_employer_rate,
	rama_employee_rate, rama_employer_rate, cbhi_rate,
	created_at, updated_at`

func scanTaxSettings(row pgx.Row) (tax.TaxSettings, error) {
	var s tax.TaxSettings
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Band1Limit, &s.Band2Limit, &s.Band3Limit,
		&s.Rate1, &s.Rate2, &s.Rate3, &s.Rate4,
		&s.PensionEmployeeRate, &s.PensionEmployerRate,
		&s.MaternityEmployeeRate, &s.MaternityEmployerRate,
		&s.RAMAEmployeeRate, &s.RAMAEmployerRate, &s.CBHIRate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *taxRepository) GetByCompanyID(ctx context.Context, companyID string) (tax.TaxSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taxSettingsColumns + ` FROM tax_settings WHERE company_id = $1`

	s, err := scanTaxSettings(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return tax.TaxSettings{}, tax.ErrTaxSettingsNotFound
		}
		return tax.TaxSettings{}, fmt.Errorf("failed to get tax settings: %w", err)
	}

	return s, nil
}

func (r *taxRepository) Upsert(ctx context.Context, settings tax.TaxSettings) (tax.TaxSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_settings (id, company_id, band1_limit, band2_limit, band3_limit,
			rate1, rate2, rate3, rate4,
			pension_employee_rate, pension_employer_rate,
			maternity_employee_rate, maternity_employer_rate,
			rama_employee_rate, rama_employer_rate, cbhi_rate)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (company_id) DO UPDATE SET
			band1_limit = EXCLUDED.band1_limit,
			band2_limit = EXCLUDED.band2_limit,
			band3_limit = EXCLUDED.band3_limit,
			rate1 = EXCLUDED.rate1,
			rate2 = EXCLUDED.rate2,
			rate3 = EXCLUDED.rate3,
			rate4 = EXCLUDED.rate4,
			pension_employee_rate = EXCLUDED.pension_employee_rate,
			pension_employer_rate = EXCLUDED.pension_employer_rate,
			maternity_employee_rate = EXCLUDED.maternity_employee_rate,
			maternity_employer_rate = EXCLUDED.maternity_employer_rate,
			rama_employee_rate = EXCLUDED.rama_employee_rate,
			rama_employer_rate = EXCLUDED.rama_employer_rate,
			cbhi_rate = EXCLUDED.cbhi_rate,
			updated_at = NOW()
		RETURNING ` + taxSettingsColumns

	saved, err := scanTaxSettings(q.QueryRow(ctx, query,
		settings.CompanyID, settings.Band1Limit, settings.Band2Limit, settings.Band3Limit,
		settings.Rate1, settings.Rate2, settings.Rate3, settings.Rate4,
		settings.PensionEmployeeRate, settings.PensionEmployerRate,
		settings.MaternityEmployeeRate, settings.MaternityEmployerRate,
		settings.RAMAEmployeeRate, settings.RAMAEmployerRate, settings.CBHIRate,
	))
	if err != nil {
		return tax.TaxSettings{}, fmt.Errorf("failed to upsert tax settings: %w", err)
	}

	return saved, nil
}
