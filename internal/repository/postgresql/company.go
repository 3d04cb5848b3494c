package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, name, paye_active, pension_active, maternity_active, rama_active, cbhi_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, name, paye_active, pension_active, maternity_active, rama_active, cbhi_active, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query,
		c.Name, c.PAYEActive, c.PensionActive, c.MaternityActive, c.RAMAActive, c.CBHIActive,
	).Scan(
		&created.ID, &created.Name, &created.PAYEActive, &created.PensionActive,
		&created.MaternityActive, &created.RAMAActive, &created.CBHIActive,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_company_name") {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, paye_active, pension_active, maternity_active, rama_active, cbhi_active, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.PAYEActive, &c.PensionActive,
		&c.MaternityActive, &c.RAMAActive, &c.CBHIActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, paye_active, pension_active, maternity_active, rama_active, cbhi_active, created_at, updated_at
		FROM companies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.PAYEActive, &c.PensionActive,
			&c.MaternityActive, &c.RAMAActive, &c.CBHIActive,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $2, paye_active = $3, pension_active = $4, maternity_active = $5,
			rama_active = $6, cbhi_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, paye_active, pension_active, maternity_active, rama_active, cbhi_active, created_at, updated_at
	`

	var updated company.Company
	err := q.QueryRow(ctx, query,
		c.ID, c.Name, c.PAYEActive, c.PensionActive, c.MaternityActive, c.RAMAActive, c.CBHIActive,
	).Scan(
		&updated.ID, &updated.Name, &updated.PAYEActive, &updated.PensionActive,
		&updated.MaternityActive, &updated.RAMAActive, &updated.CBHIActive,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return updated, nil
}
