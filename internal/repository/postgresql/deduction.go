package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

// ========== TYPES ==========

const deductionTypeColumns = `id, company_id, name, order_number, deletable, created_at, updated_at`

func scanDeductionType(row pgx.Row) (deduction.DeductionType, error) {
	var dt deduction.DeductionType
	err := row.Scan(
		&dt.ID, &dt.CompanyID, &dt.Name, &dt.OrderNumber, &dt.Deletable,
		&dt.CreatedAt, &dt.UpdatedAt,
	)
	return dt, err
}

func (r *deductionRepository) CreateType(ctx context.Context, dt deduction.DeductionType) (deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_types (id, company_id, name, order_number, deletable)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING ` + deductionTypeColumns

	created, err := scanDeductionType(q.QueryRow(ctx, query,
		dt.CompanyID, dt.Name, dt.OrderNumber, dt.Deletable,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_deduction_type_name") {
			return deduction.DeductionType{}, deduction.ErrDeductionTypeNameExists
		}
		return deduction.DeductionType{}, fmt.Errorf("failed to create deduction type: %w", err)
	}

	return created, nil
}

func (r *deductionRepository) GetTypeByID(ctx context.Context, id string, companyID string) (deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionTypeColumns + ` FROM deduction_types WHERE id = $1 AND company_id = $2`

	dt, err := scanDeductionType(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.DeductionType{}, deduction.ErrDeductionTypeNotFound
		}
		return deduction.DeductionType{}, fmt.Errorf("failed to get deduction type: %w", err)
	}

	return dt, nil
}

func (r *deductionRepository) GetTypesByCompanyID(ctx context.Context, companyID string) ([]deduction.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionTypeColumns + ` FROM deduction_types WHERE company_id = $1 ORDER BY order_number`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction types: %w", err)
	}
	defer rows.Close()

	var types []deduction.DeductionType
	for rows.Next() {
		dt, err := scanDeductionType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction type: %w", err)
		}
		types = append(types, dt)
	}

	return types, rows.Err()
}

func (r *deductionRepository) NextOrderNumber(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_number), 0) + 1 FROM deduction_types WHERE company_id = $1`,
		companyID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next order number: %w", err)
	}

	return next, nil
}

func (r *deductionRepository) UpdateType(ctx context.Context, companyID string, req deduction.UpdateDeductionTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_types
		SET name = COALESCE($3, name), updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.Name)
	if err != nil {
		return fmt.Errorf("failed to update deduction type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionTypeNotFound
	}

	return nil
}

func (r *deductionRepository) DeleteType(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM deduction_types WHERE id = $1 AND company_id = $2 AND deletable = true`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete deduction type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionTypeNotDeletable
	}

	return nil
}

// ========== DEDUCTIONS ==========

const deductionColumns = `d.id, d.staff_id, d.deduction_type_id, d.original_amount, d.monthly_installment,
	d.deducted_so_far, d.balance, d.start_date, d.active, d.created_at, d.updated_at`

func scanDeduction(row pgx.Row) (deduction.Deduction, error) {
	var d deduction.Deduction
	err := row.Scan(
		&d.ID, &d.StaffID, &d.DeductionTypeID, &d.OriginalAmount, &d.MonthlyInstallment,
		&d.DeductedSoFar, &d.Balance, &d.StartDate, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *deductionRepository) Create(ctx context.Context, companyID string, d deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (id, staff_id, deduction_type_id, original_amount, monthly_installment,
			deducted_so_far, balance, start_date, active)
		SELECT gen_random_uuid(), s.id, $2, $3, $4, $5, $6, $7, $8
		FROM staff s
		WHERE s.id = $1 AND s.company_id = $9
		RETURNING id, staff_id, deduction_type_id, original_amount, monthly_installment,
			deducted_so_far, balance, start_date, active, created_at, updated_at
	`

	created, err := scanDeduction(q.QueryRow(ctx, query,
		d.StaffID, d.DeductionTypeID, d.OriginalAmount, d.MonthlyInstallment,
		d.DeductedSoFar, d.Balance, d.StartDate, d.Active, companyID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return created, nil
}

func (r *deductionRepository) GetByID(ctx context.Context, id string, companyID string) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		JOIN staff s ON s.id = d.staff_id
		WHERE d.id = $1 AND s.company_id = $2
	`

	d, err := scanDeduction(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) GetByIDs(ctx context.Context, ids []string, companyID string) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		JOIN staff s ON s.id = d.staff_id
		WHERE d.id = ANY($1) AND s.company_id = $2
	`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

func (r *deductionRepository) GetActiveByStaffID(ctx context.Context, staffID string, companyID string) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		JOIN staff s ON s.id = d.staff_id
		WHERE d.staff_id = $1 AND s.company_id = $2 AND d.active = true AND d.balance > 0
		ORDER BY d.start_date
	`

	rows, err := q.Query(ctx, query, staffID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

func (r *deductionRepository) GetActiveByCompanyID(ctx context.Context, companyID string) (map[string][]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		JOIN staff s ON s.id = d.staff_id
		WHERE s.company_id = $1 AND d.active = true AND d.balance > 0
		ORDER BY d.start_date
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company deductions: %w", err)
	}
	defer rows.Close()

	deductions := make(map[string][]deduction.Deduction)
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions[d.StaffID] = append(deductions[d.StaffID], d)
	}

	return deductions, rows.Err()
}

func (r *deductionRepository) Update(ctx context.Context, companyID string, req deduction.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deductions d
		SET monthly_installment = COALESCE($3, d.monthly_installment),
			active = COALESCE($4, d.active),
			updated_at = NOW()
		FROM staff s
		WHERE d.id = $1 AND d.staff_id = s.id AND s.company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.MonthlyInstallment, req.Active)
	if err != nil {
		return fmt.Errorf("failed to update deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}

	return nil
}

func (r *deductionRepository) UpdateBalances(ctx context.Context, companyID string, deductions []deduction.Deduction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deductions d
		SET deducted_so_far = $3, balance = $4, updated_at = NOW()
		FROM staff s
		WHERE d.id = $1 AND d.staff_id = s.id AND s.company_id = $2
	`

	for _, d := range deductions {
		tag, err := q.Exec(ctx, query, d.ID, companyID, d.DeductedSoFar, d.Balance)
		if err != nil {
			return fmt.Errorf("failed to update balance for deduction %s: %w", d.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("deduction %s: %w", d.ID, deduction.ErrDeductionNotFound)
		}
	}

	return nil
}

func (r *deductionRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM deductions d
		USING staff s
		WHERE d.id = $1 AND d.staff_id = s.id AND s.company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}

	return nil
}
