package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type runRepository struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payrollrun.RunRepository {
	return &runRepository{db: db}
}

const runColumns = `id, period_code, company_id, month, year, status,
	employees, totals, rejection_reason, warnings, created_at, updated_at`

// Computed results are stored as JSONB documents. decimal.Decimal marshals to
// a JSON number string, so amounts round-trip without precision loss.
func scanRun(row pgx.Row) (payrollrun.PayrollRun, error) {
	var run payrollrun.PayrollRun
	var employees, totals, warnings []byte

	err := row.Scan(
		&run.ID, &run.PeriodCode, &run.CompanyID, &run.Month, &run.Year, &run.Status,
		&employees, &totals, &run.RejectionReason, &warnings,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return payrollrun.PayrollRun{}, err
	}

	if len(employees) > 0 {
		if err := json.Unmarshal(employees, &run.Employees); err != nil {
			return payrollrun.PayrollRun{}, fmt.Errorf("failed to decode employees: %w", err)
		}
	}
	if len(totals) > 0 {
		if err := json.Unmarshal(totals, &run.Totals); err != nil {
			return payrollrun.PayrollRun{}, fmt.Errorf("failed to decode totals: %w", err)
		}
	}
	if len(warnings) > 0 {
		if err := json.Unmarshal(warnings, &run.Warnings); err != nil {
			return payrollrun.PayrollRun{}, fmt.Errorf("failed to decode warnings: %w", err)
		}
	}

	return run, nil
}

func encodeRun(run payrollrun.PayrollRun) (employees, totals, warnings []byte, err error) {
	if employees, err = json.Marshal(run.Employees); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode employees: %w", err)
	}
	if totals, err = json.Marshal(run.Totals); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode totals: %w", err)
	}
	if warnings, err = json.Marshal(run.Warnings); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode warnings: %w", err)
	}
	return employees, totals, warnings, nil
}

func (r *runRepository) Create(ctx context.Context, run payrollrun.PayrollRun) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	employees, totals, warnings, err := encodeRun(run)
	if err != nil {
		return payrollrun.PayrollRun{}, err
	}

	summary := run.Summarize()

	query := `
		INSERT INTO payroll_runs (id, period_code, company_id, month, year, status,
			employees, totals, rejection_reason, warnings,
			employee_count, total_gross, total_deductions, total_net)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query,
		run.ID, run.PeriodCode, run.CompanyID, run.Month, run.Year, run.Status,
		employees, totals, run.RejectionReason, warnings,
		summary.EmployeeCount, summary.TotalGross, summary.TotalDeductions, summary.TotalNet,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_run_period") {
			return payrollrun.PayrollRun{}, payrollrun.ErrRunExistsForPeriod
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *runRepository) GetByID(ctx context.Context, id string, companyID string) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1 AND company_id = $2`

	run, err := scanRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *runRepository) GetActiveByCompanyID(ctx context.Context, companyID string) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE company_id = $1 AND status != 'approved'
		ORDER BY created_at DESC
		LIMIT 1
	`

	run, err := scanRun(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to get active payroll run: %w", err)
	}

	return run, nil
}

func (r *runRepository) GetByCompanyPeriod(ctx context.Context, companyID string, month, year int) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE company_id = $1 AND month = $2 AND year = $3`

	run, err := scanRun(q.QueryRow(ctx, query, companyID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to get payroll run for period: %w", err)
	}

	return run, nil
}

func (r *runRepository) Update(ctx context.Context, run payrollrun.PayrollRun) (payrollrun.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	employees, totals, warnings, err := encodeRun(run)
	if err != nil {
		return payrollrun.PayrollRun{}, err
	}

	summary := run.Summarize()

	query := `
		UPDATE payroll_runs
		SET status = $3, employees = $4, totals = $5, rejection_reason = $6, warnings = $7,
			employee_count = $8, total_gross = $9, total_deductions = $10, total_net = $11,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING ` + runColumns

	updated, err := scanRun(q.QueryRow(ctx, query,
		run.ID, run.CompanyID, run.Status, employees, totals, run.RejectionReason, warnings,
		summary.EmployeeCount, summary.TotalGross, summary.TotalDeductions, summary.TotalNet,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
		}
		return payrollrun.PayrollRun{}, fmt.Errorf("failed to update payroll run: %w", err)
	}

	return updated, nil
}

func (r *runRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_runs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrollrun.ErrRunNotFound
	}

	return nil
}

func (r *runRepository) ListSummaries(ctx context.Context, companyID string) ([]payrollrun.RunSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_code, company_id, month, year, status,
			employee_count, total_gross, total_deductions, total_net
		FROM payroll_runs
		WHERE company_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var summaries []payrollrun.RunSummary
	for rows.Next() {
		var s payrollrun.RunSummary
		if err := rows.Scan(
			&s.RunID, &s.PeriodCode, &s.CompanyID, &s.Month, &s.Year, &s.Status,
			&s.EmployeeCount, &s.TotalGross, &s.TotalDeductions, &s.TotalNet,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
