package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, company_id, staff_number, first_name, last_name, active, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var m staff.Staff
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.StaffNumber, &m.FirstName, &m.LastName,
		&m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *staffRepository) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, company_id, staff_number, first_name, last_name, active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		member.CompanyID, member.StaffNumber, member.FirstName, member.LastName, member.Active,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_staff_number") {
			return staff.Staff{}, staff.ErrStaffNumberExists
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return created, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string, companyID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND company_id = $2`

	member, err := scanStaff(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return member, nil
}

func (r *staffRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return r.list(ctx, companyID, true)
}

func (r *staffRepository) ListByCompanyID(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return r.list(ctx, companyID, false)
}

func (r *staffRepository) list(ctx context.Context, companyID string, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE company_id = $1`
	if activeOnly {
		query += ` AND active = true`
	}
	query += ` ORDER BY staff_number`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, companyID string, req staff.UpdateStaffRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET staff_number = COALESCE($3, staff_number),
			first_name = COALESCE($4, first_name),
			last_name = COALESCE($5, last_name),
			active = COALESCE($6, active),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.StaffNumber, req.FirstName, req.LastName, req.Active)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
