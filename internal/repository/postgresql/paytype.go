package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
)

type paymentTypeRepository struct {
	db *database.DB
}

func NewPaymentTypeRepository(db *database.DB) paytype.PaymentTypeRepository {
	return &paymentTypeRepository{db: db}
}

// ========== TYPES ==========

const paymentTypeColumns = `id, company_id, name, category, order_number, fixed_name, deletable, created_at, updated_at`

func scanPaymentType(row pgx.Row) (paytype.PaymentType, error) {
	var pt paytype.PaymentType
	err := row.Scan(
		&pt.ID, &pt.CompanyID, &pt.Name, &pt.Category, &pt.OrderNumber,
		&pt.FixedName, &pt.Deletable, &pt.CreatedAt, &pt.UpdatedAt,
	)
	return pt, err
}

func (r *paymentTypeRepository) CreateType(ctx context.Context, pt paytype.PaymentType) (paytype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_types (id, company_id, name, category, order_number, fixed_name, deletable)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentTypeColumns

	created, err := scanPaymentType(q.QueryRow(ctx, query,
		pt.CompanyID, pt.Name, pt.Category, pt.OrderNumber, pt.FixedName, pt.Deletable,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payment_type_name") {
			return paytype.PaymentType{}, paytype.ErrPaymentTypeNameExists
		}
		if strings.Contains(err.Error(), "uk_payment_type_order") {
			return paytype.PaymentType{}, paytype.ErrPaymentTypeOrderTaken
		}
		return paytype.PaymentType{}, fmt.Errorf("failed to create payment type: %w", err)
	}

	return created, nil
}

func (r *paymentTypeRepository) GetTypeByID(ctx context.Context, id string, companyID string) (paytype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentTypeColumns + ` FROM payment_types WHERE id = $1 AND company_id = $2`

	pt, err := scanPaymentType(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return paytype.PaymentType{}, paytype.ErrPaymentTypeNotFound
		}
		return paytype.PaymentType{}, fmt.Errorf("failed to get payment type: %w", err)
	}

	return pt, nil
}

func (r *paymentTypeRepository) GetTypesByCompanyID(ctx context.Context, companyID string) ([]paytype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentTypeColumns + ` FROM payment_types WHERE company_id = $1 ORDER BY order_number`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}
	defer rows.Close()

	var types []paytype.PaymentType
	for rows.Next() {
		pt, err := scanPaymentType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment type: %w", err)
		}
		types = append(types, pt)
	}

	return types, rows.Err()
}

func (r *paymentTypeRepository) NextOrderNumber(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_number), 0) + 1 FROM payment_types WHERE company_id = $1`,
		companyID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next order number: %w", err)
	}

	return next, nil
}

func (r *paymentTypeRepository) UpdateType(ctx context.Context, companyID string, req paytype.UpdatePaymentTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_types
		SET name = COALESCE($3, name),
			category = COALESCE($4, category),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.Name, req.Category)
	if err != nil {
		return fmt.Errorf("failed to update payment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return paytype.ErrPaymentTypeNotFound
	}

	return nil
}

func (r *paymentTypeRepository) DeleteType(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM payment_types WHERE id = $1 AND company_id = $2 AND deletable = true`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete payment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return paytype.ErrPaymentTypeNotDeletable
	}

	return nil
}

// ========== STAFF PAYMENTS ==========

const staffPaymentColumns = `id, staff_id, payment_type_id, amount, active, created_at, updated_at`

func scanStaffPayment(row pgx.Row) (paytype.StaffPayment, error) {
	var sp paytype.StaffPayment
	err := row.Scan(
		&sp.ID, &sp.StaffID, &sp.PaymentTypeID, &sp.Amount, &sp.Active,
		&sp.CreatedAt, &sp.UpdatedAt,
	)
	return sp, err
}

func (r *paymentTypeRepository) UpsertStaffPayment(ctx context.Context, companyID string, payment paytype.StaffPayment) (paytype.StaffPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_payments (id, staff_id, payment_type_id, amount, active)
		SELECT gen_random_uuid(), s.id, pt.id, $3, $4
		FROM staff s
		JOIN payment_types pt ON pt.id = $2 AND pt.company_id = s.company_id
		WHERE s.id = $1 AND s.company_id = $5
		ON CONFLICT (staff_id, payment_type_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING ` + staffPaymentColumns

	saved, err := scanStaffPayment(q.QueryRow(ctx, query,
		payment.StaffID, payment.PaymentTypeID, payment.Amount, payment.Active, companyID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return paytype.StaffPayment{}, paytype.ErrStaffPaymentNotFound
		}
		return paytype.StaffPayment{}, fmt.Errorf("failed to upsert staff payment: %w", err)
	}

	return saved, nil
}

func (r *paymentTypeRepository) GetStaffPayments(ctx context.Context, staffID string, companyID string, activeOnly bool) ([]paytype.StaffPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sp.id, sp.staff_id, sp.payment_type_id, sp.amount, sp.active, sp.created_at, sp.updated_at
		FROM staff_payments sp
		JOIN staff s ON s.id = sp.staff_id
		WHERE sp.staff_id = $1 AND s.company_id = $2
	`
	if activeOnly {
		query += ` AND sp.active = true`
	}

	rows, err := q.Query(ctx, query, staffID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff payments: %w", err)
	}
	defer rows.Close()

	var payments []paytype.StaffPayment
	for rows.Next() {
		sp, err := scanStaffPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff payment: %w", err)
		}
		payments = append(payments, sp)
	}

	return payments, rows.Err()
}

func (r *paymentTypeRepository) GetActiveStaffPaymentsByCompanyID(ctx context.Context, companyID string) (map[string][]paytype.StaffPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sp.id, sp.staff_id, sp.payment_type_id, sp.amount, sp.active, sp.created_at, sp.updated_at
		FROM staff_payments sp
		JOIN staff s ON s.id = sp.staff_id
		WHERE s.company_id = $1 AND sp.active = true
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company staff payments: %w", err)
	}
	defer rows.Close()

	payments := make(map[string][]paytype.StaffPayment)
	for rows.Next() {
		sp, err := scanStaffPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff payment: %w", err)
		}
		payments[sp.StaffID] = append(payments[sp.StaffID], sp)
	}

	return payments, rows.Err()
}

func (r *paymentTypeRepository) RemoveStaffPayment(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM staff_payments sp
		USING staff s
		WHERE sp.id = $1 AND sp.staff_id = s.id AND s.company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to remove staff payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return paytype.ErrStaffPaymentNotFound
	}

	return nil
}
