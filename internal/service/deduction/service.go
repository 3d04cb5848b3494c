package deduction

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
)

type DeductionService interface {
	// Types
	CreateType(ctx context.Context, req deduction.CreateDeductionTypeRequest) (deduction.DeductionTypeResponse, error)
	ListTypes(ctx context.Context) ([]deduction.DeductionTypeResponse, error)
	UpdateType(ctx context.Context, req deduction.UpdateDeductionTypeRequest) (deduction.DeductionTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	// Deductions
	Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error)
	Get(ctx context.Context, id string) (deduction.DeductionResponse, error)
	ListByStaff(ctx context.Context, staffID string) ([]deduction.DeductionResponse, error)
	Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error)
	Delete(ctx context.Context, id string) error
}

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	staffRepo     staff.StaffRepository
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, staffRepo staff.StaffRepository) DeductionService {
	return &DeductionServiceImpl{deductionRepo: deductionRepo, staffRepo: staffRepo}
}

func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== TYPES ==========

// CreateType adds a custom deduction category. Custom categories always
// allocate after the built-ins, so the order number starts at 4.
func (s *DeductionServiceImpl) CreateType(ctx context.Context, req deduction.CreateDeductionTypeRequest) (deduction.DeductionTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	order, err := s.deductionRepo.NextOrderNumber(ctx, companyID)
	if err != nil {
		return deduction.DeductionTypeResponse{}, fmt.Errorf("failed to assign order number: %w", err)
	}
	if order < deduction.FirstCustomOrder {
		order = deduction.FirstCustomOrder
	}

	created, err := s.deductionRepo.CreateType(ctx, deduction.DeductionType{
		CompanyID:   companyID,
		Name:        req.Name,
		OrderNumber: order,
		Deletable:   true,
	})
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	return mapToTypeResponse(created), nil
}

func (s *DeductionServiceImpl) ListTypes(ctx context.Context) ([]deduction.DeductionTypeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.deductionRepo.GetTypesByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.DeductionTypeResponse, 0, len(types))
	for _, dt := range types {
		result = append(result, mapToTypeResponse(dt))
	}
	return result, nil
}

func (s *DeductionServiceImpl) UpdateType(ctx context.Context, req deduction.UpdateDeductionTypeRequest) (deduction.DeductionTypeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	current, err := s.deductionRepo.GetTypeByID(ctx, req.ID, companyID)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}
	if req.Name != nil && !current.Deletable {
		return deduction.DeductionTypeResponse{}, deduction.ErrDeductionTypeNotDeletable
	}

	if err := s.deductionRepo.UpdateType(ctx, companyID, req); err != nil {
		return deduction.DeductionTypeResponse{}, err
	}

	updated, err := s.deductionRepo.GetTypeByID(ctx, req.ID, companyID)
	if err != nil {
		return deduction.DeductionTypeResponse{}, err
	}
	return mapToTypeResponse(updated), nil
}

func (s *DeductionServiceImpl) DeleteType(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.deductionRepo.GetTypeByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if !current.Deletable {
		return deduction.ErrDeductionTypeNotDeletable
	}

	return s.deductionRepo.DeleteType(ctx, id, companyID)
}

// ========== DEDUCTIONS ==========

func (s *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, companyID); err != nil {
		return deduction.DeductionResponse{}, err
	}
	if _, err := s.deductionRepo.GetTypeByID(ctx, req.DeductionTypeID, companyID); err != nil {
		return deduction.DeductionResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return deduction.DeductionResponse{}, fmt.Errorf("invalid start date: %w", err)
	}

	d := deduction.Deduction{
		StaffID:            req.StaffID,
		DeductionTypeID:    req.DeductionTypeID,
		OriginalAmount:     req.OriginalAmount,
		MonthlyInstallment: req.MonthlyInstallment,
		DeductedSoFar:      decimal.Zero,
		StartDate:          startDate,
		Active:             true,
	}
	d.RecalculateBalance()

	created, err := s.deductionRepo.Create(ctx, companyID, d)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *DeductionServiceImpl) Get(ctx context.Context, id string) (deduction.DeductionResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	d, err := s.deductionRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return mapToResponse(d), nil
}

func (s *DeductionServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]deduction.DeductionResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	deductions, err := s.deductionRepo.GetActiveByStaffID(ctx, staffID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		result = append(result, mapToResponse(d))
	}
	return result, nil
}

func (s *DeductionServiceImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	if req.MonthlyInstallment != nil && !req.MonthlyInstallment.IsPositive() {
		return deduction.DeductionResponse{}, fmt.Errorf("monthly installment must be positive")
	}

	if err := s.deductionRepo.Update(ctx, companyID, req); err != nil {
		return deduction.DeductionResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *DeductionServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.deductionRepo.Delete(ctx, id, companyID)
}

func mapToTypeResponse(dt deduction.DeductionType) deduction.DeductionTypeResponse {
	return deduction.DeductionTypeResponse{
		ID:          dt.ID,
		CompanyID:   dt.CompanyID,
		Name:        dt.Name,
		OrderNumber: dt.OrderNumber,
		Deletable:   dt.Deletable,
	}
}

func mapToResponse(d deduction.Deduction) deduction.DeductionResponse {
	return deduction.DeductionResponse{
		ID:                 d.ID,
		StaffID:            d.StaffID,
		DeductionTypeID:    d.DeductionTypeID,
		OriginalAmount:     d.OriginalAmount,
		MonthlyInstallment: d.MonthlyInstallment,
		DeductedSoFar:      d.DeductedSoFar,
		Balance:            d.Balance,
		StartDate:          d.StartDate.Format("2006-01-02"),
		Active:             d.Active,
	}
}
