package staff

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
)

type StaffService interface {
	Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	Get(ctx context.Context, id string) (staff.StaffResponse, error)
	List(ctx context.Context) ([]staff.StaffResponse, error)
	Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error)
	Delete(ctx context.Context, id string) error

	// Payment configuration
	UpsertPayment(ctx context.Context, req paytype.UpsertStaffPaymentRequest) (paytype.StaffPaymentResponse, error)
	ListPayments(ctx context.Context, staffID string) ([]paytype.StaffPaymentResponse, error)
	RemovePayment(ctx context.Context, id string) error
}

type StaffServiceImpl struct {
	staffRepo   staff.StaffRepository
	payTypeRepo paytype.PaymentTypeRepository
}

func NewStaffService(staffRepo staff.StaffRepository, payTypeRepo paytype.PaymentTypeRepository) StaffService {
	return &StaffServiceImpl{staffRepo: staffRepo, payTypeRepo: payTypeRepo}
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

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		CompanyID:   companyID,
		StaffNumber: req.StaffNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Active:      true,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToResponse(member), nil
}

func (s *StaffServiceImpl) List(ctx context.Context) ([]staff.StaffResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.staffRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		result = append(result, mapToResponse(m))
	}
	return result, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.Update(ctx, companyID, req); err != nil {
		return staff.StaffResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.staffRepo.Delete(ctx, id, companyID)
}

// ========== PAYMENT CONFIGURATION ==========

func (s *StaffServiceImpl) UpsertPayment(ctx context.Context, req paytype.UpsertStaffPaymentRequest) (paytype.StaffPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return paytype.StaffPaymentResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return paytype.StaffPaymentResponse{}, err
	}

	// Both sides must belong to the caller's company.
	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, companyID); err != nil {
		return paytype.StaffPaymentResponse{}, err
	}
	if _, err := s.payTypeRepo.GetTypeByID(ctx, req.PaymentTypeID, companyID); err != nil {
		return paytype.StaffPaymentResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	saved, err := s.payTypeRepo.UpsertStaffPayment(ctx, companyID, paytype.StaffPayment{
		StaffID:       req.StaffID,
		PaymentTypeID: req.PaymentTypeID,
		Amount:        req.Amount,
		Active:        active,
	})
	if err != nil {
		return paytype.StaffPaymentResponse{}, err
	}

	return paytype.StaffPaymentResponse{
		ID:            saved.ID,
		StaffID:       saved.StaffID,
		PaymentTypeID: saved.PaymentTypeID,
		Amount:        saved.Amount,
		Active:        saved.Active,
	}, nil
}

func (s *StaffServiceImpl) ListPayments(ctx context.Context, staffID string) ([]paytype.StaffPaymentResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.payTypeRepo.GetStaffPayments(ctx, staffID, companyID, false)
	if err != nil {
		return nil, err
	}

	result := make([]paytype.StaffPaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, paytype.StaffPaymentResponse{
			ID:            p.ID,
			StaffID:       p.StaffID,
			PaymentTypeID: p.PaymentTypeID,
			Amount:        p.Amount,
			Active:        p.Active,
		})
	}
	return result, nil
}

func (s *StaffServiceImpl) RemovePayment(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payTypeRepo.RemoveStaffPayment(ctx, id, companyID)
}

func mapToResponse(m staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		StaffNumber: m.StaffNumber,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Active:      m.Active,
	}
}
