package paytype

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
)

type PaymentTypeService interface {
	Create(ctx context.Context, req paytype.CreatePaymentTypeRequest) (paytype.PaymentTypeResponse, error)
	Get(ctx context.Context, id string) (paytype.PaymentTypeResponse, error)
	List(ctx context.Context) ([]paytype.PaymentTypeResponse, error)
	Update(ctx context.Context, req paytype.UpdatePaymentTypeRequest) (paytype.PaymentTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type PaymentTypeServiceImpl struct {
	payTypeRepo paytype.PaymentTypeRepository
}

func NewPaymentTypeService(payTypeRepo paytype.PaymentTypeRepository) PaymentTypeService {
	return &PaymentTypeServiceImpl{payTypeRepo: payTypeRepo}
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

// Create adds a custom payment type at the next free order number. Basic Pay
// and Transport Allowance are seeded at company creation and never recreated
// here.
func (s *PaymentTypeServiceImpl) Create(ctx context.Context, req paytype.CreatePaymentTypeRequest) (paytype.PaymentTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	order, err := s.payTypeRepo.NextOrderNumber(ctx, companyID)
	if err != nil {
		return paytype.PaymentTypeResponse{}, fmt.Errorf("failed to assign order number: %w", err)
	}

	created, err := s.payTypeRepo.CreateType(ctx, paytype.PaymentType{
		CompanyID:   companyID,
		Name:        req.Name,
		Category:    paytype.Category(req.Category),
		OrderNumber: order,
		FixedName:   false,
		Deletable:   true,
	})
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PaymentTypeServiceImpl) Get(ctx context.Context, id string) (paytype.PaymentTypeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	pt, err := s.payTypeRepo.GetTypeByID(ctx, id, companyID)
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	return mapToResponse(pt), nil
}

func (s *PaymentTypeServiceImpl) List(ctx context.Context) ([]paytype.PaymentTypeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.payTypeRepo.GetTypesByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]paytype.PaymentTypeResponse, 0, len(types))
	for _, pt := range types {
		result = append(result, mapToResponse(pt))
	}
	return result, nil
}

func (s *PaymentTypeServiceImpl) Update(ctx context.Context, req paytype.UpdatePaymentTypeRequest) (paytype.PaymentTypeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	current, err := s.payTypeRepo.GetTypeByID(ctx, req.ID, companyID)
	if err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	if req.Name != nil && current.FixedName {
		return paytype.PaymentTypeResponse{}, paytype.ErrPaymentTypeNameFixed
	}
	if req.Category != nil &&
		*req.Category != string(paytype.CategoryGross) &&
		*req.Category != string(paytype.CategoryNet) {
		return paytype.PaymentTypeResponse{}, paytype.ErrInvalidCategory
	}

	if err := s.payTypeRepo.UpdateType(ctx, companyID, req); err != nil {
		return paytype.PaymentTypeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *PaymentTypeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.payTypeRepo.GetTypeByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if !current.Deletable {
		return paytype.ErrPaymentTypeNotDeletable
	}

	return s.payTypeRepo.DeleteType(ctx, id, companyID)
}

func mapToResponse(pt paytype.PaymentType) paytype.PaymentTypeResponse {
	return paytype.PaymentTypeResponse{
		ID:          pt.ID,
		CompanyID:   pt.CompanyID,
		Name:        pt.Name,
		Category:    string(pt.Category),
		OrderNumber: pt.OrderNumber,
		FixedName:   pt.FixedName,
		Deletable:   pt.Deletable,
	}
}
