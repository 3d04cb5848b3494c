package company

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/fixtures"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
	"github.com/kanmwangi2/payroll-backend-go/internal/repository/postgresql"
)

type CompanyService interface {
	Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error)
	GetMine(ctx context.Context) (company.CompanyResponse, error)
	Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error)
}

type CompanyServiceImpl struct {
	db            *database.DB
	companyRepo   company.CompanyRepository
	payTypeRepo   paytype.PaymentTypeRepository
	deductionRepo deduction.DeductionRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	payTypeRepo paytype.PaymentTypeRepository,
	deductionRepo deduction.DeductionRepository,
) CompanyService {
	return &CompanyServiceImpl{
		db:            db,
		companyRepo:   companyRepo,
		payTypeRepo:   payTypeRepo,
		deductionRepo: deductionRepo,
	}
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

// Create registers a company with all exemption flags on and seeds the
// mandatory payment and deduction types in the same transaction.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	newCompany := company.Company{
		Name:            req.Name,
		PAYEActive:      true,
		PensionActive:   true,
		MaternityActive: true,
		RAMAActive:      true,
		CBHIActive:      true,
	}

	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.companyRepo.Create(txCtx, newCompany)
		if err != nil {
			return err
		}

		for _, pt := range fixtures.GetDefaultPaymentTypes(created.ID) {
			if _, err := s.payTypeRepo.CreateType(txCtx, pt); err != nil {
				return fmt.Errorf("failed to seed payment type %q: %w", pt.Name, err)
			}
		}
		for _, dt := range fixtures.GetDefaultDeductionTypes(created.ID) {
			if _, err := s.deductionRepo.CreateType(txCtx, dt); err != nil {
				return fmt.Errorf("failed to seed deduction type %q: %w", dt.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *CompanyServiceImpl) GetMine(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	found, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	current, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.PAYEActive != nil {
		current.PAYEActive = *req.PAYEActive
	}
	if req.PensionActive != nil {
		current.PensionActive = *req.PensionActive
	}
	if req.MaternityActive != nil {
		current.MaternityActive = *req.MaternityActive
	}
	if req.RAMAActive != nil {
		current.RAMAActive = *req.RAMAActive
	}
	if req.CBHIActive != nil {
		current.CBHIActive = *req.CBHIActive
	}

	updated, err := s.companyRepo.Update(ctx, current)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		PAYEActive:      c.PAYEActive,
		PensionActive:   c.PensionActive,
		MaternityActive: c.MaternityActive,
		RAMAActive:      c.RAMAActive,
		CBHIActive:      c.CBHIActive,
	}
}
