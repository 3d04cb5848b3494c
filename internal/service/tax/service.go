package tax

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
)

type TaxService interface {
	// GetSettings returns the company's settings, falling back to the
	// statutory defaults when none are persisted.
	GetSettings(ctx context.Context) (tax.TaxSettingsResponse, error)
	UpdateSettings(ctx context.Context, req tax.UpdateTaxSettingsRequest) (tax.TaxSettingsResponse, error)
}

type TaxServiceImpl struct {
	taxRepo tax.TaxRepository
}

func NewTaxService(taxRepo tax.TaxRepository) TaxService {
	return &TaxServiceImpl{taxRepo: taxRepo}
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

func (s *TaxServiceImpl) GetSettings(ctx context.Context) (tax.TaxSettingsResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return tax.TaxSettingsResponse{}, err
	}

	settings, err := s.taxRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, tax.ErrTaxSettingsNotFound) {
			defaults := tax.DefaultTaxSettings()
			defaults.CompanyID = companyID
			return mapToResponse(defaults), nil
		}
		return tax.TaxSettingsResponse{}, err
	}

	return mapToResponse(settings), nil
}

func (s *TaxServiceImpl) UpdateSettings(ctx context.Context, req tax.UpdateTaxSettingsRequest) (tax.TaxSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return tax.TaxSettingsResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return tax.TaxSettingsResponse{}, err
	}

	current, err := s.taxRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, tax.ErrTaxSettingsNotFound) {
			return tax.TaxSettingsResponse{}, err
		}
		current = tax.DefaultTaxSettings()
		current.CompanyID = companyID
	}

	if req.Band1Limit != nil {
		current.Band1Limit = *req.Band1Limit
	}
	if req.Band2Limit != nil {
		current.Band2Limit = *req.Band2Limit
	}
	if req.Band3Limit != nil {
		current.Band3Limit = *req.Band3Limit
	}
	if req.Rate1 != nil {
		current.Rate1 = *req.Rate1
	}
	if req.Rate2 != nil {
		current.Rate2 = *req.Rate2
	}
	if req.Rate3 != nil {
		current.Rate3 = *req.Rate3
	}
	if req.Rate4 != nil {
		current.Rate4 = *req.Rate4
	}
	if req.PensionEmployeeRate != nil {
		current.PensionEmployeeRate = *req.PensionEmployeeRate
	}
	if req.PensionEmployerRate != nil {
		current.PensionEmployerRate = *req.PensionEmployerRate
	}
	if req.MaternityEmployeeRate != nil {
		current.MaternityEmployeeRate = *req.MaternityEmployeeRate
	}
	if req.MaternityEmployerRate != nil {
		current.MaternityEmployerRate = *req.MaternityEmployerRate
	}
	if req.RAMAEmployeeRate != nil {
		current.RAMAEmployeeRate = *req.RAMAEmployeeRate
	}
	if req.RAMAEmployerRate != nil {
		current.RAMAEmployerRate = *req.RAMAEmployerRate
	}
	if req.CBHIRate != nil {
		current.CBHIRate = *req.CBHIRate
	}

	updated, err := s.taxRepo.Upsert(ctx, current)
	if err != nil {
		return tax.TaxSettingsResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(s tax.TaxSettings) tax.TaxSettingsResponse {
	return tax.TaxSettingsResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,

		Band1Limit: s.Band1Limit,
		Band2Limit: s.Band2Limit,
		Band3Limit: s.Band3Limit,
		Rate1:      s.Rate1,
		Rate2:      s.Rate2,
		Rate3:      s.Rate3,
		Rate4:      s.Rate4,

		PensionEmployeeRate:   s.PensionEmployeeRate,
		PensionEmployerRate:   s.PensionEmployerRate,
		MaternityEmployeeRate: s.MaternityEmployeeRate,
		MaternityEmployerRate: s.MaternityEmployerRate,
		RAMAEmployeeRate:      s.RAMAEmployeeRate,
		RAMAEmployerRate:      s.RAMAEmployerRate,
		CBHIRate:              s.CBHIRate,
	}
}
