package tax

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateTaxSettingsRequest struct {
	Band1Limit *decimal.Decimal `json:"band1_limit,omitempty"`
	Band2Limit *decimal.Decimal `json:"band2_limit,omitempty"`
	Band3Limit *decimal.Decimal `json:"band3_limit,omitempty"`
	Rate1      *decimal.Decimal `json:"rate1,omitempty"`
	Rate2      *decimal.Decimal `json:"rate2,omitempty"`
	Rate3      *decimal.Decimal `json:"rate3,omitempty"`
	Rate4      *decimal.Decimal `json:"rate4,omitempty"`

	PensionEmployeeRate   *decimal.Decimal `json:"pension_employee_rate,omitempty"`
	PensionEmployerRate   *decimal.Decimal `json:"pension_employer_rate,omitempty"`
	MaternityEmployeeRate *decimal.Decimal `json:"maternity_employee_rate,omitempty"`
	MaternityEmployerRate *decimal.Decimal `json:"maternity_employer_rate,omitempty"`
	RAMAEmployeeRate      *decimal.Decimal `json:"rama_employee_rate,omitempty"`
	RAMAEmployerRate      *decimal.Decimal `json:"rama_employer_rate,omitempty"`
	CBHIRate              *decimal.Decimal `json:"cbhi_rate,omitempty"`
}

func (r *UpdateTaxSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]*decimal.Decimal{
		"band1_limit":             r.Band1Limit,
		"band2_limit":             r.Band2Limit,
		"band3_limit":             r.Band3Limit,
		"rate1":                   r.Rate1,
		"rate2":                   r.Rate2,
		"rate3":                   r.Rate3,
		"rate4":                   r.Rate4,
		"pension_employee_rate":   r.PensionEmployeeRate,
		"pension_employer_rate":   r.PensionEmployerRate,
		"maternity_employee_rate": r.MaternityEmployeeRate,
		"maternity_employer_rate": r.MaternityEmployerRate,
		"rama_employee_rate":      r.RAMAEmployeeRate,
		"rama_employer_rate":      r.RAMAEmployerRate,
		"cbhi_rate":               r.CBHIRate,
	}
	for field, value := range nonNegative {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxSettingsResponse struct {
	ID        string `json:"id,omitempty"`
	CompanyID string `json:"company_id"`

	Band1Limit decimal.Decimal `json:"band1_limit"`
	Band2Limit decimal.Decimal `json:"band2_limit"`
	Band3Limit decimal.Decimal `json:"band3_limit"`
	Rate1      decimal.Decimal `json:"rate1"`
	Rate2      decimal.Decimal `json:"rate2"`
	Rate3      decimal.Decimal `json:"rate3"`
	Rate4      decimal.Decimal `json:"rate4"`

	PensionEmployeeRate   decimal.Decimal `json:"pension_employee_rate"`
	PensionEmployerRate   decimal.Decimal `json:"pension_employer_rate"`
	MaternityEmployeeRate decimal.Decimal `json:"maternity_employee_rate"`
	MaternityEmployerRate decimal.Decimal `json:"maternity_employer_rate"`
	RAMAEmployeeRate      decimal.Decimal `json:"rama_employee_rate"`
	RAMAEmployerRate      decimal.Decimal `json:"rama_employer_rate"`
	CBHIRate              decimal.Decimal `json:"cbhi_rate"`
}
