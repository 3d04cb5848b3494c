package company

import "github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCompanyRequest - partial update; nil fields are left untouched.
type UpdateCompanyRequest struct {
	ID              string
	Name            *string `json:"name,omitempty"`
	PAYEActive      *bool   `json:"paye_active,omitempty"`
	PensionActive   *bool   `json:"pension_active,omitempty"`
	MaternityActive *bool   `json:"maternity_active,omitempty"`
	RAMAActive      *bool   `json:"rama_active,omitempty"`
	CBHIActive      *bool   `json:"cbhi_active,omitempty"`
}

type CompanyResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PAYEActive      bool   `json:"paye_active"`
	PensionActive   bool   `json:"pension_active"`
	MaternityActive bool   `json:"maternity_active"`
	RAMAActive      bool   `json:"rama_active"`
	CBHIActive      bool   `json:"cbhi_active"`
}
