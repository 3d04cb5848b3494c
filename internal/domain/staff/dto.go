package staff

import "github.com/kanmwangi2/payroll-backend-go/internal/pkg/validator"

type CreateStaffRequest struct {
	StaffNumber string `json:"staff_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffNumber) {
		errs = append(errs, validator.ValidationError{Field: "staff_number", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID          string
	StaffNumber *string `json:"staff_number,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type StaffResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	StaffNumber string `json:"staff_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Active      bool   `json:"active"`
}
