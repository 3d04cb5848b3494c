package company

import "time"

// Company - Tenant record. The *Active booleans are the statutory exemption
// toggles: when one is false the matching contribution is zeroed for every
// employee of the company.
type Company struct {
	ID              string
	Name            string
	PAYEActive      bool
	PensionActive   bool
	MaternityActive bool
	RAMAActive      bool
	CBHIActive      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
