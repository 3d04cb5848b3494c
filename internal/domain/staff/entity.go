package staff

import "time"

type Staff struct {
	ID          string
	CompanyID   string
	StaffNumber string
	FirstName   string
	LastName    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
