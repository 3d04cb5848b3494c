package staff

import "errors"

var (
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrStaffNumberExists = errors.New("staff number already exists for this company")
)
