package paytype

import "errors"

var (
	ErrPaymentTypeNotFound     = errors.New("payment type not found")
	ErrPaymentTypeNameExists   = errors.New("payment type name already exists")
	ErrPaymentTypeOrderTaken   = errors.New("payment type order number already in use")
	ErrPaymentTypeNotDeletable = errors.New("payment type cannot be deleted")
	ErrPaymentTypeNameFixed    = errors.New("payment type name cannot be changed")
	ErrInvalidCategory         = errors.New("invalid payment type category")
	ErrStaffPaymentNotFound    = errors.New("staff payment configuration not found")
)
