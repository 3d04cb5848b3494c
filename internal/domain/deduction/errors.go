package deduction

import "errors"

var (
	ErrDeductionTypeNotFound     = errors.New("deduction type not found")
	ErrDeductionTypeNameExists   = errors.New("deduction type name already exists")
	ErrDeductionTypeNotDeletable = errors.New("built-in deduction type cannot be deleted")
	ErrDeductionNotFound         = errors.New("deduction not found")
)
