package fixtures

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
)

// ==========================================
// DEFAULT PAYMENT TYPES
// ==========================================

// GetDefaultPaymentTypes returns the two mandatory payment type definitions
// seeded for every new company: Basic Pay at order 1 and Transport Allowance
// at order 2. Both are fixed-name and non-deletable.
func GetDefaultPaymentTypes(companyID string) []paytype.PaymentType {
	return []paytype.PaymentType{
		{
			CompanyID:   companyID,
			Name:        paytype.NameBasicPay,
			Category:    paytype.CategoryGross,
			OrderNumber: paytype.OrderBasicPay,
			FixedName:   true,
			Deletable:   false,
		},
		{
			CompanyID:   companyID,
			Name:        paytype.NameTransportAllowance,
			Category:    paytype.CategoryGross,
			OrderNumber: paytype.OrderTransportAllowance,
			FixedName:   true,
			Deletable:   false,
		},
	}
}

// ==========================================
// DEFAULT DEDUCTION TYPES
// ==========================================

// GetDefaultDeductionTypes returns the three built-in deduction categories
// seeded for every new company, in allocation order.
func GetDefaultDeductionTypes(companyID string) []deduction.DeductionType {
	return []deduction.DeductionType{
		{CompanyID: companyID, Name: deduction.NameAdvance, OrderNumber: deduction.OrderAdvance, Deletable: false},
		{CompanyID: companyID, Name: deduction.NameCharge, OrderNumber: deduction.OrderCharge, Deletable: false},
		{CompanyID: companyID, Name: deduction.NameLoan, OrderNumber: deduction.OrderLoan, Deletable: false},
	}
}
