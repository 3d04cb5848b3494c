package paytype

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category enum
type Category string

const (
	// CategoryGross - the configured amount is a literal gross earning.
	CategoryGross Category = "gross"
	// CategoryNet - the configured amount is a target take-home value; the
	// engine grosses it up during processing.
	CategoryNet Category = "net"
)

// Reserved processing orders. Every company has exactly one Basic Pay
// definition at order 1 and one Transport Allowance definition at order 2;
// both are fixed-name and non-deletable.
const (
	OrderBasicPay           = 1
	OrderTransportAllowance = 2
)

const (
	NameBasicPay           = "Basic Pay"
	NameTransportAllowance = "Transport Allowance"
)

// PaymentType - Master payment type definition. OrderNumber is unique per
// company and drives processing order.
type PaymentType struct {
	ID          string
	CompanyID   string
	Name        string
	Category    Category
	OrderNumber int
	FixedName   bool
	Deletable   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p PaymentType) IsBasicPay() bool {
	return p.OrderNumber == OrderBasicPay
}

func (p PaymentType) IsTransportAllowance() bool {
	return p.OrderNumber == OrderTransportAllowance
}

// StaffPayment - configured amount for one staff member and one payment type.
type StaffPayment struct {
	ID            string
	StaffID       string
	PaymentTypeID string
	Amount        decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
