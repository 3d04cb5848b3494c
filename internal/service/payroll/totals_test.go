package payroll

import (
	"testing"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	records := []payrollrun.EmployeeRecord{
		{
			GrossSalary:     decimal.NewFromInt(600000),
			PensionEmployee: decimal.NewFromInt(36000),
			PAYE:            decimal.NewFromInt(144000),
			CBHI:            decimal.NewFromInt(1905),
			TotalDeductions: decimal.NewFromInt(50000),
			FinalNetPay:     decimal.NewFromInt(329095),
			PaymentAmounts: map[string]decimal.Decimal{
				"pt-basic":     decimal.NewFromInt(500000),
				"pt-transport": decimal.NewFromInt(100000),
			},
			DeductionAmounts: map[string]decimal.Decimal{
				"dt-loan": decimal.NewFromInt(50000),
			},
		},
		{
			GrossSalary:     decimal.NewFromInt(300000),
			PensionEmployee: decimal.NewFromInt(18000),
			PAYE:            decimal.NewFromInt(54000),
			CBHI:            decimal.NewFromInt(1140),
			TotalDeductions: decimal.NewFromInt(20000),
			FinalNetPay:     decimal.NewFromInt(206860),
			PaymentAmounts: map[string]decimal.Decimal{
				"pt-basic": decimal.NewFromInt(300000),
			},
			DeductionAmounts: map[string]decimal.Decimal{
				"dt-loan":    decimal.NewFromInt(15000),
				"dt-advance": decimal.NewFromInt(5000),
			},
		},
	}

	totals := computeTotals(records)

	assert.True(t, decimal.NewFromInt(900000).Equal(totals.GrossSalary))
	assert.True(t, decimal.NewFromInt(54000).Equal(totals.PensionEmployee))
	assert.True(t, decimal.NewFromInt(198000).Equal(totals.PAYE))
	assert.True(t, decimal.NewFromInt(3045).Equal(totals.CBHI))
	assert.True(t, decimal.NewFromInt(70000).Equal(totals.TotalDeductions))
	assert.True(t, decimal.NewFromInt(535955).Equal(totals.FinalNetPay))

	assert.True(t, decimal.NewFromInt(800000).Equal(totals.PaymentTotals["pt-basic"]))
	assert.True(t, decimal.NewFromInt(100000).Equal(totals.PaymentTotals["pt-transport"]))
	assert.True(t, decimal.NewFromInt(65000).Equal(totals.DeductionTotals["dt-loan"]))
	assert.True(t, decimal.NewFromInt(5000).Equal(totals.DeductionTotals["dt-advance"]))
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := computeTotals(nil)

	assert.True(t, totals.GrossSalary.IsZero())
	assert.True(t, totals.FinalNetPay.IsZero())
	assert.Empty(t, totals.PaymentTotals)
	assert.Empty(t, totals.DeductionTotals)
}
