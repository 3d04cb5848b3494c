package payroll

import (
	"testing"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func allActiveCompany() company.Company {
	return company.Company{
		ID:              "company-1",
		Name:            "Test Co",
		PAYEActive:      true,
		PensionActive:   true,
		MaternityActive: true,
		RAMAActive:      true,
		CBHIActive:      true,
	}
}

func allExemptCompany() company.Company {
	return company.Company{ID: "company-1", Name: "Exempt Co"}
}

func TestBreakdownFullStatutorySplit(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allActiveCompany())

	gross := decimal.NewFromInt(600000)
	transport := decimal.NewFromInt(100000)
	basic := decimal.NewFromInt(500000)

	b := rates.Breakdown(gross, transport, basic)

	// Pension on total gross: 6% / 8%
	assert.True(t, decimal.NewFromInt(36000).Equal(b.PensionEmployee), "pension employee: %s", b.PensionEmployee)
	assert.True(t, decimal.NewFromInt(48000).Equal(b.PensionEmployer), "pension employer: %s", b.PensionEmployer)

	// Maternity on gross minus transport: 0.3% of 500000
	assert.True(t, decimal.NewFromInt(1500).Equal(b.MaternityEmployee), "maternity employee: %s", b.MaternityEmployee)
	assert.True(t, decimal.NewFromInt(1500).Equal(b.MaternityEmployer), "maternity employer: %s", b.MaternityEmployer)

	// RAMA on basic pay only: 7.5% of 500000
	assert.True(t, decimal.NewFromInt(37500).Equal(b.RAMAEmployee), "rama employee: %s", b.RAMAEmployee)
	assert.True(t, decimal.NewFromInt(37500).Equal(b.RAMAEmployer), "rama employer: %s", b.RAMAEmployer)

	assert.True(t, decimal.NewFromInt(75000).Equal(b.EmployeeRSSB), "employee rssb: %s", b.EmployeeRSSB)
	assert.True(t, decimal.NewFromInt(87000).Equal(b.EmployerRSSB), "employer rssb: %s", b.EmployerRSSB)

	assert.True(t, decimal.NewFromInt(144000).Equal(b.PAYE), "paye: %s", b.PAYE)

	// 600000 - 75000 - 144000
	assert.True(t, decimal.NewFromInt(381000).Equal(b.NetBeforeCBHI), "net before cbhi: %s", b.NetBeforeCBHI)
	// 0.5% of 381000
	assert.True(t, decimal.NewFromInt(1905).Equal(b.CBHI), "cbhi: %s", b.CBHI)
	assert.True(t, decimal.NewFromInt(379095).Equal(b.NetAfterCBHI), "net after cbhi: %s", b.NetAfterCBHI)
}

func TestBreakdownMaternityBaseNeverNegative(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allActiveCompany())

	// Transport above gross can only come from unusual configurations; the
	// maternity base still floors at zero.
	b := rates.Breakdown(decimal.NewFromInt(50000), decimal.NewFromInt(80000), decimal.Zero)
	assert.True(t, b.MaternityEmployee.IsZero())
	assert.True(t, b.MaternityEmployer.IsZero())
}

func TestNewEffectiveRatesExemptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*company.Company)
		check  func(t *testing.T, b StatutoryBreakdown)
	}{
		{
			name:   "pension inactive",
			mutate: func(c *company.Company) { c.PensionActive = false },
			check: func(t *testing.T, b StatutoryBreakdown) {
				assert.True(t, b.PensionEmployee.IsZero())
				assert.True(t, b.PensionEmployer.IsZero())
			},
		},
		{
			name:   "maternity inactive",
			mutate: func(c *company.Company) { c.MaternityActive = false },
			check: func(t *testing.T, b StatutoryBreakdown) {
				assert.True(t, b.MaternityEmployee.IsZero())
				assert.True(t, b.MaternityEmployer.IsZero())
			},
		},
		{
			name:   "rama inactive",
			mutate: func(c *company.Company) { c.RAMAActive = false },
			check: func(t *testing.T, b StatutoryBreakdown) {
				assert.True(t, b.RAMAEmployee.IsZero())
				assert.True(t, b.RAMAEmployer.IsZero())
			},
		},
		{
			name:   "cbhi inactive",
			mutate: func(c *company.Company) { c.CBHIActive = false },
			check: func(t *testing.T, b StatutoryBreakdown) {
				assert.True(t, b.CBHI.IsZero())
				assert.True(t, b.NetBeforeCBHI.Equal(b.NetAfterCBHI))
			},
		},
		{
			name:   "paye inactive",
			mutate: func(c *company.Company) { c.PAYEActive = false },
			check: func(t *testing.T, b StatutoryBreakdown) {
				assert.True(t, b.PAYE.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := allActiveCompany()
			tt.mutate(&c)
			rates := NewEffectiveRates(tax.DefaultTaxSettings(), c)
			b := rates.Breakdown(decimal.NewFromInt(600000), decimal.NewFromInt(100000), decimal.NewFromInt(500000))
			tt.check(t, b)
		})
	}
}

func TestNewEffectiveRatesAllExempt(t *testing.T) {
	rates := NewEffectiveRates(tax.DefaultTaxSettings(), allExemptCompany())

	gross := decimal.NewFromInt(600000)
	b := rates.Breakdown(gross, decimal.NewFromInt(100000), decimal.NewFromInt(500000))

	assert.True(t, b.EmployeeRSSB.IsZero())
	assert.True(t, b.EmployerRSSB.IsZero())
	assert.True(t, b.PAYE.IsZero())
	assert.True(t, b.CBHI.IsZero())
	assert.True(t, gross.Equal(b.NetAfterCBHI))
}
