package payroll

import (
	"testing"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePAYE(t *testing.T) {
	settings := tax.DefaultTaxSettings()

	tests := []struct {
		name     string
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero gross", decimal.Zero, decimal.Zero},
		{"negative gross", decimal.NewFromInt(-5000), decimal.Zero},
		{"within first band", decimal.NewFromInt(50000), decimal.Zero},
		{"exactly first band limit", decimal.NewFromInt(60000), decimal.Zero},
		// (80000-60000) * 0.10
		{"within second band", decimal.NewFromInt(80000), decimal.NewFromInt(2000)},
		// 40000*0.10
		{"exactly second band limit", decimal.NewFromInt(100000), decimal.NewFromInt(4000)},
		// 4000 + (150000-100000)*0.20
		{"within third band", decimal.NewFromInt(150000), decimal.NewFromInt(14000)},
		// 4000 + 100000*0.20
		{"exactly third band limit", decimal.NewFromInt(200000), decimal.NewFromInt(24000)},
		// 24000 + (500000-200000)*0.30
		{"above third band", decimal.NewFromInt(500000), decimal.NewFromInt(114000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePAYE(tt.gross, settings, true)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCalculatePAYEExemptCompany(t *testing.T) {
	settings := tax.DefaultTaxSettings()

	got := CalculatePAYE(decimal.NewFromInt(500000), settings, false)
	assert.True(t, got.IsZero())
}

func TestCalculatePAYEMonotonic(t *testing.T) {
	settings := tax.DefaultTaxSettings()

	prev := decimal.Zero
	for gross := int64(0); gross <= 400000; gross += 10000 {
		paye := CalculatePAYE(decimal.NewFromInt(gross), settings, true)
		assert.True(t, paye.GreaterThanOrEqual(prev),
			"PAYE decreased at gross %d: %s < %s", gross, paye, prev)
		prev = paye
	}
}
