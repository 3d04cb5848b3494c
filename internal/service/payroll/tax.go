package payroll

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// CalculatePAYE computes pay-as-you-earn income tax for a gross salary using
// the four-band marginal scale in settings. Returns zero when the company is
// PAYE-exempt. Must be called with one consistent settings snapshot for a
// whole run.
func CalculatePAYE(gross decimal.Decimal, s tax.TaxSettings, payeActive bool) decimal.Decimal {
	if !payeActive {
		return decimal.Zero
	}
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	if gross.LessThanOrEqual(s.Band1Limit) {
		return floorZero(gross.Mul(s.Rate1))
	}

	total := s.Band1Limit.Mul(s.Rate1)

	band2 := decimal.Min(gross, s.Band2Limit).Sub(s.Band1Limit)
	if band2.IsPositive() {
		total = total.Add(band2.Mul(s.Rate2))
	}

	band3 := decimal.Min(gross, s.Band3Limit).Sub(s.Band2Limit)
	if band3.IsPositive() {
		total = total.Add(band3.Mul(s.Rate3))
	}

	band4 := gross.Sub(s.Band3Limit)
	if band4.IsPositive() {
		total = total.Add(band4.Mul(s.Rate4))
	}

	return floorZero(total)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
