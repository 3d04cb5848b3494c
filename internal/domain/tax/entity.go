package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxSettings - PAYE bands and contribution rates. CompanyID empty means the
// record is the global default. PAYE is a four-band marginal calculation:
// Rate1 up to Band1Limit, Rate2 up to Band2Limit, Rate3 up to Band3Limit,
// Rate4 above that.
type TaxSettings struct {
	ID        string
	CompanyID string

	Band1Limit decimal.Decimal
	Band2Limit decimal.Decimal
	Band3Limit decimal.Decimal
	Rate1      decimal.Decimal
	Rate2      decimal.Decimal
	Rate3      decimal.Decimal
	Rate4      decimal.Decimal

	PensionEmployeeRate   decimal.Decimal
	PensionEmployerRate   decimal.Decimal
	MaternityEmployeeRate decimal.Decimal
	MaternityEmployerRate decimal.Decimal
	RAMAEmployeeRate      decimal.Decimal
	RAMAEmployerRate      decimal.Decimal
	CBHIRate              decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultTaxSettings returns the statutory defaults used when a company has no
// settings persisted. A fresh value is built on every call so callers can
// never share mutable state.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		Band1Limit: decimal.NewFromInt(60000),
		Band2Limit: decimal.NewFromInt(100000),
		Band3Limit: decimal.NewFromInt(200000),
		Rate1:      decimal.Zero,
		Rate2:      decimal.NewFromFloat(0.10),
		Rate3:      decimal.NewFromFloat(0.20),
		Rate4:      decimal.NewFromFloat(0.30),

		PensionEmployeeRate:   decimal.NewFromFloat(0.06),
		PensionEmployerRate:   decimal.NewFromFloat(0.08),
		MaternityEmployeeRate: decimal.NewFromFloat(0.003),
		MaternityEmployerRate: decimal.NewFromFloat(0.003),
		RAMAEmployeeRate:      decimal.NewFromFloat(0.075),
		RAMAEmployerRate:      decimal.NewFromFloat(0.075),
		CBHIRate:              decimal.NewFromFloat(0.005),
	}
}
