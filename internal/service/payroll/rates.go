package payroll

import (
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// EffectiveRates is a tax settings snapshot with every rate belonging to an
// inactive exemption flag already zeroed. Build once per run and share.
type EffectiveRates struct {
	Settings   tax.TaxSettings
	PAYEActive bool
}

func NewEffectiveRates(s tax.TaxSettings, c company.Company) EffectiveRates {
	if !c.PensionActive {
		s.PensionEmployeeRate = decimal.Zero
		s.PensionEmployerRate = decimal.Zero
	}
	if !c.MaternityActive {
		s.MaternityEmployeeRate = decimal.Zero
		s.MaternityEmployerRate = decimal.Zero
	}
	if !c.RAMAActive {
		s.RAMAEmployeeRate = decimal.Zero
		s.RAMAEmployerRate = decimal.Zero
	}
	if !c.CBHIActive {
		s.CBHIRate = decimal.Zero
	}
	return EffectiveRates{Settings: s, PAYEActive: c.PAYEActive}
}

// StatutoryBreakdown holds every statutory figure derived from a gross salary.
type StatutoryBreakdown struct {
	PensionEmployee   decimal.Decimal
	PensionEmployer   decimal.Decimal
	MaternityEmployee decimal.Decimal
	MaternityEmployer decimal.Decimal
	RAMAEmployee      decimal.Decimal
	RAMAEmployer      decimal.Decimal
	EmployeeRSSB      decimal.Decimal
	EmployerRSSB      decimal.Decimal
	PAYE              decimal.Decimal
	NetBeforeCBHI     decimal.Decimal
	CBHI              decimal.Decimal
	NetAfterCBHI      decimal.Decimal
}

// Breakdown derives the full statutory split for a total gross salary.
// Maternity contributions exclude the transport allowance portion and RAMA is
// levied on basic pay only, so both restricted bases come in separately.
func (r EffectiveRates) Breakdown(gross, transport, basic decimal.Decimal) StatutoryBreakdown {
	s := r.Settings

	maternityBase := floorZero(gross.Sub(transport))

	b := StatutoryBreakdown{
		PensionEmployee:   gross.Mul(s.PensionEmployeeRate),
		PensionEmployer:   gross.Mul(s.PensionEmployerRate),
		MaternityEmployee: maternityBase.Mul(s.MaternityEmployeeRate),
		MaternityEmployer: maternityBase.Mul(s.MaternityEmployerRate),
		RAMAEmployee:      basic.Mul(s.RAMAEmployeeRate),
		RAMAEmployer:      basic.Mul(s.RAMAEmployerRate),
	}
	b.EmployeeRSSB = b.PensionEmployee.Add(b.MaternityEmployee).Add(b.RAMAEmployee)
	b.EmployerRSSB = b.PensionEmployer.Add(b.MaternityEmployer).Add(b.RAMAEmployer)
	b.PAYE = CalculatePAYE(gross, s, r.PAYEActive)
	b.NetBeforeCBHI = gross.Sub(b.EmployeeRSSB).Sub(b.PAYE)
	b.CBHI = floorZero(b.NetBeforeCBHI).Mul(s.CBHIRate)
	b.NetAfterCBHI = b.NetBeforeCBHI.Sub(b.CBHI)
	return b
}

// netForGross is the net-pay figure the gross-up solver searches against.
func (r EffectiveRates) netForGross(gross, transport, basic decimal.Decimal) decimal.Decimal {
	return r.Breakdown(gross, transport, basic).NetAfterCBHI
}
