package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const grossUpMaxIterations = 50

// grossUpTolerance is 0.50 currency units; consistently-applied rounding makes
// a residual below it immaterial on the final payslip.
var grossUpTolerance = decimal.NewFromFloat(0.50)

var two = decimal.NewFromInt(2)
var three = decimal.NewFromInt(3)

// GrossUpResult carries the solved additional gross. When the bisection did
// not converge within the iteration budget, Converged is false and Residual
// holds the remaining distance from the target net increment.
type GrossUpResult struct {
	Gross     decimal.Decimal
	Converged bool
	Residual  decimal.Decimal
}

// GrossUp finds the additional gross amount that raises net pay by exactly
// target, given the gross, transport-only and basic-pay-only amounts already
// accumulated for the employee. Bisection over [0, target*3], capped at 50
// iterations. A non-positive target deterministically yields zero.
func GrossUp(rates EffectiveRates, target, accGross, accTransport, accBasic decimal.Decimal) GrossUpResult {
	if target.LessThanOrEqual(decimal.Zero) {
		return GrossUpResult{Gross: decimal.Zero, Converged: true, Residual: decimal.Zero}
	}

	// Baseline computed once from the pre-component accumulators; every trial
	// increment is measured against it.
	baseline := rates.netForGross(accGross, accTransport, accBasic)

	low := decimal.Zero
	high := target.Mul(three)
	guess := high
	residual := target

	for i := 0; i < grossUpMaxIterations; i++ {
		guess = low.Add(high).Div(two)
		netIncrement := rates.netForGross(accGross.Add(guess), accTransport, accBasic).Sub(baseline)
		residual = netIncrement.Sub(target)

		if residual.Abs().LessThanOrEqual(grossUpTolerance) {
			return GrossUpResult{Gross: guess, Converged: true, Residual: residual}
		}
		if residual.IsPositive() {
			high = guess
		} else {
			low = guess
		}
	}

	return GrossUpResult{Gross: guess, Converged: false, Residual: residual}
}

// Warning renders the non-convergence warning with its residual magnitude.
func (r GrossUpResult) Warning(staffID string) string {
	return fmt.Sprintf("gross-up did not converge for staff %s: residual %s after %d iterations",
		staffID, r.Residual.Abs().StringFixed(2), grossUpMaxIterations)
}
