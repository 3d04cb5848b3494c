package payroll

import (
	"sort"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/shopspring/decimal"
)

// Earnings is the outcome of walking one employee's payment configuration.
type Earnings struct {
	// Amounts holds the computed gross per payment type id. Net-target
	// components appear already grossed up.
	Amounts   map[string]decimal.Decimal
	Gross     decimal.Decimal
	Transport decimal.Decimal
	Basic     decimal.Decimal
	Breakdown StatutoryBreakdown
	Warnings  []string
}

// accumulator is the running state threaded through the payment type fold.
// Each step produces a new value so partial states stay observable.
type accumulator struct {
	gross     decimal.Decimal
	transport decimal.Decimal
	basic     decimal.Decimal
}

func (a accumulator) add(pt paytype.PaymentType, amount decimal.Decimal) accumulator {
	next := accumulator{
		gross:     a.gross.Add(amount),
		transport: a.transport,
		basic:     a.basic,
	}
	if pt.IsTransportAllowance() {
		next.transport = a.transport.Add(amount)
	}
	if pt.IsBasicPay() {
		next.basic = a.basic.Add(amount)
	}
	return next
}

// computeEarnings folds over the company's payment types in processing order.
// Gross components pass through; net components are grossed up against the
// accumulated state. The statutory split is evaluated once at the final
// totals, not per component.
func computeEarnings(rates EffectiveRates, payTypes []paytype.PaymentType, configured map[string]decimal.Decimal, staffID string) Earnings {
	ordered := make([]paytype.PaymentType, len(payTypes))
	copy(ordered, payTypes)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderNumber < ordered[j].OrderNumber
	})

	result := Earnings{Amounts: make(map[string]decimal.Decimal, len(ordered))}
	acc := accumulator{gross: decimal.Zero, transport: decimal.Zero, basic: decimal.Zero}

	for _, pt := range ordered {
		configuredAmount, ok := configured[pt.ID]
		if !ok {
			configuredAmount = decimal.Zero
		}

		var computed decimal.Decimal
		switch pt.Category {
		case paytype.CategoryNet:
			solved := GrossUp(rates, configuredAmount, acc.gross, acc.transport, acc.basic)
			if !solved.Converged {
				result.Warnings = append(result.Warnings, solved.Warning(staffID))
			}
			computed = solved.Gross
		default:
			computed = configuredAmount
		}

		result.Amounts[pt.ID] = computed
		acc = acc.add(pt, computed)
	}

	result.Gross = acc.gross
	result.Transport = acc.transport
	result.Basic = acc.basic
	result.Breakdown = rates.Breakdown(acc.gross, acc.transport, acc.basic)
	return result
}
