package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecalculateBalance(t *testing.T) {
	d := Deduction{
		OriginalAmount: decimal.NewFromInt(180000),
		DeductedSoFar:  decimal.NewFromInt(90000),
	}
	d.RecalculateBalance()
	assert.True(t, decimal.NewFromInt(90000).Equal(d.Balance))
}

func TestRecalculateBalanceFloorsAtZero(t *testing.T) {
	d := Deduction{
		OriginalAmount: decimal.NewFromInt(50000),
		DeductedSoFar:  decimal.NewFromInt(60000),
	}
	d.RecalculateBalance()
	assert.True(t, d.Balance.IsZero())
}
