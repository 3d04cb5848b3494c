package payrollrun

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriodCodeFor(t *testing.T) {
	assert.Equal(t, "2026-03", PeriodCodeFor(3, 2026))
	assert.Equal(t, "2026-12", PeriodCodeFor(12, 2026))
}

func TestProcessed(t *testing.T) {
	assert.False(t, PayrollRun{}.Processed())
	assert.True(t, PayrollRun{Employees: []EmployeeRecord{{StaffID: "s1"}}}.Processed())
}

func TestSummarize(t *testing.T) {
	run := PayrollRun{
		ID:         "run-1",
		PeriodCode: "2026-03",
		CompanyID:  "company-1",
		Month:      3,
		Year:       2026,
		Status:     StatusToApprove,
		Employees:  []EmployeeRecord{{StaffID: "s1"}, {StaffID: "s2"}},
		Totals: RunTotals{
			GrossSalary:     decimal.NewFromInt(900000),
			TotalDeductions: decimal.NewFromInt(70000),
			FinalNetPay:     decimal.NewFromInt(535955),
		},
	}

	s := run.Summarize()

	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, 2, s.EmployeeCount)
	assert.Equal(t, StatusToApprove, s.Status)
	assert.True(t, decimal.NewFromInt(900000).Equal(s.TotalGross))
	assert.True(t, decimal.NewFromInt(70000).Equal(s.TotalDeductions))
	assert.True(t, decimal.NewFromInt(535955).Equal(s.TotalNet))
}
