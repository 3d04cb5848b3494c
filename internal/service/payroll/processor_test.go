package payroll

import (
	"testing"
	"time"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStaff(id, number string, active bool) staff.Staff {
	return staff.Staff{
		ID:          id,
		CompanyID:   "company-1",
		StaffNumber: number,
		FirstName:   "Jane",
		LastName:    "Doe",
		Active:      active,
	}
}

func baseRunInputs() RunInputs {
	return RunInputs{
		Company:        allActiveCompany(),
		Settings:       tax.DefaultTaxSettings(),
		PaymentTypes:   standardPaymentTypes(),
		DeductionTypes: standardDeductionTypes(),
	}
}

func TestProcessRunSingleEmployee(t *testing.T) {
	inputs := baseRunInputs()
	inputs.Staff = []StaffInputs{
		{
			Member: testStaff("staff-1", "EMP001", true),
			Payments: []paytype.StaffPayment{
				{StaffID: "staff-1", PaymentTypeID: "pt-basic", Amount: decimal.NewFromInt(500000), Active: true},
				{StaffID: "staff-1", PaymentTypeID: "pt-transport", Amount: decimal.NewFromInt(100000), Active: true},
			},
			Deductions: []deduction.Deduction{
				testDeduction("d-loan", "dt-loan", 30000, 180000, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}

	out, err := ProcessRun(inputs)
	require.NoError(t, err)
	require.Len(t, out.Employees, 1)

	rec := out.Employees[0]
	assert.Equal(t, "EMP001", rec.StaffNumber)
	assert.Equal(t, "Jane Doe", rec.StaffName)
	assert.True(t, decimal.NewFromInt(600000).Equal(rec.GrossSalary))
	assert.True(t, decimal.NewFromInt(144000).Equal(rec.PAYE))
	assert.True(t, decimal.NewFromInt(379095).Equal(rec.NetAfterCBHI))
	assert.True(t, decimal.NewFromInt(30000).Equal(rec.TotalDeductions))
	assert.True(t, decimal.NewFromInt(349095).Equal(rec.FinalNetPay))

	assert.True(t, rec.GrossSalary.Equal(out.Totals.GrossSalary))
	assert.True(t, rec.FinalNetPay.Equal(out.Totals.FinalNetPay))
	assert.Empty(t, out.Warnings)
}

func TestProcessRunSkipsInactiveStaffSilently(t *testing.T) {
	inputs := baseRunInputs()
	inputs.Staff = []StaffInputs{
		{
			Member: testStaff("staff-1", "EMP001", false),
			Payments: []paytype.StaffPayment{
				{StaffID: "staff-1", PaymentTypeID: "pt-basic", Amount: decimal.NewFromInt(500000), Active: true},
			},
		},
	}

	out, err := ProcessRun(inputs)
	require.NoError(t, err)

	assert.Empty(t, out.Employees)
	assert.Empty(t, out.Warnings)
}

func TestProcessRunWarnsOnStaffWithoutPayments(t *testing.T) {
	inputs := baseRunInputs()
	inputs.Staff = []StaffInputs{
		{Member: testStaff("staff-1", "EMP001", true)},
	}

	out, err := ProcessRun(inputs)
	require.NoError(t, err)

	assert.Empty(t, out.Employees)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "EMP001")
	assert.Contains(t, out.Warnings[0], "no active payment configuration")
}

func TestProcessRunConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunInputs)
		wantErr error
	}{
		{
			name:    "missing company",
			mutate:  func(in *RunInputs) { in.Company.ID = "" },
			wantErr: payrollrun.ErrCompanyNotFound,
		},
		{
			name:    "no payment types",
			mutate:  func(in *RunInputs) { in.PaymentTypes = nil },
			wantErr: payrollrun.ErrNoPaymentTypes,
		},
		{
			name:    "no deduction types",
			mutate:  func(in *RunInputs) { in.DeductionTypes = nil },
			wantErr: payrollrun.ErrNoDeductionTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := baseRunInputs()
			tt.mutate(&inputs)

			_, err := ProcessRun(inputs)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProcessRunExemptCompanyPaysGrossMinusDeductions(t *testing.T) {
	inputs := baseRunInputs()
	inputs.Company = allExemptCompany()
	inputs.Staff = []StaffInputs{
		{
			Member: testStaff("staff-1", "EMP001", true),
			Payments: []paytype.StaffPayment{
				{StaffID: "staff-1", PaymentTypeID: "pt-basic", Amount: decimal.NewFromInt(500000), Active: true},
			},
		},
	}

	out, err := ProcessRun(inputs)
	require.NoError(t, err)
	require.Len(t, out.Employees, 1)

	rec := out.Employees[0]
	assert.True(t, rec.EmployeeRSSB.IsZero())
	assert.True(t, rec.PAYE.IsZero())
	assert.True(t, rec.CBHI.IsZero())
	assert.True(t, decimal.NewFromInt(500000).Equal(rec.FinalNetPay))
}

func TestProcessRunIsRepeatable(t *testing.T) {
	inputs := baseRunInputs()
	inputs.Staff = []StaffInputs{
		{
			Member: testStaff("staff-1", "EMP001", true),
			Payments: []paytype.StaffPayment{
				{StaffID: "staff-1", PaymentTypeID: "pt-basic", Amount: decimal.NewFromInt(500000), Active: true},
			},
			Deductions: []deduction.Deduction{
				testDeduction("d-loan", "dt-loan", 30000, 180000, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}

	first, err := ProcessRun(inputs)
	require.NoError(t, err)
	second, err := ProcessRun(inputs)
	require.NoError(t, err)

	require.Len(t, second.Employees, 1)
	assert.True(t, first.Employees[0].FinalNetPay.Equal(second.Employees[0].FinalNetPay))
	assert.True(t, first.Totals.GrossSalary.Equal(second.Totals.GrossSalary))

	// A processing pass never mutates the input deductions.
	d := inputs.Staff[0].Deductions[0]
	assert.True(t, decimal.NewFromInt(180000).Equal(d.Balance))
	assert.True(t, d.DeductedSoFar.IsZero())
}
