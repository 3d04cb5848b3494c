package payroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "company-1"

var errNotImplemented = errors.New("not implemented in fake")

// ========== FAKES ==========

type fakeRunRepo struct {
	runs map[string]payrollrun.PayrollRun
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]payrollrun.PayrollRun)}
}

func (f *fakeRunRepo) Create(ctx context.Context, run payrollrun.PayrollRun) (payrollrun.PayrollRun, error) {
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeRunRepo) GetByID(ctx context.Context, id string, companyID string) (payrollrun.PayrollRun, error) {
	run, ok := f.runs[id]
	if !ok || run.CompanyID != companyID {
		return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
	}
	return run, nil
}

func (f *fakeRunRepo) GetActiveByCompanyID(ctx context.Context, companyID string) (payrollrun.PayrollRun, error) {
	for _, run := range f.runs {
		if run.CompanyID == companyID && run.Status != payrollrun.StatusApproved {
			return run, nil
		}
	}
	return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
}

func (f *fakeRunRepo) GetByCompanyPeriod(ctx context.Context, companyID string, month, year int) (payrollrun.PayrollRun, error) {
	for _, run := range f.runs {
		if run.CompanyID == companyID && run.Month == month && run.Year == year {
			return run, nil
		}
	}
	return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
}

func (f *fakeRunRepo) Update(ctx context.Context, run payrollrun.PayrollRun) (payrollrun.PayrollRun, error) {
	if _, ok := f.runs[run.ID]; !ok {
		return payrollrun.PayrollRun{}, payrollrun.ErrRunNotFound
	}
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeRunRepo) Delete(ctx context.Context, id string, companyID string) error {
	if _, ok := f.runs[id]; !ok {
		return payrollrun.ErrRunNotFound
	}
	delete(f.runs, id)
	return nil
}

func (f *fakeRunRepo) ListSummaries(ctx context.Context, companyID string) ([]payrollrun.RunSummary, error) {
	var summaries []payrollrun.RunSummary
	for _, run := range f.runs {
		if run.CompanyID == companyID {
			summaries = append(summaries, run.Summarize())
		}
	}
	return summaries, nil
}

type fakeCompanyRepo struct {
	company company.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	return company.Company{}, errNotImplemented
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	if f.company.ID != id {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return f.company, nil
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	return nil, errNotImplemented
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c company.Company) (company.Company, error) {
	return company.Company{}, errNotImplemented
}

type fakeTaxRepo struct{}

func (f *fakeTaxRepo) GetByCompanyID(ctx context.Context, companyID string) (tax.TaxSettings, error) {
	return tax.TaxSettings{}, tax.ErrTaxSettingsNotFound
}

func (f *fakeTaxRepo) Upsert(ctx context.Context, settings tax.TaxSettings) (tax.TaxSettings, error) {
	return tax.TaxSettings{}, errNotImplemented
}

type fakePayTypeRepo struct {
	types    []paytype.PaymentType
	payments map[string][]paytype.StaffPayment
}

func (f *fakePayTypeRepo) CreateType(ctx context.Context, pt paytype.PaymentType) (paytype.PaymentType, error) {
	return paytype.PaymentType{}, errNotImplemented
}

func (f *fakePayTypeRepo) GetTypeByID(ctx context.Context, id string, companyID string) (paytype.PaymentType, error) {
	return paytype.PaymentType{}, errNotImplemented
}

func (f *fakePayTypeRepo) GetTypesByCompanyID(ctx context.Context, companyID string) ([]paytype.PaymentType, error) {
	return f.types, nil
}

func (f *fakePayTypeRepo) NextOrderNumber(ctx context.Context, companyID string) (int, error) {
	return 0, errNotImplemented
}

func (f *fakePayTypeRepo) UpdateType(ctx context.Context, companyID string, req paytype.UpdatePaymentTypeRequest) error {
	return errNotImplemented
}

func (f *fakePayTypeRepo) DeleteType(ctx context.Context, id string, companyID string) error {
	return errNotImplemented
}

func (f *fakePayTypeRepo) UpsertStaffPayment(ctx context.Context, companyID string, payment paytype.StaffPayment) (paytype.StaffPayment, error) {
	return paytype.StaffPayment{}, errNotImplemented
}

func (f *fakePayTypeRepo) GetStaffPayments(ctx context.Context, staffID string, companyID string, activeOnly bool) ([]paytype.StaffPayment, error) {
	return nil, errNotImplemented
}

func (f *fakePayTypeRepo) GetActiveStaffPaymentsByCompanyID(ctx context.Context, companyID string) (map[string][]paytype.StaffPayment, error) {
	return f.payments, nil
}

func (f *fakePayTypeRepo) RemoveStaffPayment(ctx context.Context, id string, companyID string) error {
	return errNotImplemented
}

type fakeDeductionRepo struct {
	types      []deduction.DeductionType
	deductions map[string][]deduction.Deduction
	getByIDErr error
}

func (f *fakeDeductionRepo) CreateType(ctx context.Context, dt deduction.DeductionType) (deduction.DeductionType, error) {
	return deduction.DeductionType{}, errNotImplemented
}

func (f *fakeDeductionRepo) GetTypeByID(ctx context.Context, id string, companyID string) (deduction.DeductionType, error) {
	return deduction.DeductionType{}, errNotImplemented
}

func (f *fakeDeductionRepo) GetTypesByCompanyID(ctx context.Context, companyID string) ([]deduction.DeductionType, error) {
	return f.types, nil
}

func (f *fakeDeductionRepo) NextOrderNumber(ctx context.Context, companyID string) (int, error) {
	return 0, errNotImplemented
}

func (f *fakeDeductionRepo) UpdateType(ctx context.Context, companyID string, req deduction.UpdateDeductionTypeRequest) error {
	return errNotImplemented
}

func (f *fakeDeductionRepo) DeleteType(ctx context.Context, id string, companyID string) error {
	return errNotImplemented
}

func (f *fakeDeductionRepo) Create(ctx context.Context, companyID string, d deduction.Deduction) (deduction.Deduction, error) {
	return deduction.Deduction{}, errNotImplemented
}

func (f *fakeDeductionRepo) GetByID(ctx context.Context, id string, companyID string) (deduction.Deduction, error) {
	return deduction.Deduction{}, errNotImplemented
}

func (f *fakeDeductionRepo) GetByIDs(ctx context.Context, ids []string, companyID string) ([]deduction.Deduction, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	var result []deduction.Deduction
	for _, list := range f.deductions {
		for _, d := range list {
			for _, id := range ids {
				if d.ID == id {
					result = append(result, d)
				}
			}
		}
	}
	return result, nil
}

func (f *fakeDeductionRepo) GetActiveByStaffID(ctx context.Context, staffID string, companyID string) ([]deduction.Deduction, error) {
	return nil, errNotImplemented
}

func (f *fakeDeductionRepo) GetActiveByCompanyID(ctx context.Context, companyID string) (map[string][]deduction.Deduction, error) {
	return f.deductions, nil
}

func (f *fakeDeductionRepo) Update(ctx context.Context, companyID string, req deduction.UpdateDeductionRequest) error {
	return errNotImplemented
}

func (f *fakeDeductionRepo) UpdateBalances(ctx context.Context, companyID string, deductions []deduction.Deduction) error {
	return errNotImplemented
}

func (f *fakeDeductionRepo) Delete(ctx context.Context, id string, companyID string) error {
	return errNotImplemented
}

type fakeStaffRepo struct {
	members []staff.Staff
}

func (f *fakeStaffRepo) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	return staff.Staff{}, errNotImplemented
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string, companyID string) (staff.Staff, error) {
	return staff.Staff{}, errNotImplemented
}

func (f *fakeStaffRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]staff.Staff, error) {
	var active []staff.Staff
	for _, m := range f.members {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

func (f *fakeStaffRepo) ListByCompanyID(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return f.members, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, companyID string, req staff.UpdateStaffRequest) error {
	return errNotImplemented
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string, companyID string) error {
	return errNotImplemented
}

// ========== SETUP ==========

type serviceFixture struct {
	svc         payrollrun.RunService
	runRepo     *fakeRunRepo
	dedRepo     *fakeDeductionRepo
	payTypeRepo *fakePayTypeRepo
	staffRepo   *fakeStaffRepo
	ctx         context.Context
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	runRepo := newFakeRunRepo()
	companyRepo := &fakeCompanyRepo{company: allActiveCompany()}
	payTypeRepo := &fakePayTypeRepo{
		types: standardPaymentTypes(),
		payments: map[string][]paytype.StaffPayment{
			"staff-1": {
				{StaffID: "staff-1", PaymentTypeID: "pt-basic", Amount: decimal.NewFromInt(500000), Active: true},
				{StaffID: "staff-1", PaymentTypeID: "pt-transport", Amount: decimal.NewFromInt(100000), Active: true},
			},
		},
	}
	dedRepo := &fakeDeductionRepo{
		types:      standardDeductionTypes(),
		deductions: map[string][]deduction.Deduction{},
	}
	staffRepo := &fakeStaffRepo{
		members: []staff.Staff{testStaff("staff-1", "EMP001", true)},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewRunService(nil, runRepo, companyRepo, &fakeTaxRepo{}, payTypeRepo, dedRepo, staffRepo, logger)

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{"company_id": testCompanyID, "type": "access"})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	return &serviceFixture{
		svc:         svc,
		runRepo:     runRepo,
		dedRepo:     dedRepo,
		payTypeRepo: payTypeRepo,
		staffRepo:   staffRepo,
		ctx:         ctx,
	}
}

func (f *serviceFixture) createRun(t *testing.T, month, year int) payrollrun.RunResponse {
	t.Helper()
	run, err := f.svc.CreateRun(f.ctx, payrollrun.CreateRunRequest{Month: month, Year: year})
	require.NoError(t, err)
	return run
}

// ========== TESTS ==========

func TestRunLifecycleDraftToApproved(t *testing.T) {
	f := newServiceFixture(t)

	run := f.createRun(t, 3, 2026)
	assert.Equal(t, string(payrollrun.StatusDraft), run.Status)
	assert.Equal(t, "2026-03", run.PeriodCode)

	processed, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusDraft), processed.Status)
	require.Len(t, processed.Employees, 1)
	assert.True(t, decimal.NewFromInt(600000).Equal(processed.Employees[0].GrossSalary))

	submitted, err := f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusToApprove), submitted.Status)

	approved, err := f.svc.ApproveRun(f.ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusApproved), approved.Status)
}

func TestCreateRunRejectsSecondActiveRun(t *testing.T) {
	f := newServiceFixture(t)
	f.createRun(t, 3, 2026)

	_, err := f.svc.CreateRun(f.ctx, payrollrun.CreateRunRequest{Month: 4, Year: 2026})
	assert.ErrorIs(t, err, payrollrun.ErrRunInProgress)
}

func TestCreateRunRejectsDuplicatePeriod(t *testing.T) {
	f := newServiceFixture(t)

	run := f.createRun(t, 3, 2026)
	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.ApproveRun(f.ctx, run.ID)
	require.NoError(t, err)

	// The approved run no longer blocks new runs, but its period stays taken.
	_, err = f.svc.CreateRun(f.ctx, payrollrun.CreateRunRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payrollrun.ErrRunExistsForPeriod)

	_, err = f.svc.CreateRun(f.ctx, payrollrun.CreateRunRequest{Month: 4, Year: 2026})
	assert.NoError(t, err)
}

func TestSubmitRequiresProcessedRun(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.SubmitForApproval(f.ctx, run.ID)
	assert.ErrorIs(t, err, payrollrun.ErrRunNotProcessed)
}

func TestApproveRequiresSubmittedRun(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ApproveRun(f.ctx, run.ID)
	assert.ErrorIs(t, err, payrollrun.ErrInvalidTransition)
}

func TestApproveApprovedRunFails(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.ApproveRun(f.ctx, run.ID)
	require.NoError(t, err)

	_, err = f.svc.ApproveRun(f.ctx, run.ID)
	assert.ErrorIs(t, err, payrollrun.ErrRunAlreadyApproved)
}

func TestRejectRequiresReason(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.RejectRun(f.ctx, run.ID, payrollrun.RejectRunRequest{})
	assert.ErrorIs(t, err, payrollrun.ErrRejectionReasonRequired)
}

func TestRejectAndReprocessClearsReason(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)

	rejected, err := f.svc.RejectRun(f.ctx, run.ID, payrollrun.RejectRunRequest{Reason: "numbers look off"})
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusRejected), rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "numbers look off", *rejected.RejectionReason)

	// Reprocessing a rejected run returns it to draft with the reason gone.
	reprocessed, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusDraft), reprocessed.Status)
	assert.Nil(t, reprocessed.RejectionReason)
}

func TestResetToDraftClearsResults(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)

	reset, err := f.svc.ResetToDraft(f.ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payrollrun.StatusDraft), reset.Status)
	assert.Empty(t, reset.Employees)
}

func TestApproveSurfacesReconciliationError(t *testing.T) {
	f := newServiceFixture(t)

	f.dedRepo.deductions = map[string][]deduction.Deduction{
		"staff-1": {
			testDeduction("d-loan", "dt-loan", 30000, 180000, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	run := f.createRun(t, 3, 2026)
	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)

	f.dedRepo.getByIDErr = errors.New("connection reset")

	approved, err := f.svc.ApproveRun(f.ctx, run.ID)

	var recErr *payrollrun.ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, run.ID, recErr.RunID)
	assert.Contains(t, recErr.FailedDeductionIDs, "d-loan")

	// The approval itself stands despite the reconciliation failure.
	assert.Equal(t, string(payrollrun.StatusApproved), approved.Status)
	stored, err := f.runRepo.GetByID(f.ctx, run.ID, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, payrollrun.StatusApproved, stored.Status)
}

func TestDeleteDraftRun(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	require.NoError(t, f.svc.DeleteRun(f.ctx, run.ID))

	_, err := f.svc.GetRun(f.ctx, run.ID)
	assert.ErrorIs(t, err, payrollrun.ErrRunNotFound)
}

func TestListRunSummaries(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)

	summaries, err := f.svc.ListRunSummaries(f.ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, run.ID, summaries[0].RunID)
	assert.Equal(t, 1, summaries[0].EmployeeCount)
	assert.True(t, decimal.NewFromInt(600000).Equal(summaries[0].TotalGross))
}

func TestProcessApprovedRunFails(t *testing.T) {
	f := newServiceFixture(t)
	run := f.createRun(t, 3, 2026)

	_, err := f.svc.ProcessRun(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(f.ctx, run.ID)
	require.NoError(t, err)
	_, err = f.svc.ApproveRun(f.ctx, run.ID)
	require.NoError(t, err)

	_, err = f.svc.ProcessRun(f.ctx, run.ID)
	assert.ErrorIs(t, err, payrollrun.ErrInvalidTransition)
}
