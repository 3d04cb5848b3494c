package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/company"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
	"github.com/kanmwangi2/payroll-backend-go/internal/repository/postgresql"
)

type RunServiceImpl struct {
	db            *database.DB
	runRepo       payrollrun.RunRepository
	companyRepo   company.CompanyRepository
	taxRepo       tax.TaxRepository
	payTypeRepo   paytype.PaymentTypeRepository
	deductionRepo deduction.DeductionRepository
	staffRepo     staff.StaffRepository
	logger        *slog.Logger
}

func NewRunService(
	db *database.DB,
	runRepo payrollrun.RunRepository,
	companyRepo company.CompanyRepository,
	taxRepo tax.TaxRepository,
	payTypeRepo paytype.PaymentTypeRepository,
	deductionRepo deduction.DeductionRepository,
	staffRepo staff.StaffRepository,
	logger *slog.Logger,
) payrollrun.RunService {
	return &RunServiceImpl{
		db:            db,
		runRepo:       runRepo,
		companyRepo:   companyRepo,
		taxRepo:       taxRepo,
		payTypeRepo:   payTypeRepo,
		deductionRepo: deductionRepo,
		staffRepo:     staffRepo,
		logger:        logger,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== LIFECYCLE ==========

func (s *RunServiceImpl) CreateRun(ctx context.Context, req payrollrun.CreateRunRequest) (payrollrun.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.RunResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	// One non-approved run per company.
	existing, err := s.runRepo.GetActiveByCompanyID(ctx, companyID)
	if err == nil {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: run %s (%s)",
			payrollrun.ErrRunInProgress, existing.ID, existing.Status)
	}
	if !errors.Is(err, payrollrun.ErrRunNotFound) {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to check active run: %w", err)
	}

	// One run per period, approved or not.
	_, err = s.runRepo.GetByCompanyPeriod(ctx, companyID, req.Month, req.Year)
	if err == nil {
		return payrollrun.RunResponse{}, payrollrun.ErrRunExistsForPeriod
	}
	if !errors.Is(err, payrollrun.ErrRunNotFound) {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to check period run: %w", err)
	}

	run := payrollrun.PayrollRun{
		ID:         uuid.NewString(),
		PeriodCode: payrollrun.PeriodCodeFor(req.Month, req.Year),
		CompanyID:  companyID,
		Month:      req.Month,
		Year:       req.Year,
		Status:     payrollrun.StatusDraft,
	}

	created, err := s.runRepo.Create(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return mapToRunResponse(created), nil
}

func (s *RunServiceImpl) ProcessRun(ctx context.Context, id string) (payrollrun.RunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	if run.Status != payrollrun.StatusDraft && run.Status != payrollrun.StatusRejected {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: cannot process a %s run",
			payrollrun.ErrInvalidTransition, run.Status)
	}

	inputs, err := s.collectRunInputs(ctx, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	processed, err := ProcessRun(inputs)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	for _, warning := range processed.Warnings {
		s.logger.Warn("payroll processing warning",
			slog.String("run_id", run.ID),
			slog.String("company_id", companyID),
			slog.String("warning", warning))
	}

	// Reprocessing a rejected run returns it to draft with the reason
	// cleared.
	run.Status = payrollrun.StatusDraft
	run.RejectionReason = nil
	run.Employees = processed.Employees
	run.Totals = processed.Totals
	run.Warnings = processed.Warnings

	updated, err := s.runRepo.Update(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to save processed run: %w", err)
	}

	return mapToRunResponse(updated), nil
}

func (s *RunServiceImpl) SubmitForApproval(ctx context.Context, id string) (payrollrun.RunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	if run.Status != payrollrun.StatusDraft {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: cannot submit a %s run",
			payrollrun.ErrInvalidTransition, run.Status)
	}
	if !run.Processed() {
		return payrollrun.RunResponse{}, payrollrun.ErrRunNotProcessed
	}

	run.Status = payrollrun.StatusToApprove
	updated, err := s.runRepo.Update(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to submit run: %w", err)
	}

	return mapToRunResponse(updated), nil
}

func (s *RunServiceImpl) ApproveRun(ctx context.Context, id string) (payrollrun.RunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	if run.Status == payrollrun.StatusApproved {
		return payrollrun.RunResponse{}, payrollrun.ErrRunAlreadyApproved
	}
	if run.Status != payrollrun.StatusToApprove {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: cannot approve a %s run",
			payrollrun.ErrInvalidTransition, run.Status)
	}

	run.Status = payrollrun.StatusApproved
	updated, err := s.runRepo.Update(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to approve run: %w", err)
	}

	// Balance reconciliation is secondary bookkeeping: the approval stands
	// even when it fails, but the failure is surfaced for retry.
	if err := s.reconcileBalances(ctx, companyID, updated, false); err != nil {
		return mapToRunResponse(updated), err
	}

	return mapToRunResponse(updated), nil
}

func (s *RunServiceImpl) RejectRun(ctx context.Context, id string, req payrollrun.RejectRunRequest) (payrollrun.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollrun.RunResponse{}, payrollrun.ErrRejectionReasonRequired
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	if run.Status != payrollrun.StatusToApprove {
		return payrollrun.RunResponse{}, fmt.Errorf("%w: cannot reject a %s run",
			payrollrun.ErrInvalidTransition, run.Status)
	}

	run.Status = payrollrun.StatusRejected
	run.RejectionReason = &req.Reason
	updated, err := s.runRepo.Update(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to reject run: %w", err)
	}

	return mapToRunResponse(updated), nil
}

func (s *RunServiceImpl) ResetToDraft(ctx context.Context, id string) (payrollrun.RunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	if run.Status == payrollrun.StatusApproved {
		return payrollrun.RunResponse{}, payrollrun.ErrRunAlreadyApproved
	}

	run.Status = payrollrun.StatusDraft
	run.RejectionReason = nil
	run.Employees = nil
	run.Totals = payrollrun.RunTotals{}
	run.Warnings = nil

	updated, err := s.runRepo.Update(ctx, run)
	if err != nil {
		return payrollrun.RunResponse{}, fmt.Errorf("failed to reset run: %w", err)
	}

	return mapToRunResponse(updated), nil
}

func (s *RunServiceImpl) GetRun(ctx context.Context, id string) (payrollrun.RunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrollrun.RunResponse{}, err
	}

	return mapToRunResponse(run), nil
}

func (s *RunServiceImpl) ListRunSummaries(ctx context.Context) ([]payrollrun.RunSummaryResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.runRepo.ListSummaries(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payrollrun.RunSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, payrollrun.RunSummaryResponse{
			RunID:           sum.RunID,
			PeriodCode:      sum.PeriodCode,
			Month:           sum.Month,
			Year:            sum.Year,
			Status:          string(sum.Status),
			EmployeeCount:   sum.EmployeeCount,
			TotalGross:      sum.TotalGross,
			TotalDeductions: sum.TotalDeductions,
			TotalNet:        sum.TotalNet,
		})
	}
	return result, nil
}

func (s *RunServiceImpl) DeleteRun(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	run, err := s.runRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}

	// Deleting an approved run restores the deduction balances it consumed.
	if run.Status == payrollrun.StatusApproved && run.Processed() {
		if err := s.reconcileBalances(ctx, companyID, run, true); err != nil {
			return err
		}
	}

	return s.runRepo.Delete(ctx, id, companyID)
}

// ========== SNAPSHOT & RECONCILIATION ==========

// collectRunInputs loads the read-only snapshot a processing pass consumes.
// Configuration problems surface here, before any calculation starts.
func (s *RunServiceImpl) collectRunInputs(ctx context.Context, companyID string) (RunInputs, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return RunInputs{}, payrollrun.ErrCompanyNotFound
		}
		return RunInputs{}, fmt.Errorf("failed to get company: %w", err)
	}

	settings, err := s.taxRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, tax.ErrTaxSettingsNotFound) {
			return RunInputs{}, fmt.Errorf("failed to get tax settings: %w", err)
		}
		// Documented fallback: statutory defaults.
		settings = tax.DefaultTaxSettings()
	}

	payTypes, err := s.payTypeRepo.GetTypesByCompanyID(ctx, companyID)
	if err != nil {
		return RunInputs{}, fmt.Errorf("failed to get payment types: %w", err)
	}
	if len(payTypes) == 0 {
		return RunInputs{}, payrollrun.ErrNoPaymentTypes
	}

	dedTypes, err := s.deductionRepo.GetTypesByCompanyID(ctx, companyID)
	if err != nil {
		return RunInputs{}, fmt.Errorf("failed to get deduction types: %w", err)
	}
	if len(dedTypes) == 0 {
		return RunInputs{}, payrollrun.ErrNoDeductionTypes
	}

	members, err := s.staffRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return RunInputs{}, fmt.Errorf("failed to get staff: %w", err)
	}

	paymentsByStaff, err := s.payTypeRepo.GetActiveStaffPaymentsByCompanyID(ctx, companyID)
	if err != nil {
		return RunInputs{}, fmt.Errorf("failed to get staff payments: %w", err)
	}

	deductionsByStaff, err := s.deductionRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return RunInputs{}, fmt.Errorf("failed to get deductions: %w", err)
	}

	inputs := RunInputs{
		Company:        comp,
		Settings:       settings,
		PaymentTypes:   payTypes,
		DeductionTypes: dedTypes,
	}
	for _, member := range members {
		inputs.Staff = append(inputs.Staff, StaffInputs{
			Member:     member,
			Payments:   paymentsByStaff[member.ID],
			Deductions: deductionsByStaff[member.ID],
		})
	}
	return inputs, nil
}

// reconcileBalances applies (or, for reverse, restores) the deduction balance
// mutations recorded in a run's employee records, atomically.
func (s *RunServiceImpl) reconcileBalances(ctx context.Context, companyID string, run payrollrun.PayrollRun, reverse bool) error {
	applied := appliedAmounts(run.Employees)
	if len(applied) == 0 {
		return nil
	}

	ids := make([]string, 0, len(applied))
	for id := range applied {
		ids = append(ids, id)
	}

	deductions, err := s.deductionRepo.GetByIDs(ctx, ids, companyID)
	if err != nil {
		return &payrollrun.ReconciliationError{RunID: run.ID, FailedDeductionIDs: ids, Err: err}
	}

	var updated []deduction.Deduction
	if reverse {
		updated = ReverseDeductionBalances(run.Employees, deductions)
	} else {
		updated = ApplyDeductionBalances(run.Employees, deductions)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.deductionRepo.UpdateBalances(txCtx, companyID, updated)
	})
	if err != nil {
		s.logger.Error("deduction balance reconciliation failed",
			slog.String("run_id", run.ID),
			slog.String("company_id", companyID),
			slog.Bool("reverse", reverse),
			slog.Any("error", err))
		return &payrollrun.ReconciliationError{RunID: run.ID, FailedDeductionIDs: ids, Err: err}
	}

	return nil
}

// ========== HELPERS ==========

func mapToRunResponse(r payrollrun.PayrollRun) payrollrun.RunResponse {
	employees := make([]payrollrun.EmployeeRecordResponse, 0, len(r.Employees))
	for _, rec := range r.Employees {
		applied := make([]payrollrun.AppliedDeductionResponse, 0, len(rec.AppliedDeductions))
		for _, ad := range rec.AppliedDeductions {
			applied = append(applied, payrollrun.AppliedDeductionResponse{
				DeductionID:     ad.DeductionID,
				DeductionTypeID: ad.DeductionTypeID,
				Amount:          ad.Amount,
			})
		}
		employees = append(employees, payrollrun.EmployeeRecordResponse{
			StaffID:           rec.StaffID,
			StaffNumber:       rec.StaffNumber,
			StaffName:         rec.StaffName,
			PaymentAmounts:    rec.PaymentAmounts,
			GrossSalary:       rec.GrossSalary,
			PensionEmployee:   rec.PensionEmployee,
			PensionEmployer:   rec.PensionEmployer,
			MaternityEmployee: rec.MaternityEmployee,
			MaternityEmployer: rec.MaternityEmployer,
			RAMAEmployee:      rec.RAMAEmployee,
			RAMAEmployer:      rec.RAMAEmployer,
			EmployeeRSSB:      rec.EmployeeRSSB,
			EmployerRSSB:      rec.EmployerRSSB,
			PAYE:              rec.PAYE,
			NetBeforeCBHI:     rec.NetBeforeCBHI,
			CBHI:              rec.CBHI,
			NetAfterCBHI:      rec.NetAfterCBHI,
			AppliedDeductions: applied,
			DeductionAmounts:  rec.DeductionAmounts,
			TotalDeductions:   rec.TotalDeductions,
			FinalNetPay:       rec.FinalNetPay,
		})
	}

	return payrollrun.RunResponse{
		ID:              r.ID,
		PeriodCode:      r.PeriodCode,
		CompanyID:       r.CompanyID,
		Month:           r.Month,
		Year:            r.Year,
		Status:          string(r.Status),
		Employees:       employees,
		Totals:          mapToTotalsResponse(r.Totals),
		RejectionReason: r.RejectionReason,
		Warnings:        r.Warnings,
	}
}

func mapToTotalsResponse(t payrollrun.RunTotals) payrollrun.RunTotalsResponse {
	return payrollrun.RunTotalsResponse{
		GrossSalary:       t.GrossSalary,
		PensionEmployee:   t.PensionEmployee,
		PensionEmployer:   t.PensionEmployer,
		MaternityEmployee: t.MaternityEmployee,
		MaternityEmployer: t.MaternityEmployer,
		RAMAEmployee:      t.RAMAEmployee,
		RAMAEmployer:      t.RAMAEmployer,
		EmployeeRSSB:      t.EmployeeRSSB,
		EmployerRSSB:      t.EmployerRSSB,
		PAYE:              t.PAYE,
		CBHI:              t.CBHI,
		TotalDeductions:   t.TotalDeductions,
		FinalNetPay:       t.FinalNetPay,
		PaymentTotals:     t.PaymentTotals,
		DeductionTotals:   t.DeductionTotals,
	}
}
