package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/payrollrun"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateRun(w http.ResponseWriter, r *http.Request)
	ProcessRun(w http.ResponseWriter, r *http.Request)
	SubmitForApproval(w http.ResponseWriter, r *http.Request)
	ApproveRun(w http.ResponseWriter, r *http.Request)
	RejectRun(w http.ResponseWriter, r *http.Request)
	ResetToDraft(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	DeleteRun(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	runService payrollrun.RunService
}

func NewPayrollHandler(runService payrollrun.RunService) PayrollHandler {
	return &PayrollHandlerImpl{runService: runService}
}

// CreateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req payrollrun.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create run decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	run, err := h.runService.CreateRun(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created successfully", run)
}

// ProcessRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.runService.ProcessRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to process payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run processed successfully", run)
}

// SubmitForApproval implements PayrollHandler.
func (h *PayrollHandlerImpl) SubmitForApproval(w http.ResponseWriter, r *http.Request) {
	run, err := h.runService.SubmitForApproval(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to submit payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run submitted for approval", run)
}

// ApproveRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ApproveRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.runService.ApproveRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		// The run may already be approved when balance writes fail. The
		// approved state is returned so callers do not retry the approval.
		var recErr *payrollrun.ReconciliationError
		if errors.As(err, &recErr) {
			slog.Error("Payroll run approved but reconciliation failed",
				"run_id", recErr.RunID, "error", err)
			response.ReconciliationFailed(w, recErr.Error(), run)
			return
		}

		slog.Error("Failed to approve payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run approved successfully", run)
}

// RejectRun implements PayrollHandler.
func (h *PayrollHandlerImpl) RejectRun(w http.ResponseWriter, r *http.Request) {
	var req payrollrun.RejectRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject run decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	run, err := h.runService.RejectRun(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Failed to reject payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run rejected", run)
}

// ResetToDraft implements PayrollHandler.
func (h *PayrollHandlerImpl) ResetToDraft(w http.ResponseWriter, r *http.Request) {
	run, err := h.runService.ResetToDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to reset payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run reset to draft", run)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.runService.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.runService.ListRunSummaries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// DeleteRun implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := h.runService.DeleteRun(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete payroll run", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run deleted successfully", nil)
}
