package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/deduction"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/response"
	deductionService "github.com/kanmwangi2/payroll-backend-go/internal/service/deduction"
)

type DeductionHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DeductionHandlerImpl struct {
	deductionService deductionService.DeductionService
}

func NewDeductionHandler(deductionService deductionService.DeductionService) DeductionHandler {
	return &DeductionHandlerImpl{deductionService: deductionService}
}

// ========== TYPES ==========

// CreateType implements DeductionHandler.
func (h *DeductionHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create deduction type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.deductionService.CreateType(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create deduction type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction type created successfully", created)
}

// ListTypes implements DeductionHandler.
func (h *DeductionHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.deductionService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// UpdateType implements DeductionHandler.
func (h *DeductionHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req deduction.UpdateDeductionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update deduction type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.deductionService.UpdateType(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update deduction type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction type updated successfully", updated)
}

// DeleteType implements DeductionHandler.
func (h *DeductionHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.DeleteType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction type deleted successfully", nil)
}

// ========== DEDUCTIONS ==========

// Create implements DeductionHandler.
func (h *DeductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create deduction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create deduction", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created successfully", created)
}

// Get implements DeductionHandler.
func (h *DeductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.deductionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, d)
}

// ListByStaff implements DeductionHandler.
func (h *DeductionHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	deductions, err := h.deductionService.ListByStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, deductions)
}

// Update implements DeductionHandler.
func (h *DeductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req deduction.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update deduction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.deductionService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update deduction", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction updated successfully", updated)
}

// Delete implements DeductionHandler.
func (h *DeductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted successfully", nil)
}
