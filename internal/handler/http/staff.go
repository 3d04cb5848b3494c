package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/staff"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/response"
	staffService "github.com/kanmwangi2/payroll-backend-go/internal/service/staff"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpsertPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	RemovePayment(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staffService.StaffService
}

func NewStaffHandler(staffService staffService.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create staff", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", created)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.staffService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update staff", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", updated)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staffService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deleted successfully", nil)
}

// UpsertPayment implements StaffHandler.
func (h *StaffHandlerImpl) UpsertPayment(w http.ResponseWriter, r *http.Request) {
	var req paytype.UpsertStaffPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert staff payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.staffService.UpsertPayment(r.Context(), req)
	if err != nil {
		slog.Error("Failed to upsert staff payment", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff payment saved successfully", saved)
}

// ListPayments implements StaffHandler.
func (h *StaffHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.staffService.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// RemovePayment implements StaffHandler.
func (h *StaffHandlerImpl) RemovePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.staffService.RemovePayment(r.Context(), chi.URLParam(r, "paymentId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff payment removed successfully", nil)
}
