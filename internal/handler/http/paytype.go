package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/domain/paytype"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/response"
	paytypeService "github.com/kanmwangi2/payroll-backend-go/internal/service/paytype"
)

type PaymentTypeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentTypeHandlerImpl struct {
	payTypeService paytypeService.PaymentTypeService
}

func NewPaymentTypeHandler(payTypeService paytypeService.PaymentTypeService) PaymentTypeHandler {
	return &PaymentTypeHandlerImpl{payTypeService: payTypeService}
}

// Create implements PaymentTypeHandler.
func (h *PaymentTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req paytype.CreatePaymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payment type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.payTypeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payment type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment type created successfully", created)
}

// Get implements PaymentTypeHandler.
func (h *PaymentTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	pt, err := h.payTypeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pt)
}

// List implements PaymentTypeHandler.
func (h *PaymentTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.payTypeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// Update implements PaymentTypeHandler.
func (h *PaymentTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req paytype.UpdatePaymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payment type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.payTypeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update payment type", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment type updated successfully", updated)
}

// Delete implements PaymentTypeHandler.
func (h *PaymentTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payTypeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment type deleted successfully", nil)
}
