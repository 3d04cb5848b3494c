package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kanmwangi2/payroll-backend-go/internal/domain/tax"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/response"
	taxService "github.com/kanmwangi2/payroll-backend-go/internal/service/tax"
)

type TaxHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type TaxHandlerImpl struct {
	taxService taxService.TaxService
}

func NewTaxHandler(taxService taxService.TaxService) TaxHandler {
	return &TaxHandlerImpl{taxService: taxService}
}

// GetSettings implements TaxHandler.
func (h *TaxHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.taxService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements TaxHandler.
func (h *TaxHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req tax.UpdateTaxSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update tax settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.taxService.UpdateSettings(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update tax settings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax settings updated successfully", updated)
}
