package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"credit-agent/domain"
	"credit-agent/service"
)

type CreditHandler struct {
	service *service.CreditService
}

func NewCreditHandler(service *service.CreditService) *CreditHandler {
	return &CreditHandler{service: service}
}

func (h *CreditHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req domain.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		// El error de pago insuficiente viaja con los datos calculados
		// para que el cliente pueda sugerir un pago corregido
		var insufficient *service.InsufficientPaymentError
		if errors.As(err, &insufficient) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":           insufficient.Error(),
				"monthlyInterest": insufficient.MonthlyInterest,
				"minimumPayment":  insufficient.MinimumPayment,
			})
			return
		}
		if errors.Is(err, service.ErrInternal) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
