package http

import (
	"encoding/json"
	"net/http"

	"credit-agent/domain"
	"credit-agent/service"
)

type DateInterestHandler struct {
	service *service.DateInterestService
}

func NewDateInterestHandler(service *service.DateInterestService) *DateInterestHandler {
	return &DateInterestHandler{service: service}
}

func (h *DateInterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req domain.DateInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
