package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-agent/service"
)

func TestDateInterestHandler_OK(t *testing.T) {

	handler := NewDateInterestHandler(service.NewDateInterestService())

	body := []byte(`{
		"loanAmount": 10000,
		"interestRatePerMonth": 1.5,
		"startDate": "2024-01-01",
		"endDate": "2024-02-01"
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/date-interest",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload["days"] != 31.00 {
		t.Errorf("expected 31 days, got %v", payload["days"])
	}
	if payload["totalAmount"] != 10152.88 {
		t.Errorf("expected totalAmount 10152.88, got %v", payload["totalAmount"])
	}
}

func TestDateInterestHandler_InvalidDates(t *testing.T) {

	handler := NewDateInterestHandler(service.NewDateInterestService())

	body := []byte(`{
		"loanAmount": 10000,
		"interestRatePerMonth": 1.5,
		"startDate": "2024-02-01",
		"endDate": "2024-01-01"
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/date-interest",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDateInterestHandler_MethodNotAllowed(t *testing.T) {

	handler := NewDateInterestHandler(service.NewDateInterestService())

	req := httptest.NewRequest(http.MethodGet, "/credit/date-interest", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
