package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-agent/repository"
	"credit-agent/service"
)

func newCreditHandler() *CreditHandler {
	repo := repository.NewCalculationRepositoryMemory()
	cache := repository.NewMockCache()
	return NewCreditHandler(service.NewCreditService(repo, cache))
}

func TestCalculateHandler_OK(t *testing.T) {

	handler := newCreditHandler()

	body := []byte(`{
		"balance": 1000,
		"interestRate": 18,
		"payment": 100
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload["monthlyInterest"] != 15.00 {
		t.Errorf("expected monthlyInterest 15, got %v", payload["monthlyInterest"])
	}
}

func TestCalculateHandler_StringAmounts(t *testing.T) {

	handler := newCreditHandler()

	// Los formularios envían montos como strings
	body := []byte(`{
		"balance": "1000",
		"interestRate": "18",
		"payment": "100",
		"gracePeriod": "0"
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {

	handler := newCreditHandler()

	req := httptest.NewRequest(http.MethodGet, "/credit/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {

	handler := newCreditHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateHandler_InsufficientPaymentPayload(t *testing.T) {

	handler := newCreditHandler()

	body := []byte(`{
		"balance": 1000,
		"interestRate": 18,
		"payment": 10
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/credit/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// El rechazo por pago insuficiente incluye los montos de referencia
	var payload map[string]any
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload["error"] == nil {
		t.Errorf("expected an error message")
	}
	if payload["monthlyInterest"] != 15.00 {
		t.Errorf("expected monthlyInterest 15, got %v", payload["monthlyInterest"])
	}
	if payload["minimumPayment"] != 40.00 {
		t.Errorf("expected minimumPayment 40, got %v", payload["minimumPayment"])
	}
}
