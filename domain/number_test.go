package domain

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {

	var payload struct {
		Balance *Number `json:"balance"`
	}

	if err := json.Unmarshal([]byte(`{"balance": 1500.5}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Balance == nil || payload.Balance.Float64() != 1500.5 {
		t.Errorf("expected 1500.5, got %v", payload.Balance)
	}

	payload.Balance = nil
	if err := json.Unmarshal([]byte(`{"balance": "250"}`), &payload); err != nil {
		t.Fatalf("unexpected error for string amount: %v", err)
	}
	if payload.Balance == nil || payload.Balance.Float64() != 250 {
		t.Errorf("expected 250, got %v", payload.Balance)
	}
}

func TestNumber_UnmarshalJSONNull(t *testing.T) {

	var payload struct {
		Balance *Number `json:"balance"`
	}

	if err := json.Unmarshal([]byte(`{"balance": null}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Balance != nil {
		t.Errorf("expected nil for null, got %v", *payload.Balance)
	}
}

func TestNumber_UnmarshalJSONInvalid(t *testing.T) {

	var payload struct {
		Balance *Number `json:"balance"`
	}

	if err := json.Unmarshal([]byte(`{"balance": "abc"}`), &payload); err == nil {
		t.Errorf("expected error for non-numeric string")
	}
}
