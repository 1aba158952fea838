package repository

import (
	"testing"

	"credit-agent/domain"
)

func TestCalculationRepositoryMemory_Save(t *testing.T) {

	repo := NewCalculationRepositoryMemory()

	balance := domain.Number(1000)
	request := domain.CalculationRequest{Balance: &balance}
	result := domain.CalculationResult{MonthlyInterest: 15}

	if err := repo.Save(request, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(request, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Len() != 2 {
		t.Errorf("expected 2 stored calculations, got %d", repo.Len())
	}
}

func TestMockCache_SetGet(t *testing.T) {

	cache := NewMockCache()

	if _, ok := cache.Get("missing"); ok {
		t.Errorf("expected miss for unknown key")
	}

	if err := cache.Set("credit:calc:abc", `{"monthlyInterest":15}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok := cache.Get("credit:calc:abc")
	if !ok || value != `{"monthlyInterest":15}` {
		t.Errorf("expected cached value back, got %q (hit=%v)", value, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}
