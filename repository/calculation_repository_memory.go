package repository

import (
	"sync"

	"credit-agent/domain"
)

type calculationRecord struct {
	request domain.CalculationRequest
	result  domain.CalculationResult
}

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []calculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation
// repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []calculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(
	request domain.CalculationRequest,
	result domain.CalculationResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, calculationRecord{request: request, result: result})
	return nil
}

// Len reports how many calculations have been stored.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
