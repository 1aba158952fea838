package repository

import "credit-agent/domain"

type CalculationRepository interface {
	Save(request domain.CalculationRequest, result domain.CalculationResult) error
}
