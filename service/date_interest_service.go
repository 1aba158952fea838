package service

import (
	"errors"
	"fmt"

	"credit-agent/domain"
)

type DateInterestService struct{}

func NewDateInterestService() *DateInterestService {
	return &DateInterestService{}
}

// Calculate computes simple daily interest for a loan amount between two
// dates, given a monthly interest rate.
func (s *DateInterestService) Calculate(
	req domain.DateInterestRequest,
) (domain.DateInterestResult, error) {

	// Validar entrada
	if req.LoanAmount == nil || req.InterestRatePerMonth == nil ||
		req.StartDate == "" || req.EndDate == "" {
		return domain.DateInterestResult{}, errors.New("parámetros requeridos faltantes: loanAmount, startDate, endDate, interestRatePerMonth")
	}

	amount := req.LoanAmount.Float64()
	monthlyRate := req.InterestRatePerMonth.Float64()

	if !isFinite(amount) || !isFinite(monthlyRate) {
		return domain.DateInterestResult{}, errors.New("valores numéricos inválidos")
	}
	if amount < 0 || monthlyRate < 0 {
		return domain.DateInterestResult{}, errors.New("los valores no pueden ser negativos")
	}
	if amount > MaxBalance {
		return domain.DateInterestResult{}, fmt.Errorf("monto excede el máximo permitido de $%.2f", MaxBalance)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return domain.DateInterestResult{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return domain.DateInterestResult{}, err
	}
	if !end.After(start) {
		return domain.DateInterestResult{}, errors.New("la fecha final debe ser posterior a la inicial")
	}

	days := daysBetween(start, end)

	// La tasa mensual se anualiza plano (x12), sin capitalización, y de
	// ahí sale la tasa diaria con la misma convención de 365 días que el
	// crédito revolvente
	annualRate := monthlyRate * MonthsPerYear
	dailyRate := annualRate / 100 / DaysPerYear
	interest := amount * dailyRate * float64(days)

	return domain.DateInterestResult{
		LoanAmount:           roundTo2Decimals(amount),
		InterestRatePerMonth: roundTo2Decimals(monthlyRate),
		DateRange:            formatRange(start, end),
		StartDate:            start.Format(displayDateLayout),
		EndDate:              end.Format(displayDateLayout),
		Days:                 days,
		Interest:             roundTo2Decimals(interest),
		TotalAmount:          roundTo2Decimals(amount + interest),
	}, nil
}
