package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/cespare/xxhash/v2"

	"credit-agent/domain"
	"credit-agent/repository"
)

// ErrInternal señala un fallo aritmético inesperado (valores no finitos).
var ErrInternal = errors.New("error interno de cálculo")

// InsufficientPaymentError se devuelve cuando el pago no supera el interés
// mensual. Es el único error que lleva datos calculados, para que el caller
// pueda mostrar una guía correctiva.
type InsufficientPaymentError struct {
	MonthlyInterest float64
	MinimumPayment  float64
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("el pago es muy bajo para amortizar el balance: debe ser mayor que el interés mensual de $%.2f", e.MonthlyInterest)
}

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

type CreditService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewCreditService creates a new CreditService with the given repository.
func NewCreditService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *CreditService {
	return &CreditService{repo: repo, cache: cache}
}

// Calculate computes interest, minimum payment and the payoff trajectory
// for a revolving credit balance.
func (s *CreditService) Calculate(
	req domain.CalculationRequest,
) (domain.CalculationResult, error) {

	// Validar entrada
	if req.Balance == nil || req.InterestRate == nil || req.Payment == nil {
		return domain.CalculationResult{}, errors.New("parámetros requeridos faltantes: balance, interestRate, payment")
	}

	balance := req.Balance.Float64()
	rate := req.InterestRate.Float64()
	payment := req.Payment.Float64()
	grace := int(req.GracePeriod)

	if !isFinite(balance) || !isFinite(rate) || !isFinite(payment) {
		return domain.CalculationResult{}, errors.New("valores numéricos inválidos")
	}
	if balance < 0 || rate < 0 || payment < 0 || grace < 0 {
		return domain.CalculationResult{}, errors.New("los valores no pueden ser negativos")
	}
	if req.CreditLimit != nil && req.CreditLimit.Float64() < 0 {
		return domain.CalculationResult{}, errors.New("los valores no pueden ser negativos")
	}
	if balance > MaxBalance {
		return domain.CalculationResult{}, fmt.Errorf("balance excede el máximo permitido de $%.2f", MaxBalance)
	}
	if rate > MaxInterestRate {
		return domain.CalculationResult{}, fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}

	// El resultado es función pura del request, así que un hit de
	// cache siempre es válido.
	key, cacheable := s.cacheKey(req)
	if cacheable {
		if raw, hit := s.cache.Get(key); hit {
			var cached domain.CalculationResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			log.Printf("Warning: failed to decode cached calculation: key=%s", key)
		}
	}

	result, err := s.compute(req, balance, rate, payment, grace)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(req, result); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	if cacheable {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(raw)); err != nil {
				log.Printf("Warning: failed to cache calculation: %v", err)
			}
		}
	}

	return result, nil
}

func (s *CreditService) compute(
	req domain.CalculationRequest,
	balance, rate, payment float64,
	grace int,
) (domain.CalculationResult, error) {

	// Un balance en cero ya está pagado, sin importar el pago
	if balance == 0 {
		return domain.CalculationResult{
			AmortizationSchedule: []domain.AmortizationRow{},
		}, nil
	}

	monthlyRate := rate / 100 / MonthsPerYear
	monthlyInterest := balance * monthlyRate
	minimumPayment := math.Max(balance*MinimumPaymentRate, MinimumPaymentFloor) + monthlyInterest

	// Un pago que no supera el interés mensual nunca amortiza capital
	if payment <= monthlyInterest && rate > 0 {
		return domain.CalculationResult{}, &InsufficientPaymentError{
			MonthlyInterest: roundTo2Decimals(monthlyInterest),
			MinimumPayment:  roundTo2Decimals(minimumPayment),
		}
	}

	schedule, months, totalInterest, reachedCap := amortize(balance, monthlyRate, payment, grace)

	// La proyección a un paso usa un predicado de gracia más grueso
	// (¿hay gracia configurada?) que el del ciclo (¿este mes cae en la
	// ventana de gracia?). Se conserva esa asimetría a propósito.
	interestCharged := monthlyInterest
	if grace > 0 {
		interestCharged = 0
	}
	newBalance := math.Max(0, balance+interestCharged-payment)

	result := domain.CalculationResult{
		MonthlyInterest:      roundTo2Decimals(monthlyInterest),
		MinimumPayment:       roundTo2Decimals(minimumPayment),
		NewBalance:           roundTo2Decimals(newBalance),
		MonthsToPayOff:       months,
		TotalInterestPaid:    roundTo2Decimals(totalInterest),
		ReachedCap:           reachedCap,
		AmortizationSchedule: schedule,
	}

	if req.StartDate != "" || req.EndDate != "" {
		dateInterest, err := dateRangeInterest(balance, rate, req.StartDate, req.EndDate)
		if err != nil {
			return domain.CalculationResult{}, err
		}
		result.DateInterest = dateInterest
	}

	if len(req.CustomPayments) > 0 {
		customResult, err := accrueCustomPayments(balance, rate, req.CustomPayments, req.ReferenceDate)
		if err != nil {
			return domain.CalculationResult{}, err
		}
		result.CustomPayment = customResult
	}

	if !isFinite(result.TotalInterestPaid) || !isFinite(result.NewBalance) {
		return domain.CalculationResult{}, ErrInternal
	}

	return result, nil
}

// cacheKey deriva la llave de cache del request serializado. Sin un
// referenceDate explícito el primer pago personalizado ancla en "hoy" y
// el resultado deja de ser función pura del request: no se cachea.
func (s *CreditService) cacheKey(req domain.CalculationRequest) (string, bool) {
	if len(req.CustomPayments) > 0 && req.ReferenceDate == "" {
		return "", false
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("credit:calc:%x", xxhash.Sum64(raw)), true
}
