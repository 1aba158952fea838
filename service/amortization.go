package service

import (
	"math"

	"credit-agent/domain"
)

// amortize simula la reducción mensual del balance hasta pagarlo o
// llegar al tope de seguridad. Acumula sin redondear y solo redondea
// cada fila al emitirla, para no componer el error de redondeo.
func amortize(
	balance, monthlyRate, payment float64,
	grace int,
) (schedule []domain.AmortizationRow, months int, totalInterest float64, reachedCap bool) {

	schedule = []domain.AmortizationRow{}
	remaining := balance
	month := 0

	for remaining > BalanceTolerance && month < MaxPayoffMonths {
		month++

		// Durante la gracia no se cobra interés, pero el pago sí
		// amortiza capital con normalidad
		interestForMonth := 0.0
		if month > grace {
			interestForMonth = remaining * monthlyRate
		}

		// El pago cubre primero el interés; el resto va a capital,
		// sin pasarse del balance restante
		principal := math.Min(payment-interestForMonth, remaining)
		actualPayment := principal + interestForMonth

		totalInterest += interestForMonth
		remaining -= principal
		if remaining < 0 {
			remaining = 0
		}

		schedule = append(schedule, domain.AmortizationRow{
			Month:            month,
			Payment:          roundTo2Decimals(actualPayment),
			Principal:        roundTo2Decimals(principal),
			Interest:         roundTo2Decimals(interestForMonth),
			RemainingBalance: roundTo2Decimals(remaining),
		})

		if remaining <= BalanceTolerance {
			break
		}
	}

	reachedCap = remaining > BalanceTolerance
	return schedule, month, totalInterest, reachedCap
}
