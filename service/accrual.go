package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"credit-agent/domain"
)

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("formato de fecha inválido: %q", value)
	}
	return date, nil
}

// daysBetween cuenta días calendario completos, sin fracciones ni
// zonas horarias (las fechas se parsean a medianoche UTC).
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func formatRange(start, end time.Time) string {
	return start.Format(displayDateLayout) + " to " + end.Format(displayDateLayout)
}

// dateRangeInterest calcula interés simple diario sobre el balance
// entre dos fechas, con la convención fija de 365 días.
func dateRangeInterest(
	principal, annualRate float64,
	startDate, endDate string,
) (*domain.DateRangeInterest, error) {

	if startDate == "" || endDate == "" {
		return nil, errors.New("parámetros requeridos faltantes: startDate, endDate")
	}
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, errors.New("la fecha final debe ser posterior a la inicial")
	}

	days := daysBetween(start, end)
	dailyRate := annualRate / 100 / DaysPerYear
	interest := principal * dailyRate * float64(days)

	return &domain.DateRangeInterest{
		DateRange: formatRange(start, end),
		Days:      days,
		Interest:  roundTo2Decimals(interest),
	}, nil
}

// accrueCustomPayments devenga interés diario entre pagos irregulares
// sucesivos y aplica cada pago sobre balance más interés acumulado.
func accrueCustomPayments(
	balance, annualRate float64,
	payments []domain.CustomPayment,
	referenceDate string,
) (*domain.CustomPaymentResult, error) {

	if len(payments) > MaxCustomPayments {
		return nil, fmt.Errorf("número de pagos excede el máximo de %d", MaxCustomPayments)
	}

	type datedPayment struct {
		amount float64
		date   time.Time
	}

	dated := make([]datedPayment, 0, len(payments))
	for _, p := range payments {
		amount := p.Amount.Float64()
		if !isFinite(amount) {
			return nil, errors.New("valores numéricos inválidos")
		}
		if amount < 0 {
			return nil, errors.New("los valores no pueden ser negativos")
		}
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		dated = append(dated, datedPayment{amount: amount, date: date})
	}

	// El orden del caller no es confiable
	sort.Slice(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	// El primer pago devenga desde la fecha de referencia ("hoy" si no
	// se indica una)
	previous := time.Now().UTC().Truncate(24 * time.Hour)
	if referenceDate != "" {
		parsed, err := parseDate(referenceDate)
		if err != nil {
			return nil, err
		}
		previous = parsed
	}

	dailyRate := annualRate / 100 / DaysPerYear
	rows := make([]domain.CustomPaymentRow, 0, len(dated))
	remaining := balance
	totalPaid := 0.0
	totalInterest := 0.0

	for i, p := range dated {
		days := 0
		if p.date.After(previous) {
			days = daysBetween(previous, p.date)
		}
		interest := remaining * dailyRate * float64(days)

		totalInterest += interest
		totalPaid += p.amount

		// El pago se descuenta del balance más el interés devengado;
		// un pago corto puede dejar el balance más alto que antes, y
		// eso no es un error
		remaining = remaining + interest - p.amount
		if remaining < 0 {
			remaining = 0
		}

		rows = append(rows, domain.CustomPaymentRow{
			Number:           i + 1,
			Date:             p.date.Format(DateLayout),
			Amount:           roundTo2Decimals(p.amount),
			Days:             days,
			Interest:         roundTo2Decimals(interest),
			RemainingBalance: roundTo2Decimals(remaining),
		})

		previous = p.date
	}

	return &domain.CustomPaymentResult{
		Rows:                 rows,
		TotalPaid:            roundTo2Decimals(totalPaid),
		TotalInterestAccrued: roundTo2Decimals(totalInterest),
		FinalBalance:         roundTo2Decimals(remaining),
	}, nil
}
