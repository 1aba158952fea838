package domain

// CustomPayment es un pago irregular con su propio monto y fecha,
// a diferencia del pago mensual fijo.
type CustomPayment struct {
	Amount Number `json:"amount"`
	Date   string `json:"date"`
}

type CalculationRequest struct {
	CreditLimit    *Number         `json:"creditLimit,omitempty"` // aceptado pero aún sin uso en el cálculo
	Balance        *Number         `json:"balance"`
	InterestRate   *Number         `json:"interestRate"` // porcentaje anual
	Payment        *Number         `json:"payment"`
	GracePeriod    Number          `json:"gracePeriod"` // meses sin interés
	StartDate      string          `json:"startDate,omitempty"`
	EndDate        string          `json:"endDate,omitempty"`
	ReferenceDate  string          `json:"referenceDate,omitempty"` // ancla del primer pago personalizado, default hoy
	CustomPayments []CustomPayment `json:"customPayments,omitempty"`
}

type AmortizationRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type DateRangeInterest struct {
	DateRange string  `json:"dateRange"`
	Days      int     `json:"days"`
	Interest  float64 `json:"interest"`
}

type CustomPaymentRow struct {
	Number           int     `json:"number"`
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	Days             int     `json:"days"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type CustomPaymentResult struct {
	Rows                 []CustomPaymentRow `json:"rows"`
	TotalPaid            float64            `json:"totalPaid"`
	TotalInterestAccrued float64            `json:"totalInterestAccrued"`
	FinalBalance         float64            `json:"finalBalance"`
}

type CalculationResult struct {
	MonthlyInterest      float64              `json:"monthlyInterest"`
	MinimumPayment       float64              `json:"minimumPayment"`
	NewBalance           float64              `json:"newBalance"`
	MonthsToPayOff       int                  `json:"monthsToPayOff"`
	TotalInterestPaid    float64              `json:"totalInterestPaid"`
	ReachedCap           bool                 `json:"reachedCap,omitempty"`
	AmortizationSchedule []AmortizationRow    `json:"amortizationSchedule"`
	DateInterest         *DateRangeInterest   `json:"dateInterest,omitempty"`
	CustomPayment        *CustomPaymentResult `json:"customPayment,omitempty"`
}
