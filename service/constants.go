package service

const (
	MaxBalance        = 1_000_000_000.0 // 1 billón
	MaxInterestRate   = 1000.0          // 1000% anual
	MaxCustomPayments = 50              // máximo de pagos personalizados por request

	// MaxPayoffMonths acota el peor caso del ciclo de amortización
	// (50 años). Es una válvula de seguridad para limitar la latencia
	// ante entradas patológicas, no una regla del dominio.
	MaxPayoffMonths = 600

	BalanceTolerance = 0.01 // tolerancia para considerar el balance pagado

	// Política de pago mínimo estilo emisor de tarjeta: el mayor entre
	// 2% del balance o $25, más el interés del mes.
	MinimumPaymentRate  = 0.02
	MinimumPaymentFloor = 25.0

	MonthsPerYear = 12
	DaysPerYear   = 365 // convención fija de 365 días, sin ajuste bisiesto

	DateLayout = "2006-01-02"

	displayDateLayout = "1/2/2006"
)
