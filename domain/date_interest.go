package domain

type DateInterestRequest struct {
	LoanAmount           *Number `json:"loanAmount"`
	InterestRatePerMonth *Number `json:"interestRatePerMonth"` // porcentaje mensual
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
}

type DateInterestResult struct {
	LoanAmount           float64 `json:"loanAmount"`
	InterestRatePerMonth float64 `json:"interestRatePerMonth"`
	DateRange            string  `json:"dateRange"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Days                 int     `json:"days"`
	Interest             float64 `json:"interest"`
	TotalAmount          float64 `json:"totalAmount"`
}
