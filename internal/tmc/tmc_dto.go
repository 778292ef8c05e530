package tmc

type CreateTMCRequest struct {
	Name               string  `json:"name" binding:"required"`
	Price              float64 `json:"price" binding:"required,gt=0"`
	Quantity           int     `json:"quantity" binding:"required,gt=0"`
	AmortizationMonths int     `json:"amortization_months" binding:"required,gt=0"`
}

type TMCResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	TotalCost          float64 `json:"total_cost"`
	AmortizationMonths int     `json:"amortization_months"`
	MonthlyCost        float64 `json:"monthly_cost"`
}

type TMCSummaryResponse struct {
	TotalItems       int     `json:"total_items"`
	TotalQuantity    int     `json:"total_quantity"`
	TotalInvestment  float64 `json:"total_investment"`
	TotalMonthlyCost float64 `json:"total_monthly_cost"`
}
